package decoder

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/roach88/spiceraw/internal/raw"
)

// fieldPattern tokenizes the header into field/value pairs. A field name
// starts at the beginning of the text or after a line break, is made of
// letters, spaces and periods ending in a letter, and is followed by a
// colon. The value runs to the next field start, or through the trailing
// "Binary:" marker for the final field, so the multi-line Variables value
// is captured whole.
var fieldPattern = regexp.MustCompile(`(?:^|\n)([a-zA-Z .]*[a-zA-Z]+):((?:.+)|(?:(?:.|\n)+(?:Binary:)))`)

// variablePattern matches one variable declaration line: an index, a name
// of the form <class-letters>(<anything>), and a type tag. The independent
// variable's line (e.g. "0 time time") has no parentheses and is skipped.
var variablePattern = regexp.MustCompile(`(\d+)\s+([A-Za-z]+)\(([^)]*)\)\s+(\w+)`)

// header holds the interpreted header fields.
type header struct {
	mode      raw.AnalysisMode
	flags     raw.FlagSet
	date      time.Time
	points    int
	variables int
	declared  []raw.Variable
}

// tokenizeHeader splits the header text into a field name to raw value
// mapping. Unknown field names are preserved; interpretFields decides what
// to do with them.
func tokenizeHeader(text string) map[string]string {
	fields := make(map[string]string)
	for _, m := range fieldPattern.FindAllStringSubmatch(text, -1) {
		fields[m[1]] = m[2]
	}
	return fields
}

// interpretFields folds the tokenized fields into a header. Unknown fields
// are logged at warn and ignored; the format is allowed to carry
// simulator-specific fields the decoder does not need. A malformed count
// field is fatal.
func interpretFields(fields map[string]string) (*header, error) {
	h := &header{
		mode: raw.Transient,
		date: time.Now().UTC(),
	}

	for key, value := range fields {
		switch key {
		case "Title":
		case "Date":
			// Date parse failures fall back to the current time rather
			// than failing the parse.
			if ts, err := dateparse.ParseAny(strings.TrimSpace(value)); err == nil {
				h.date = ts.UTC()
			} else {
				slog.Debug("unparseable Date field, using current time", "value", value)
			}
		case "Plotname":
			if mode, ok := raw.ParseAnalysisMode(strings.TrimSpace(value)); ok {
				h.mode = mode
			}
		case "Flags":
			for _, token := range strings.Fields(value) {
				if flag, ok := raw.ParseStorageFlag(token); ok {
					h.flags = h.flags.With(flag)
				}
			}
		case "No. Points":
			n, err := parseCount(key, value)
			if err != nil {
				return nil, err
			}
			h.points = n
		case "No. Variables":
			n, err := parseCount(key, value)
			if err != nil {
				return nil, err
			}
			h.variables = n
		case "Variables":
			h.declared = parseVariables(value)
		case "Command", "Backannotation", "Offset":
		default:
			slog.Warn("unknown header field", "field", key)
		}
	}

	return h, nil
}

func parseCount(field, value string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 31)
	if err != nil {
		slog.Error("malformed numeric header field", "field", field, "value", value)
		return 0, raw.NewMalformedNumericFieldError(field, strings.TrimSpace(value))
	}
	return int(n), nil
}

// parseVariables extracts the dependent variables in declaration order.
// The full "V(n001)" form is the variable's name and the dataset key; the
// letter prefix selects the class.
func parseVariables(value string) []raw.Variable {
	var vars []raw.Variable
	for _, m := range variablePattern.FindAllStringSubmatch(value, -1) {
		name := m[2] + "(" + m[3] + ")"
		class := raw.Unknown
		switch m[2] {
		case "V":
			class = raw.Voltage
		case "I":
			class = raw.Current
		}
		vars = append(vars, raw.Variable{Class: class, Name: name})
	}
	return vars
}
