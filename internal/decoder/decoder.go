package decoder

import (
	"log/slog"
	"os"
	"time"

	"github.com/roach88/spiceraw/internal/raw"
)

// Simulation is the decoded result of one .raw file.
//
// A Simulation is constructed empty by New, populated by one Reload pass,
// and thereafter immutable to callers: all accessors are side-effect-free
// and safe for concurrent readers. Reload replaces every field and must
// not run concurrently with reads of the same object; callers needing
// concurrent reload and read should swap in a fresh Simulation instead.
type Simulation struct {
	path      string
	encoding  raw.Encoding
	mode      raw.AnalysisMode
	flags     raw.FlagSet
	date      time.Time
	stats     raw.SimulationStats
	variables []raw.Variable
	data      *dataset
}

// New creates an unparsed Simulation for the given path. No file access
// happens until Reload.
func New(path string) *Simulation {
	return &Simulation{
		path:     path,
		encoding: raw.UTF8,
		mode:     raw.Transient,
		date:     time.Now().UTC(),
	}
}

// Reload runs the parse pass against the source path, fully replacing any
// previously decoded contents. On error the Simulation keeps its prior
// contents: a failed Reload means "dataset not updated".
func (s *Simulation) Reload() error {
	if err := validateSource(s.path); err != nil {
		return err
	}

	buf, err := os.ReadFile(s.path)
	if err != nil {
		slog.Error("cannot read source file", "path", s.path, "error", err)
		return raw.NewInvalidSourceError(s.path, "cannot read file")
	}

	enc, text, ok := sniffEncoding(buf)
	if !ok {
		slog.Error("no encoding candidate matched", "path", s.path)
		return raw.NewUndecodableHeaderError(s.path)
	}

	headerText, payload, err := splitHeader(text, buf, enc, s.path)
	if err != nil {
		slog.Error("missing header/payload boundary", "path", s.path)
		return err
	}
	slog.Debug("header split",
		"encoding", enc,
		"payload_ratio", float64(len(payload))/float64(len(text))*100)

	hdr, err := interpretFields(tokenizeHeader(headerText))
	if err != nil {
		return err
	}

	stats := raw.SimulationStats{
		Variables: hdr.variables,
		Points:    hdr.points,
	}

	xType, yType := inferLayout(hdr.mode, hdr.flags)
	ds, err := decodePayload(payload, xType, yType, hdr.declared, &stats)
	if err != nil {
		return err
	}

	slog.Debug("decode complete",
		"variables", len(ds.series),
		"steps", stats.Steps,
		"step_size", stats.StepSize)

	s.encoding = enc
	s.mode = hdr.mode
	s.flags = hdr.flags
	s.date = hdr.date
	s.stats = stats
	s.variables = hdr.declared
	s.data = ds
	return nil
}

// Get returns the sample sequence for the named variable at the given step
// index. The reserved name "x" selects the independent variable. Returns
// ok=false for unknown names or out-of-range steps, or before any
// successful Reload. The returned slice is shared and must not be modified.
func (s *Simulation) Get(name string, step int) ([]raw.Sample, bool) {
	if s.data == nil {
		return nil, false
	}
	return s.data.get(name, step)
}

// GetX returns the independent variable's first step.
func (s *Simulation) GetX() ([]raw.Sample, bool) {
	return s.Get(xKey, 0)
}

// Stats returns the header-declared and decode-derived counts.
func (s *Simulation) Stats() raw.SimulationStats {
	return s.stats
}

// Variables returns the dependent variables in declaration order. The
// returned slice is shared and must not be modified.
func (s *Simulation) Variables() []raw.Variable {
	return s.variables
}

// Mode returns the analysis mode parsed from the Plotname field.
func (s *Simulation) Mode() raw.AnalysisMode {
	return s.mode
}

// Encoding returns the detected header text encoding.
func (s *Simulation) Encoding() raw.Encoding {
	return s.encoding
}

// Flags returns the storage flags parsed from the Flags field.
func (s *Simulation) Flags() raw.FlagSet {
	return s.flags
}

// Date returns the simulation timestamp from the Date field, or the parse
// time when the field was absent or unparseable.
func (s *Simulation) Date() time.Time {
	return s.date
}

// Path returns the source path the Simulation was created for.
func (s *Simulation) Path() string {
	return s.path
}
