package decoder

import (
	"strings"
	"testing"
	"time"

	"github.com/roach88/spiceraw/internal/raw"
)

const sampleHeader = "Title: * rc filter\n" +
	"Date: Thu Aug 27 14:30:00 2026\n" +
	"Plotname: Transient Analysis\n" +
	"Flags: stepped double\n" +
	"No. Variables: 3\n" +
	"No. Points: 6\n" +
	"Variables:\n" +
	"\t0\ttime\ttime\n" +
	"\t1\tV(n001)\tvoltage\n" +
	"\t2\tI(R1)\tdevice_current\n" +
	"Binary:\n"

func TestTokenizeHeader(t *testing.T) {
	fields := tokenizeHeader(sampleHeader)

	for _, key := range []string{"Title", "Date", "Plotname", "Flags", "No. Variables", "No. Points", "Variables"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("field %q missing from tokenized header", key)
		}
	}

	// The Variables value spans multiple lines, through the trailing marker.
	vars := fields["Variables"]
	for _, want := range []string{"V(n001)", "I(R1)", "Binary:"} {
		if !strings.Contains(vars, want) {
			t.Errorf("Variables value %q missing %q", vars, want)
		}
	}
}

func TestInterpretFields(t *testing.T) {
	hdr, err := interpretFields(tokenizeHeader(sampleHeader))
	if err != nil {
		t.Fatalf("interpretFields() failed: %v", err)
	}

	if hdr.mode != raw.Transient {
		t.Errorf("mode = %v, want Transient", hdr.mode)
	}
	if !hdr.flags.Has(raw.FlagStepped) || !hdr.flags.Has(raw.FlagDouble) {
		t.Errorf("flags = %v, want stepped+double", hdr.flags)
	}
	if hdr.points != 6 {
		t.Errorf("points = %d, want 6", hdr.points)
	}
	if hdr.variables != 3 {
		t.Errorf("variables = %d, want 3", hdr.variables)
	}

	want := []raw.Variable{
		{Class: raw.Voltage, Name: "V(n001)"},
		{Class: raw.Current, Name: "I(R1)"},
	}
	if len(hdr.declared) != len(want) {
		t.Fatalf("declared = %v, want %v", hdr.declared, want)
	}
	for i := range want {
		if hdr.declared[i] != want[i] {
			t.Errorf("declared[%d] = %v, want %v", i, hdr.declared[i], want[i])
		}
	}

	wantDate := time.Date(2026, time.August, 27, 14, 30, 0, 0, time.UTC)
	if !hdr.date.Equal(wantDate) {
		t.Errorf("date = %v, want %v", hdr.date, wantDate)
	}
}

func TestInterpretFields_DateFallback(t *testing.T) {
	before := time.Now().UTC()
	hdr, err := interpretFields(map[string]string{"Date": " not a date at all"})
	if err != nil {
		t.Fatalf("interpretFields() failed: %v", err)
	}
	if hdr.date.Before(before) {
		t.Errorf("date = %v, want fallback to now (>= %v)", hdr.date, before)
	}
}

func TestInterpretFields_MalformedCounts(t *testing.T) {
	for _, field := range []string{"No. Points", "No. Variables"} {
		_, err := interpretFields(map[string]string{field: " six"})
		if !raw.IsDecodeError(err, raw.ErrCodeMalformedNumericField) {
			t.Errorf("interpretFields(%s=six) err = %v, want MALFORMED_NUMERIC_FIELD", field, err)
		}
	}

	// Negative counts are not unsigned integers.
	_, err := interpretFields(map[string]string{"No. Points": " -4"})
	if !raw.IsDecodeError(err, raw.ErrCodeMalformedNumericField) {
		t.Errorf("interpretFields(points=-4) err = %v, want MALFORMED_NUMERIC_FIELD", err)
	}
}

func TestInterpretFields_UnknownFieldIgnored(t *testing.T) {
	hdr, err := interpretFields(map[string]string{
		"Totally Custom": " whatever",
		"No. Points":     " 4",
	})
	if err != nil {
		t.Fatalf("unknown field must not fail the parse: %v", err)
	}
	if hdr.points != 4 {
		t.Errorf("points = %d, want 4", hdr.points)
	}
}

func TestInterpretFields_UnrecognizedPlotnameKeepsDefault(t *testing.T) {
	hdr, err := interpretFields(map[string]string{"Plotname": " Small-Signal Distortion"})
	if err != nil {
		t.Fatalf("interpretFields() failed: %v", err)
	}
	if hdr.mode != raw.Transient {
		t.Errorf("mode = %v, want default Transient", hdr.mode)
	}
}

func TestInterpretFields_PlotnameModes(t *testing.T) {
	cases := map[string]raw.AnalysisMode{
		" Transient Analysis": raw.Transient,
		" AC Analysis":        raw.AC,
		" DC Analysis":        raw.DC,
		" Noise Analysis":     raw.Noise,
		" Operating Point":    raw.OperatingPoint,
		" FFT":                raw.FFT,
	}
	for value, want := range cases {
		hdr, err := interpretFields(map[string]string{"Plotname": value})
		if err != nil {
			t.Fatalf("interpretFields(%q) failed: %v", value, err)
		}
		if hdr.mode != want {
			t.Errorf("mode for %q = %v, want %v", value, hdr.mode, want)
		}
	}
}

func TestParseVariables_Classes(t *testing.T) {
	vars := parseVariables("\n\t0\ttime\ttime\n\t1\tV(out)\tvoltage\n\t2\tI(L1)\tdevice_current\n\t3\tP(x)\tpower\n")

	want := []raw.Variable{
		{Class: raw.Voltage, Name: "V(out)"},
		{Class: raw.Current, Name: "I(L1)"},
		{Class: raw.Unknown, Name: "P(x)"},
	}
	if len(vars) != len(want) {
		t.Fatalf("parseVariables() = %v, want %v", vars, want)
	}
	for i := range want {
		if vars[i] != want[i] {
			t.Errorf("vars[%d] = %v, want %v", i, vars[i], want[i])
		}
	}
}
