// Package check validates decoded simulations against CUE expectation
// files.
//
// An expectation file is a plain CUE struct; every field is optional and
// only declared fields are checked:
//
//	mode:      "transient"
//	points:    6
//	variables: 3
//	steps:     2
//	step_size: 3
//	series: ["V(out)", "I(R1)"]
//
// Checking never mutates the simulation; it reports violations for a
// caller (typically the CLI) to surface.
package check

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/spiceraw/internal/decoder"
)

// Expectation holds the declared expectations. Nil fields were absent from
// the file and are not checked.
type Expectation struct {
	Mode      *string
	Points    *int
	Variables *int
	Steps     *int
	StepSize  *int
	Series    []string
}

// Violation is one failed expectation.
type Violation struct {
	Field    string
	Expected string
	Actual   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: expected %s, got %s", v.Field, v.Expected, v.Actual)
}

// LoadExpectation parses a CUE expectation file.
func LoadExpectation(path string) (*Expectation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read expectation file: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile expectation file: %w", err)
	}

	exp := &Expectation{}

	if exp.Mode, err = lookupString(v, "mode"); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		path string
		dst  **int
	}{
		{"points", &exp.Points},
		{"variables", &exp.Variables},
		{"steps", &exp.Steps},
		{"step_size", &exp.StepSize},
	} {
		if *f.dst, err = lookupInt(v, f.path); err != nil {
			return nil, err
		}
	}

	seriesVal := v.LookupPath(cue.ParsePath("series"))
	if seriesVal.Exists() {
		iter, err := seriesVal.List()
		if err != nil {
			return nil, fmt.Errorf("series must be a list: %w", err)
		}
		for iter.Next() {
			name, err := iter.Value().String()
			if err != nil {
				return nil, fmt.Errorf("series entries must be strings: %w", err)
			}
			exp.Series = append(exp.Series, name)
		}
	}

	return exp, nil
}

// Check compares the expectation against a decoded simulation and returns
// every violation found.
func (e *Expectation) Check(sim *decoder.Simulation) []Violation {
	var violations []Violation

	fail := func(field, expected, actual string) {
		violations = append(violations, Violation{Field: field, Expected: expected, Actual: actual})
	}

	if e.Mode != nil && sim.Mode().String() != *e.Mode {
		fail("mode", *e.Mode, sim.Mode().String())
	}

	stats := sim.Stats()
	for _, f := range []struct {
		name   string
		exp    *int
		actual int
	}{
		{"points", e.Points, stats.Points},
		{"variables", e.Variables, stats.Variables},
		{"steps", e.Steps, stats.Steps},
		{"step_size", e.StepSize, stats.StepSize},
	} {
		if f.exp != nil && f.actual != *f.exp {
			fail(f.name, fmt.Sprintf("%d", *f.exp), fmt.Sprintf("%d", f.actual))
		}
	}

	for _, name := range e.Series {
		if _, ok := sim.Get(name, 0); !ok {
			fail("series", name, "absent")
		}
	}

	return violations
}

func lookupString(v cue.Value, path string) (*string, error) {
	fv := v.LookupPath(cue.ParsePath(path))
	if !fv.Exists() {
		return nil, nil
	}
	s, err := fv.String()
	if err != nil {
		return nil, fmt.Errorf("%s must be a string: %w", path, err)
	}
	return &s, nil
}

func lookupInt(v cue.Value, path string) (*int, error) {
	fv := v.LookupPath(cue.ParsePath(path))
	if !fv.Exists() {
		return nil, nil
	}
	n, err := fv.Int64()
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer: %w", path, err)
	}
	i := int(n)
	return &i, nil
}
