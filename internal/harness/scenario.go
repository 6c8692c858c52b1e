package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a decode conformance scenario: the header fields and
// per-step sample values of a synthetic .raw file, plus the expected decode
// outcome. Scenarios validate the decoder end to end - encoding sniffing,
// header interpretation, layout inference, and step detection.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Plotname is the header Plotname value. Empty means transient.
	Plotname string `yaml:"plotname,omitempty"`

	// Flags is the raw header Flags value (e.g. "stepped double").
	Flags string `yaml:"flags,omitempty"`

	// UTF16 encodes the header as UTF-16LE instead of UTF-8.
	UTF16 bool `yaml:"utf16,omitempty"`

	// Variables declares the dependent variables in order.
	Variables []ScenarioVariable `yaml:"variables"`

	// X holds the independent series, one inner list per step. Steps are
	// concatenated into the flat payload; the decoder must re-segment them.
	X [][]float64 `yaml:"x"`

	// Data holds each dependent series, shaped exactly like X.
	Data map[string][][]float64 `yaml:"data"`

	// TruncateBytes chops bytes off the payload end, for corruption
	// scenarios.
	TruncateBytes int `yaml:"truncate_bytes,omitempty"`

	// Expect describes the required decode outcome.
	Expect Expect `yaml:"expect"`
}

// ScenarioVariable is one dependent-variable declaration.
type ScenarioVariable struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

// Expect describes the outcome a scenario requires.
type Expect struct {
	// Error is the decode error code expected to abort the parse (e.g.
	// "LAYOUT_MISMATCH"). Empty means the decode must succeed.
	Error string `yaml:"error,omitempty"`

	// Mode is the expected analysis mode string.
	Mode string `yaml:"mode,omitempty"`

	// Points, Steps and StepSize are the expected stats. Zero values are
	// not checked.
	Points   int `yaml:"points,omitempty"`
	Steps    int `yaml:"steps,omitempty"`
	StepSize int `yaml:"step_size,omitempty"`
}

// LoadScenario reads one scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s has no name", path)
	}
	return &s, nil
}

// flatten concatenates per-step values into the flat stream layout of the
// payload.
func flatten(steps [][]float64) []float64 {
	var flat []float64
	for _, step := range steps {
		flat = append(flat, step...)
	}
	return flat
}
