// Package harness runs YAML-defined decode scenarios against the decoder.
//
// A scenario declares header fields and per-step sample values; the harness
// synthesizes the matching .raw file, decodes it, and verifies the expected
// stats, series values, or error code. Golden summaries of the decoded
// dataset guard against regressions in step segmentation and sample layout.
package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/spiceraw/internal/decoder"
	"github.com/roach88/spiceraw/internal/raw"
	"github.com/roach88/spiceraw/internal/testutil"
)

// Run synthesizes the scenario's .raw file, decodes it, and verifies the
// expected outcome. It returns the decoded simulation, or nil when the
// scenario expects a decode error.
func Run(t *testing.T, s *Scenario) *decoder.Simulation {
	t.Helper()

	data := Synthesize(t, s)
	path := testutil.WriteRawFile(t, data)

	sim := decoder.New(path)
	err := sim.Reload()

	if s.Expect.Error != "" {
		require.Error(t, err)
		require.True(t, raw.IsDecodeError(err, raw.DecodeErrorCode(s.Expect.Error)),
			"expected error code %s, got %v", s.Expect.Error, err)
		return nil
	}
	require.NoError(t, err)

	verify(t, s, sim)
	return sim
}

// Synthesize renders the scenario's .raw file bytes.
func Synthesize(t *testing.T, s *Scenario) []byte {
	t.Helper()

	b := testutil.Builder{
		Plotname: s.Plotname,
		Flags:    s.Flags,
		UTF16:    s.UTF16,
	}
	for _, v := range s.Variables {
		b.Variables = append(b.Variables, testutil.VariableDecl{Name: v.Name, Type: v.Type})
	}

	x := testutil.Reals(flatten(s.X)...)
	series := make([][]raw.Sample, 0, len(s.Variables))
	for _, v := range s.Variables {
		steps, ok := s.Data[v.Name]
		require.True(t, ok, "scenario %s declares %s but has no data for it", s.Name, v.Name)
		vals := testutil.Reals(flatten(steps)...)
		require.Len(t, vals, len(x), "series %s length", v.Name)
		series = append(series, vals)
	}

	xType, yType := sampleTypes(s)
	data := b.Bytes(x, series, xType, yType)
	if s.TruncateBytes > 0 {
		require.Less(t, s.TruncateBytes, len(data), "truncate_bytes exceeds file size")
		data = data[:len(data)-s.TruncateBytes]
	}
	return data
}

// sampleTypes mirrors the layout the decoder infers from the scenario's
// header fields, so the synthesized payload matches what the decoder reads.
func sampleTypes(s *Scenario) (raw.SampleType, raw.SampleType) {
	mode := raw.Transient
	if s.Plotname != "" {
		if m, ok := raw.ParseAnalysisMode(s.Plotname); ok {
			mode = m
		}
	}
	if mode.Complex() {
		return raw.Complex128, raw.Complex128
	}

	yType := raw.Float32
	for _, token := range strings.Fields(s.Flags) {
		if flag, ok := raw.ParseStorageFlag(token); ok && flag == raw.FlagDouble {
			yType = raw.Float64
		}
	}
	return raw.Float64, yType
}

// verify checks the decoded simulation against the scenario's expectations
// and sample values.
func verify(t *testing.T, s *Scenario, sim *decoder.Simulation) {
	t.Helper()

	stats := sim.Stats()
	if s.Expect.Mode != "" {
		require.Equal(t, s.Expect.Mode, sim.Mode().String())
	}
	if s.Expect.Points != 0 {
		require.Equal(t, s.Expect.Points, stats.Points, "points")
	}
	if s.Expect.Steps != 0 {
		require.Equal(t, s.Expect.Steps, stats.Steps, "steps")
	}
	if s.Expect.StepSize != 0 {
		require.Equal(t, s.Expect.StepSize, stats.StepSize, "step size")
	}

	for step, want := range s.X {
		got, ok := sim.Get("x", step)
		require.True(t, ok, "x step %d missing", step)
		requireSamples(t, want, got, "x", step)
	}
	for _, v := range s.Variables {
		for step, want := range s.Data[v.Name] {
			got, ok := sim.Get(v.Name, step)
			require.True(t, ok, "%s step %d missing", v.Name, step)
			requireSamples(t, want, got, v.Name, step)
		}
	}
}

func requireSamples(t *testing.T, want []float64, got []raw.Sample, name string, step int) {
	t.Helper()

	require.Len(t, got, len(want), "%s step %d length", name, step)
	for i, w := range want {
		require.Equal(t, w, got[i].Real, "%s[%d][%d]", name, step, i)
		require.Zero(t, got[i].Imaginary, "%s[%d][%d] imaginary", name, step, i)
	}
}
