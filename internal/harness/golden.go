package harness

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/spiceraw/internal/decoder"
	"github.com/roach88/spiceraw/internal/raw"
)

// AssertGolden compares a deterministic summary of the decoded dataset
// against the golden file named after the scenario. Regenerate fixtures
// with `go test ./internal/harness -update`.
func AssertGolden(t *testing.T, name string, sim *decoder.Simulation) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Summary(sim))
}

// Summary renders the decoded simulation as stable text: stats first, then
// every series step by step in declaration order.
func Summary(sim *decoder.Simulation) []byte {
	stats := sim.Stats()

	var sb strings.Builder
	fmt.Fprintf(&sb, "mode: %s\n", sim.Mode())
	fmt.Fprintf(&sb, "encoding: %s\n", sim.Encoding())
	fmt.Fprintf(&sb, "flags: %s\n", sim.Flags())
	fmt.Fprintf(&sb, "points: %d\n", stats.Points)
	fmt.Fprintf(&sb, "variables: %d\n", stats.Variables)
	fmt.Fprintf(&sb, "steps: %d\n", stats.Steps)
	fmt.Fprintf(&sb, "step_size: %d\n", stats.StepSize)

	writeSeries(&sb, sim, "x")
	for _, v := range sim.Variables() {
		writeSeries(&sb, sim, v.Name)
	}
	return []byte(sb.String())
}

func writeSeries(sb *strings.Builder, sim *decoder.Simulation, name string) {
	for step := 0; ; step++ {
		samples, ok := sim.Get(name, step)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "%s[%d]:", name, step)
		for _, s := range samples {
			sb.WriteByte(' ')
			sb.WriteString(formatSample(s))
		}
		sb.WriteByte('\n')
	}
}

func formatSample(s raw.Sample) string {
	re := strconv.FormatFloat(s.Real, 'g', -1, 64)
	if s.Imaginary == 0 {
		return re
	}
	im := strconv.FormatFloat(s.Imaginary, 'g', -1, 64)
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}
	return re + im + "i"
}
