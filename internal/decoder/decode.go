package decoder

import (
	"encoding/binary"
	"log/slog"
	"math"

	"github.com/roach88/spiceraw/internal/raw"
)

// xKey is the reserved dataset key for the independent variable.
const xKey = "x"

// dataset holds the decoded series: the X steps plus one series per
// declared dependent variable. The shape is fixed once variable
// declarations are known.
type dataset struct {
	x      [][]raw.Sample
	series map[string][][]raw.Sample
}

func (d *dataset) get(name string, step int) ([]raw.Sample, bool) {
	steps := d.x
	if name != xKey {
		var ok bool
		steps, ok = d.series[name]
		if !ok {
			return nil, false
		}
	}
	if step < 0 || step >= len(steps) {
		return nil, false
	}
	return steps[step], true
}

// decodePayload walks the payload once, left to right, consuming one X
// sample then one Y sample per dependent variable per point, and splits
// the flat stream into steps.
//
// Boundary heuristic: a newly read X sample that exactly equals the first
// X sample of the step being built marks the start of a new step. Swept
// simulations restart the independent variable at an identical value each
// step; the format itself gives no such guarantee. Equality is exact, not
// tolerance-based. The loop only detects boundaries between steps, so the
// final step is flushed unconditionally after the loop.
//
// All per-variable bookkeeping is driven off the same detected boundary as
// the X buffer, so step counts cannot drift between variables.
func decodePayload(payload []byte, xType, yType raw.SampleType, vars []raw.Variable, stats *raw.SimulationStats) (*dataset, error) {
	// The loop's stride is one Y sample per parsed declaration, while the
	// length check below uses the header's declared count. A declaration
	// line the variable pattern rejected would make the stride undershoot
	// the checked length and walk past the payload end.
	if len(vars) != stats.Variables-1 {
		slog.Error("parsed variable declarations do not match the declared count",
			"declared", stats.Variables-1,
			"parsed", len(vars))
		return nil, raw.NewVariableCountMismatchError(stats.Variables-1, len(vars))
	}

	expected := expectedPayloadLength(stats.Points, stats.Variables, xType, yType)
	if expected != len(payload) {
		slog.Error("payload length does not match the computed layout",
			"expected", expected,
			"actual", len(payload),
			"x_type", xType,
			"y_type", yType)
		return nil, raw.NewLayoutMismatchError(expected, len(payload))
	}

	ds := &dataset{series: make(map[string][][]raw.Sample, len(vars))}

	// StepSize assumes a single full-length step until a boundary is
	// detected; the finalization after the loop settles the unstepped case.
	stats.StepSize = stats.Points

	xw, yw := xType.Width(), yType.Width()
	xBuf := []raw.Sample{}
	yBufs := make(map[string][]raw.Sample, len(vars))

	flush := func() {
		ds.x = append(ds.x, xBuf)
		xBuf = nil
		for _, v := range vars {
			ds.series[v.Name] = append(ds.series[v.Name], yBufs[v.Name])
			yBufs[v.Name] = nil
		}
	}

	boundaries := 0
	off := 0
	for off < len(payload) {
		x := decodeSample(payload[off:off+xw], xType)
		off += xw

		if len(xBuf) > 0 && x.Equal(xBuf[0]) {
			stats.StepSize = len(xBuf)
			stats.Steps = stats.Points / len(xBuf)
			boundaries++
			flush()
		}
		xBuf = append(xBuf, x)

		for _, v := range vars {
			yBufs[v.Name] = append(yBufs[v.Name], decodeSample(payload[off:off+yw], yType))
			off += yw
		}
	}

	// Last step.
	flush()

	if boundaries == 0 {
		stats.Steps = 1
		stats.StepSize = len(ds.x[0])
	}

	return ds, nil
}

// decodeSample reinterprets raw bytes in native byte order. Complex128 is
// two consecutive doubles, real part first. Real-only types carry a zero
// imaginary part.
func decodeSample(b []byte, t raw.SampleType) raw.Sample {
	switch t {
	case raw.Float32:
		return raw.Sample{Real: float64(math.Float32frombits(binary.NativeEndian.Uint32(b)))}
	case raw.Complex128:
		return raw.Sample{
			Real:      math.Float64frombits(binary.NativeEndian.Uint64(b[:8])),
			Imaginary: math.Float64frombits(binary.NativeEndian.Uint64(b[8:16])),
		}
	default:
		return raw.Sample{Real: math.Float64frombits(binary.NativeEndian.Uint64(b))}
	}
}
