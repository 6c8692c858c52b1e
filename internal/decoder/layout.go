package decoder

import "github.com/roach88/spiceraw/internal/raw"

// inferLayout selects the on-disk sample types for the independent (X) and
// dependent (Y) series. Y defaults to Float32 and widens to Float64 under
// the double flag; complex modes (AC, FFT) force Complex128 for both and
// take precedence over the double flag.
func inferLayout(mode raw.AnalysisMode, flags raw.FlagSet) (xType, yType raw.SampleType) {
	xType, yType = raw.Float64, raw.Float32
	if flags.Has(raw.FlagDouble) {
		yType = raw.Float64
	}
	if mode.Complex() {
		xType, yType = raw.Complex128, raw.Complex128
	}
	return xType, yType
}

// expectedPayloadLength computes the byte length the payload must have:
// one X sample per point plus one Y sample per point per dependent
// variable. The header's variable count includes the independent variable,
// hence variables-1.
func expectedPayloadLength(points, variables int, xType, yType raw.SampleType) int {
	return points*xType.Width() + points*(variables-1)*yType.Width()
}
