package raw

// Encoding identifies the text codec a .raw header was written with.
// It is determined by sniffing the file contents, never declared by the file.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16
	UTF32
	ASCII
)

// CodeUnitWidth returns the byte width of one code unit for the encoding.
// Used to convert a character offset in decoded header text back into a
// byte offset in the original file.
func (e Encoding) CodeUnitWidth() int {
	switch e {
	case UTF16:
		return 2
	case UTF32:
		return 4
	default:
		return 1
	}
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16:
		return "utf-16"
	case UTF32:
		return "utf-32"
	case ASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// AnalysisMode identifies the simulation analysis that produced the file.
// The mode governs sample datatype selection: AC and FFT output is complex.
type AnalysisMode int

const (
	Transient AnalysisMode = iota
	FFT
	AC
	DC
	Noise
	OperatingPoint
)

// Complex reports whether the mode produces complex-valued samples.
func (m AnalysisMode) Complex() bool {
	return m == AC || m == FFT
}

func (m AnalysisMode) String() string {
	switch m {
	case Transient:
		return "transient"
	case FFT:
		return "fft"
	case AC:
		return "ac"
	case DC:
		return "dc"
	case Noise:
		return "noise"
	case OperatingPoint:
		return "op"
	default:
		return "unknown"
	}
}

// ParseAnalysisMode maps a Plotname header value to an AnalysisMode.
// Unrecognized names return (0, false) and leave the caller's default alone.
func ParseAnalysisMode(plotname string) (AnalysisMode, bool) {
	switch plotname {
	case "Transient Analysis":
		return Transient, true
	case "AC Analysis":
		return AC, true
	case "DC Analysis":
		return DC, true
	case "Noise Analysis":
		return Noise, true
	case "Operating Point":
		return OperatingPoint, true
	case "FFT":
		return FFT, true
	default:
		return Transient, false
	}
}

// StorageFlag is a modifier parsed from the Flags header field.
type StorageFlag uint8

const (
	// FlagStepped signals the file holds multiple sweep steps. Step
	// detection does not require it; boundaries are also found empirically.
	FlagStepped StorageFlag = 1 << iota

	// FlagReal marks real-valued dependent data.
	FlagReal

	// FlagDouble widens dependent-variable samples to 64-bit floats.
	FlagDouble
)

// FlagSet is the set of storage flags declared in the header.
type FlagSet uint8

// Has reports whether the flag is present in the set.
func (f FlagSet) Has(flag StorageFlag) bool {
	return f&FlagSet(flag) != 0
}

// With returns the set with the flag added.
func (f FlagSet) With(flag StorageFlag) FlagSet {
	return f | FlagSet(flag)
}

// ParseStorageFlag maps one whitespace-free Flags token to a StorageFlag.
// Unrecognized tokens return (0, false) and are ignored by callers.
func ParseStorageFlag(token string) (StorageFlag, bool) {
	switch token {
	case "stepped":
		return FlagStepped, true
	case "real":
		return FlagReal, true
	case "double":
		return FlagDouble, true
	default:
		return 0, false
	}
}

func (f FlagSet) String() string {
	s := ""
	for _, e := range []struct {
		flag StorageFlag
		name string
	}{
		{FlagStepped, "stepped"},
		{FlagReal, "real"},
		{FlagDouble, "double"},
	} {
		if f.Has(e.flag) {
			if s != "" {
				s += " "
			}
			s += e.name
		}
	}
	return s
}

// SampleType identifies the on-disk layout of one encoded sample.
type SampleType int

const (
	Float32 SampleType = iota
	Float64
	Complex128
)

// Width returns the byte width of one encoded sample of this type.
func (t SampleType) Width() int {
	switch t {
	case Float32:
		return 4
	case Complex128:
		return 16
	default:
		return 8
	}
}

func (t SampleType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Sample is one decoded value. Real-only sample types always carry
// Imaginary == 0.
type Sample struct {
	Real      float64 `json:"real" yaml:"real"`
	Imaginary float64 `json:"imaginary" yaml:"imaginary"`
}

// Equal reports exact component-wise equality. Exactness is load-bearing:
// the decoder detects step boundaries by bit-identical recurrence of the
// first X sample, so no tolerance is applied here.
func (s Sample) Equal(other Sample) bool {
	return s.Real == other.Real && s.Imaginary == other.Imaginary
}

// VariableClass classifies a dependent variable by the letter prefix of its
// declared name: V(...) is a voltage, I(...) a current.
type VariableClass int

const (
	Unknown VariableClass = iota
	Voltage
	Current
)

func (c VariableClass) String() string {
	switch c {
	case Voltage:
		return "voltage"
	case Current:
		return "current"
	default:
		return "unknown"
	}
}

// Variable is one dependent variable declared in the header. Declaration
// order matters: it must match the interleaving order of samples in the
// binary payload.
type Variable struct {
	Class VariableClass `json:"class" yaml:"class"`
	Name  string        `json:"name" yaml:"name"`
}

// SimulationStats holds header-declared and decode-derived counts.
// StepSize is down-revised when a step boundary is detected; a decode that
// sees no boundary finalizes to a single step spanning every point
// (Steps=1, StepSize=Points).
type SimulationStats struct {
	Variables int `json:"variables" yaml:"variables"`
	Points    int `json:"points" yaml:"points"`
	Steps     int `json:"steps" yaml:"steps"`
	StepSize  int `json:"step_size" yaml:"step_size"`
}
