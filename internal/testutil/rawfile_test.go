package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roach88/spiceraw/internal/raw"
)

func TestBuilderHeader(t *testing.T) {
	b := &Builder{
		Plotname: "AC Analysis",
		Flags:    "stepped",
		XName:    "frequency",
		Variables: []VariableDecl{
			{Name: "V(out)", Type: "voltage"},
			{Name: "I(R1)", Type: "device_current"},
		},
	}
	header := b.Header(8)

	for _, want := range []string{
		"Plotname: AC Analysis\n",
		"Flags: stepped\n",
		"No. Variables: 3\n",
		"No. Points: 8\n",
		"\t0\tfrequency\tfrequency\n",
		"\t1\tV(out)\tvoltage\n",
		"\t2\tI(R1)\tdevice_current\n",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
	if !strings.HasSuffix(header, "Binary:\n") {
		t.Errorf("header must end with the boundary marker:\n%s", header)
	}
}

func TestBuilderBytes_PayloadLength(t *testing.T) {
	b := &Builder{Variables: []VariableDecl{{Name: "V(out)"}}}
	x := Reals(0, 1, 2)
	y := Reals(4, 5, 6)

	data := b.Bytes(x, [][]raw.Sample{y}, raw.Float64, raw.Float32)
	header := b.Header(3)

	// 3 points * (8 bytes X + 4 bytes Y).
	if got := len(data) - len(header); got != 36 {
		t.Errorf("payload length = %d, want 36", got)
	}
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Error("file must start with the header bytes")
	}
}

func TestEncodeUTF16LE(t *testing.T) {
	got := EncodeUTF16LE("Bi")
	want := []byte{'B', 0x00, 'i', 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeUTF16LE = %v, want %v", got, want)
	}
}

func TestAppendSampleWidths(t *testing.T) {
	s := raw.Sample{Real: 1.5, Imaginary: -2.5}
	for _, tc := range []struct {
		typ   raw.SampleType
		width int
	}{
		{raw.Float32, 4},
		{raw.Float64, 8},
		{raw.Complex128, 16},
	} {
		if got := len(AppendSample(nil, s, tc.typ)); got != tc.width {
			t.Errorf("AppendSample(%v) wrote %d bytes, want %d", tc.typ, got, tc.width)
		}
	}
}
