// Package testutil provides synthetic .raw file builders for tests.
//
// The builders assemble byte streams matching the layout the decoder
// consumes: an ASCII (or UTF-16LE) header terminated by "Binary:\n",
// followed by native-endian samples interleaved point by point.
package testutil

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/roach88/spiceraw/internal/raw"
)

// VariableDecl is one dependent-variable line of the Variables field.
type VariableDecl struct {
	Name string // e.g. "V(n001)"
	Type string // e.g. "voltage"
}

// Builder assembles a synthetic .raw file. Zero values produce a minimal
// transient header; set fields to exercise other modes and flags.
type Builder struct {
	Title    string
	Date     string
	Plotname string
	Flags    string
	XName    string // independent variable name, default "time"
	UTF16    bool   // encode the header as UTF-16LE instead of UTF-8

	Variables []VariableDecl
}

// Header renders the header text, including the trailing "Binary:\n".
func (b *Builder) Header(points int) string {
	title := b.Title
	if title == "" {
		title = "* synthetic circuit"
	}
	date := b.Date
	if date == "" {
		date = "Thu Aug 27 14:30:00 2026"
	}
	plotname := b.Plotname
	if plotname == "" {
		plotname = "Transient Analysis"
	}
	xname := b.XName
	if xname == "" {
		xname = "time"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Date: %s\n", date)
	fmt.Fprintf(&sb, "Plotname: %s\n", plotname)
	fmt.Fprintf(&sb, "Flags: %s\n", b.Flags)
	fmt.Fprintf(&sb, "No. Variables: %d\n", len(b.Variables)+1)
	fmt.Fprintf(&sb, "No. Points: %d\n", points)
	sb.WriteString("Variables:\n")
	fmt.Fprintf(&sb, "\t0\t%s\t%s\n", xname, xname)
	for i, v := range b.Variables {
		typ := v.Type
		if typ == "" {
			typ = "voltage"
		}
		fmt.Fprintf(&sb, "\t%d\t%s\t%s\n", i+1, v.Name, typ)
	}
	sb.WriteString("Binary:\n")
	return sb.String()
}

// Bytes renders the complete file: encoded header plus the interleaved
// payload. series is ordered like Variables; every series must have
// len(x) samples.
func (b *Builder) Bytes(x []raw.Sample, series [][]raw.Sample, xType, yType raw.SampleType) []byte {
	header := b.Header(len(x))

	var out []byte
	if b.UTF16 {
		out = EncodeUTF16LE(header)
	} else {
		out = []byte(header)
	}

	for i := range x {
		out = AppendSample(out, x[i], xType)
		for _, s := range series {
			out = AppendSample(out, s[i], yType)
		}
	}
	return out
}

// AppendSample appends one native-endian encoded sample.
func AppendSample(buf []byte, s raw.Sample, t raw.SampleType) []byte {
	switch t {
	case raw.Float32:
		return binary.NativeEndian.AppendUint32(buf, math.Float32bits(float32(s.Real)))
	case raw.Complex128:
		buf = binary.NativeEndian.AppendUint64(buf, math.Float64bits(s.Real))
		return binary.NativeEndian.AppendUint64(buf, math.Float64bits(s.Imaginary))
	default:
		return binary.NativeEndian.AppendUint64(buf, math.Float64bits(s.Real))
	}
}

// EncodeUTF16LE encodes text as little-endian UTF-16 code units.
func EncodeUTF16LE(text string) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

// Reals builds real-only samples from float values.
func Reals(vals ...float64) []raw.Sample {
	out := make([]raw.Sample, len(vals))
	for i, v := range vals {
		out[i] = raw.Sample{Real: v}
	}
	return out
}

// WriteRawFile writes data to a .raw file under a per-test temp dir and
// returns its path.
func WriteRawFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.raw")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteRawFile: %v", err)
	}
	return path
}
