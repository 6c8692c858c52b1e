package decoder

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/roach88/spiceraw/internal/raw"
)

// boundaryMarker separates the text header from the binary payload.
const boundaryMarker = "Binary:\n"

// sniffEncoding tries encoding candidates in fixed priority order (UTF-8,
// then UTF-16LE) and accepts the first whose lossy decoding contains either
// of the header markers "Values" or "Binary". Returns ok=false when no
// candidate matches; the caller must treat that as fatal, since no further
// binary interpretation is meaningful.
func sniffEncoding(buf []byte) (raw.Encoding, string, bool) {
	text := strings.ToValidUTF8(string(buf), string(utf8.RuneError))
	if containsHeaderMarker(text) {
		return raw.UTF8, text, true
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	if text, err := dec.String(string(buf)); err == nil && containsHeaderMarker(text) {
		return raw.UTF16, text, true
	}

	return raw.UTF8, "", false
}

func containsHeaderMarker(text string) bool {
	return strings.Contains(text, "Values") || strings.Contains(text, "Binary")
}

// splitHeader locates the boundary marker in the decoded text and splits
// the original byte buffer there. The marker index is a byte offset into
// the decoded text; .raw headers are ASCII in practice, so it doubles as
// the code-unit offset that CodeUnitWidth scales back to file bytes.
func splitHeader(text string, buf []byte, enc raw.Encoding, path string) (string, []byte, error) {
	idx := strings.Index(text, boundaryMarker)
	if idx < 0 {
		return "", nil, raw.NewMissingBoundaryMarkerError(path)
	}

	end := idx + len(boundaryMarker)
	offset := end * enc.CodeUnitWidth()
	if offset > len(buf) {
		return "", nil, raw.NewMissingBoundaryMarkerError(path)
	}

	return text[:end], buf[offset:], nil
}
