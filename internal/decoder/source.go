package decoder

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/spiceraw/internal/raw"
)

// rawExtension is the only file extension accepted by the decoder.
const rawExtension = ".raw"

// validateSource checks the path before any byte access: the path must
// exist, be a regular file, and carry the .raw extension, in that order.
func validateSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		slog.Error("source file does not exist", "path", path)
		return raw.NewInvalidSourceError(path, "file does not exist")
	}

	if !info.Mode().IsRegular() {
		slog.Error("source path is not a regular file", "path", path)
		return raw.NewInvalidSourceError(path, "not a regular file")
	}

	if filepath.Ext(path) != rawExtension {
		slog.Error("source path is not a .raw file", "path", path)
		return raw.NewInvalidSourceError(path, "not a .raw file")
	}

	return nil
}
