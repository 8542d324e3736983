package swizgen

import (
	"io/fs"

	"github.com/goliatone/go-swizgen/pkg/preset"
)

// EmbeddedPresets exposes the built-in presets so callers can list or decode
// them without importing the preset package directly.
func EmbeddedPresets() fs.FS {
	return preset.BuiltinFS()
}
