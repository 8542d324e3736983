package preset

import (
	"embed"
	"io/fs"
)

//go:embed presets/*.yaml
var builtinFiles embed.FS

// BuiltinFS exposes the presets shipped with the binary.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(builtinFiles, "presets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Builtin loads a shipped preset by name.
func Builtin(name string) (Preset, error) {
	return LoadFS(BuiltinFS(), name)
}
