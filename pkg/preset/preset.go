package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppName scopes the XDG configuration directory.
const AppName = "swizgen"

var (
	// ErrNotFound is returned when a preset name or path cannot be resolved.
	ErrNotFound = errors.New("preset: not found")
	// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("preset: unsupported format")
)

// Format identifies a preset encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var extensions = []string{".yaml", ".yml", ".toml"}

// Preset stores a reusable set of generation answers. Nil pointers mean the
// value was not set and should be asked for or taken from flags.
type Preset struct {
	Name          string  `yaml:"name,omitempty" toml:"name,omitempty"`
	Description   string  `yaml:"description,omitempty" toml:"description,omitempty"`
	Components    string  `yaml:"components,omitempty" toml:"components,omitempty"`
	MaxComponents *int    `yaml:"max_components,omitempty" toml:"max_components,omitempty"`
	Template      *string `yaml:"template,omitempty" toml:"template,omitempty"`
	Renderer      string  `yaml:"renderer,omitempty" toml:"renderer,omitempty"`
	Output        *string `yaml:"output,omitempty" toml:"output,omitempty"`
}

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, p)
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Preset, error) {
	var p Preset
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return Preset{}, fmt.Errorf("preset: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Preset{}, fmt.Errorf("preset: decode toml: %w", err)
		}
	default:
		return Preset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return p, nil
}

// Encode serialises p in the given format.
func Encode(p Preset, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(p)
	case FormatTOML:
		return toml.Marshal(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Load reads a preset file from disk, choosing the decoder by extension. The
// preset name defaults to the file name without extension.
func Load(p string) (Preset, error) {
	format, err := FormatFromPath(p)
	if err != nil {
		return Preset{}, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return Preset{}, fmt.Errorf("preset: read %s: %w", p, err)
	}
	preset, err := Decode(data, format)
	if err != nil {
		return Preset{}, fmt.Errorf("%s: %w", p, err)
	}
	if preset.Name == "" {
		preset.Name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return preset, nil
}

// LoadFS looks up name in fsys, trying each supported extension.
func LoadFS(fsys fs.FS, name string) (Preset, error) {
	if fsys == nil {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	for _, ext := range extensions {
		file := name + ext
		data, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Preset{}, fmt.Errorf("preset: read %s: %w", file, err)
		}
		format, _ := FormatFromPath(file)
		preset, err := Decode(data, format)
		if err != nil {
			return Preset{}, fmt.Errorf("%s: %w", file, err)
		}
		if preset.Name == "" {
			preset.Name = name
		}
		return preset, nil
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// List returns the sorted preset names available in fsys. A missing root is
// treated as empty.
func List(fsys fs.FS) ([]string, error) {
	if fsys == nil {
		return nil, nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("preset: list: %w", err)
	}
	seen := make(map[string]struct{}, len(entries))
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := FormatFromPath(entry.Name()); err != nil {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SearchDir is where user presets live: $XDG_CONFIG_HOME/swizgen/presets.
func SearchDir() string {
	return filepath.Join(xdg.ConfigHome, AppName, "presets")
}

// Resolver finds presets by path, then in the user directory, then among the
// built-in presets.
type Resolver struct {
	User    fs.FS
	Builtin fs.FS
}

// NewResolver returns a Resolver over SearchDir and the embedded presets.
func NewResolver() Resolver {
	return Resolver{
		User:    os.DirFS(SearchDir()),
		Builtin: BuiltinFS(),
	}
}

// Resolve accepts either a path to a preset file or a preset name.
func (r Resolver) Resolve(ref string) (Preset, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Preset{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	if looksLikePath(ref) {
		return Load(ref)
	}

	p, err := LoadFS(r.User, ref)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return p, err
	}
	return LoadFS(r.Builtin, ref)
}

// Names lists user and built-in presets; user presets shadow built-ins.
func (r Resolver) Names() (user, builtin []string, err error) {
	user, err = List(r.User)
	if err != nil {
		return nil, nil, err
	}
	builtin, err = List(r.Builtin)
	if err != nil {
		return nil, nil, err
	}
	return user, builtin, nil
}

// Resolve is NewResolver().Resolve(ref).
func Resolve(ref string) (Preset, error) {
	return NewResolver().Resolve(ref)
}

func looksLikePath(ref string) bool {
	if strings.ContainsRune(ref, filepath.Separator) || strings.ContainsRune(ref, '/') {
		return true
	}
	_, err := FormatFromPath(ref)
	return err == nil
}
