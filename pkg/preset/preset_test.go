package preset_test

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swizgen/pkg/preset"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestLoad_TOML(t *testing.T) {
	got, err := preset.Load(filepath.Join("testdata", "shader.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := preset.Preset{
		Name:          "shader",
		Description:   "GLSL-style swizzle getters",
		Components:    "RGB",
		MaxComponents: intPtr(2),
		Template:      strPtr("vec{length} {elem}() const { return vec{length}({params}); }"),
		Renderer:      "literal",
		Output:        strPtr("swizzles.hpp"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("preset mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	if _, err := preset.Load(filepath.Join("testdata", "unknown_field.yaml")); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := preset.Load(filepath.Join("testdata", "missing.yaml")); !errors.Is(err, preset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := preset.Load(filepath.Join("testdata", "preset.json")); !errors.Is(err, preset.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestBuiltin(t *testing.T) {
	got, err := preset.Builtin("vector3")
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}
	want := preset.Preset{
		Name:          "vector3",
		Description:   "Vector3T<T> swizzle accessors",
		Components:    "XYZ",
		MaxComponents: intPtr(3),
		Template:      strPtr(`public Vector{length}T<T> {elem} => new Vector{length}T<T>({params});\n`),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("preset mismatch (-want +got):\n%s", diff)
	}

	names, err := preset.List(preset.BuiltinFS())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"rgba", "vector2", "vector3", "vector4"}, names); diff != "" {
		t.Fatalf("builtin names mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_UserShadowsBuiltin(t *testing.T) {
	user := fstest.MapFS{
		"vector3.yml": {Data: []byte("components: ABC\nmax_components: 1\n")},
		"mine.toml":   {Data: []byte("components = \"Q\"\n")},
		"notes.txt":   {Data: []byte("ignored")},
	}
	resolver := preset.Resolver{User: user, Builtin: preset.BuiltinFS()}

	got, err := resolver.Resolve("vector3")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Components != "ABC" || got.MaxComponents == nil || *got.MaxComponents != 1 {
		t.Fatalf("expected user preset, got %+v", got)
	}

	got, err = resolver.Resolve("rgba")
	if err != nil {
		t.Fatalf("resolve builtin: %v", err)
	}
	if got.Components != "RGBA" {
		t.Fatalf("expected builtin rgba preset, got %+v", got)
	}

	if _, err := resolver.Resolve("nope"); !errors.Is(err, preset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	userNames, builtinNames, err := resolver.Names()
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if diff := cmp.Diff([]string{"mine", "vector3"}, userNames); diff != "" {
		t.Fatalf("user names mismatch (-want +got):\n%s", diff)
	}
	if len(builtinNames) != 4 {
		t.Fatalf("expected 4 builtin presets, got %v", builtinNames)
	}
}

func TestResolver_Path(t *testing.T) {
	resolver := preset.Resolver{}
	got, err := resolver.Resolve(filepath.Join("testdata", "shader.toml"))
	if err != nil {
		t.Fatalf("resolve path: %v", err)
	}
	if got.Name != "shader" {
		t.Fatalf("unexpected preset %+v", got)
	}
}

func TestResolver_MissingUserDir(t *testing.T) {
	resolver := preset.Resolver{User: fstest.MapFS{}, Builtin: preset.BuiltinFS()}
	if _, err := resolver.Resolve("vector2"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func TestEncodeDecode_PreservesUnsetFields(t *testing.T) {
	in := preset.Preset{Components: "RG", Template: strPtr("{elem}")}
	for _, format := range []preset.Format{preset.FormatYAML, preset.FormatTOML} {
		data, err := preset.Encode(in, format)
		if err != nil {
			t.Fatalf("%s encode: %v", format, err)
		}
		out, err := preset.Decode(data, format)
		if err != nil {
			t.Fatalf("%s decode: %v", format, err)
		}
		if out.MaxComponents != nil || out.Output != nil {
			t.Fatalf("%s: unset fields became set: %+v", format, out)
		}
	}
}

func TestDecode_EmptyTemplateIsSet(t *testing.T) {
	got, err := preset.Decode([]byte("components: RG\ntemplate: ''\n"), preset.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Template == nil || *got.Template != "" {
		t.Fatalf("expected an empty template to be set, got %v", got.Template)
	}
}
