package swizgen_test

import (
	"bytes"
	"context"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"

	swizgen "github.com/goliatone/go-swizgen"
	"github.com/goliatone/go-swizgen/pkg/generator"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

func TestGenerate(t *testing.T) {
	got, err := swizgen.Generate(context.Background(), "XY", 2, "{elem}: {params}")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []string{"X: X", "Y: Y", "XX: X, X", "XY: X, Y", "YX: Y, X", "YY: Y, Y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := swizgen.GenerateTo(context.Background(), &buf, swizgen.Request{
		Symbols:   swizzle.ParseSymbols("AB"),
		MaxLength: 1,
		Template:  "{{ elem|lower }}",
		Renderer:  "pongo2",
	})
	if err != nil {
		t.Fatalf("generate to: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
	if buf.String() != "a\nb\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestEmbeddedPresets(t *testing.T) {
	matches, err := fs.Glob(swizgen.EmbeddedPresets(), "*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected embedded presets")
	}
}

func TestGenerate_DefaultRendererOption(t *testing.T) {
	got, err := swizgen.Generate(context.Background(), "XY", 1, "{{ elem|lower }}", generator.WithDefaultRenderer("pongo2"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}
