package pongo_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-swizgen/pkg/render"
	"github.com/goliatone/go-swizgen/pkg/render/template/pongo"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

func newEngine(t *testing.T, options ...pongo.Option) *pongo.Engine {
	t.Helper()
	engine, err := pongo.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func execute(t *testing.T, engine *pongo.Engine, source string, seq swizzle.Sequence) string {
	t.Helper()
	tmpl, err := engine.Compile(source)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := tmpl.Execute(seq)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out
}

func TestEngine_Placeholders(t *testing.T) {
	engine := newEngine(t)
	got := execute(t, engine, "{{ elem }}: len={{ length }} ({{ params }})", swizzle.Sequence("RGB"))
	if want := "RGB: len=3 (R, G, B)"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_ComponentsAndFilters(t *testing.T) {
	engine := newEngine(t)
	got := execute(t, engine, `{{ components|join:"_"|lower }} {{ elem|lowerfirst }}`, swizzle.Sequence("XYZ"))
	if want := "x_y_z xYZ"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_NoAutoescape(t *testing.T) {
	engine := newEngine(t)
	got := execute(t, engine, "{{ elem }}", swizzle.Sequence("<&>"))
	if got != "<&>" {
		t.Fatalf("expected raw output, got %q", got)
	}
}

func TestEngine_NewlineEscapeOnlyInSource(t *testing.T) {
	engine := newEngine(t)
	got := execute(t, engine, `{{ elem }}\n`, swizzle.Sequence(`\n`))
	if want := "\\n\n"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_CompileError(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.Compile("{% if elem %}unterminated")
	if !errors.Is(err, render.ErrCompile) {
		t.Fatalf("expected ErrCompile, got %v", err)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobalData(map[string]any{"type": "Vector"}))

	if got := execute(t, engine, "{{ type }}{{ length }}", swizzle.Sequence("XY")); got != "Vector2" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.GlobalContext(render.NewVars(swizzle.Sequence("Z"))); err != nil {
		t.Fatalf("global context: %v", err)
	}
	if err := engine.GlobalContext(42); err == nil {
		t.Fatalf("expected error for unsupported context type")
	}
}

func TestEngine_CompileErrorReportsTemplateColumn(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.Compile("{{ elem")
	if !errors.Is(err, render.ErrCompile) {
		t.Fatalf("expected ErrCompile, got %v", err)
	}
	if !strings.Contains(err.Error(), "Line 1 Col 8") {
		t.Fatalf("expected the column within the user's template, got %v", err)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	name := fmt.Sprintf("shout_%s", strings.ReplaceAll(t.Name(), "/", "_"))
	engine := newEngine(t, pongo.WithFilter(name, func(input any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(input)) + "!", nil
	}))

	got := execute(t, engine, "{{ \"xy\"|"+name+" }}", swizzle.Sequence("X"))
	if got != "XY!" {
		t.Fatalf("unexpected output %q", got)
	}
	if err := engine.RegisterFilter(name, func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatalf("expected error for empty filter")
	}
}

func TestEngine_IncludeFromFS(t *testing.T) {
	engine := newEngine(t, pongo.WithFS(os.DirFS("testdata")))
	got := execute(t, engine, `{% include "partials/header.tpl" %}{{ elem }}`, swizzle.Sequence("XY"))
	if want := "// XY accessor\nXY"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}
