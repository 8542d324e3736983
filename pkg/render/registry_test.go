package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swizgen/pkg/render"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

type namedRenderer string

func (n namedRenderer) Name() string { return string(n) }

func (n namedRenderer) Compile(string) (render.Template, error) {
	return render.TemplateFunc(func(seq swizzle.Sequence) (string, error) {
		return string(n) + ":" + seq.String(), nil
	}), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("beta"))
	registry.MustRegister(namedRenderer("alpha"))

	if diff := cmp.Diff([]string{"alpha", "beta"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	renderer, err := registry.Get("beta")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	tmpl, err := renderer.Compile("")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := tmpl.Execute(swizzle.Sequence("RG"))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "beta:RG" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRegistry_Rejections(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected error for empty name")
	}
	registry.MustRegister(namedRenderer("literal"))
	if err := registry.Register(namedRenderer("literal")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}

	_, err := registry.Get("missing")
	if !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
}
