package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swizgen/pkg/render"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

func TestNewVars(t *testing.T) {
	vars := render.NewVars(swizzle.Sequence("RGB"))
	want := render.Vars{
		Elem:       "RGB",
		Length:     3,
		Params:     "R, G, B",
		Components: []string{"R", "G", "B"},
	}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Fatalf("vars mismatch (-want +got):\n%s", diff)
	}

	for name, expected := range map[string]string{"elem": "RGB", "length": "3", "params": "R, G, B"} {
		got, ok := vars.Lookup(name)
		if !ok || got != expected {
			t.Fatalf("lookup %q: got %q (ok=%v), want %q", name, got, ok, expected)
		}
	}
	if _, ok := vars.Lookup("elements"); ok {
		t.Fatalf("unknown placeholder should not resolve")
	}
}

func TestPlaceholders(t *testing.T) {
	if diff := cmp.Diff([]string{"elem", "length", "params"}, render.Placeholders()); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}
	if !render.IsPlaceholder("params") || render.IsPlaceholder("param") {
		t.Fatalf("IsPlaceholder vocabulary mismatch")
	}
}

func TestResolveEscapes(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"plain":           "plain",
		`a\nb`:            "a\nb",
		`\n\n`:            "\n\n",
		`keep \t as is`:   `keep \t as is`,
		"already\nbroken": "already\nbroken",
	}
	for in, want := range cases {
		if got := render.ResolveEscapes(in); got != want {
			t.Fatalf("ResolveEscapes(%q) = %q, want %q", in, got, want)
		}
	}
}
