package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

// Placeholder names understood by every engine.
const (
	PlaceholderElem   = "elem"
	PlaceholderLength = "length"
	PlaceholderParams = "params"
)

// ParamSeparator joins the symbols of a sequence into its parameter form.
const ParamSeparator = ", "

// Renderer compiles user templates for a single engine. Compile is called once
// per run; the returned Template is executed for every generated sequence.
type Renderer interface {
	Name() string
	Compile(template string) (Template, error)
}

// Template renders one sequence.
type Template interface {
	Execute(seq swizzle.Sequence) (string, error)
}

// TemplateFunc adapts a function to the Template interface.
type TemplateFunc func(seq swizzle.Sequence) (string, error)

// Execute calls fn(seq).
func (fn TemplateFunc) Execute(seq swizzle.Sequence) (string, error) {
	return fn(seq)
}

// Vars holds the values derived from a sequence.
type Vars struct {
	// Elem is the sequence's symbols concatenated ("RGB").
	Elem string
	// Length is the number of symbols (3).
	Length int
	// Params is the symbols joined with ParamSeparator ("R, G, B").
	Params string
	// Components lists the individual symbols.
	Components []string
}

// NewVars derives the placeholder values for seq.
func NewVars(seq swizzle.Sequence) Vars {
	parts := seq.Parts()
	return Vars{
		Elem:       seq.String(),
		Length:     seq.Len(),
		Params:     strings.Join(parts, ParamSeparator),
		Components: parts,
	}
}

// Lookup returns the value for a placeholder name. The boolean is false for
// names outside the placeholder vocabulary.
func (v Vars) Lookup(name string) (string, bool) {
	switch name {
	case PlaceholderElem:
		return v.Elem, true
	case PlaceholderLength:
		return strconv.Itoa(v.Length), true
	case PlaceholderParams:
		return v.Params, true
	default:
		return "", false
	}
}

// Map exposes the vars to engines that consume a context map.
func (v Vars) Map() map[string]any {
	return map[string]any{
		PlaceholderElem:   v.Elem,
		PlaceholderLength: v.Length,
		PlaceholderParams: v.Params,
		"components":      v.Components,
	}
}

// IsPlaceholder reports whether name is part of the placeholder vocabulary.
func IsPlaceholder(name string) bool {
	_, ok := Vars{}.Lookup(name)
	return ok
}

// Placeholders lists the vocabulary in prompt order.
func Placeholders() []string {
	return []string{PlaceholderElem, PlaceholderLength, PlaceholderParams}
}

// ResolveEscapes turns every two-character `\n` sequence into a line break.
func ResolveEscapes(s string) string {
	if !strings.Contains(s, `\n`) {
		return s
	}
	return strings.ReplaceAll(s, `\n`, "\n")
}
