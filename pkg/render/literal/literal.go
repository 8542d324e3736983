// Package literal implements the default swizzle template engine: a single
// pass over the template that replaces {elem}, {length} and {params} and turns
// the two characters `\n` into a line break. Anything else, including
// misspelled placeholders such as {elements}, is copied verbatim.
//
// Substituted values are never rescanned, so a generated sequence cannot
// introduce new placeholders or line breaks of its own.
package literal

import (
	"strings"

	"github.com/goliatone/go-swizgen/pkg/render"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

// Name identifies the engine in a render.Registry.
const Name = "literal"

// Renderer compiles literal templates.
type Renderer struct{}

// New returns the literal engine.
func New() *Renderer {
	return &Renderer{}
}

var _ render.Renderer = (*Renderer)(nil)

// Name reports the engine identifier.
func (r *Renderer) Name() string {
	return Name
}

// Compile tokenizes template once. It never fails; the error is part of the
// render.Renderer contract.
func (r *Renderer) Compile(template string) (render.Template, error) {
	return Parse(template), nil
}

// Render is the one-shot form of Parse(template).Render(seq).
func Render(template string, seq swizzle.Sequence) string {
	return Parse(template).Render(seq)
}

type segment struct {
	text        string
	placeholder string
}

// Template is a tokenized literal template. It is immutable and safe to reuse
// across sequences.
type Template struct {
	segments []segment
}

var _ render.Template = (*Template)(nil)

// Parse splits template into text runs and placeholders.
func Parse(template string) *Template {
	var (
		segments []segment
		text     strings.Builder
	)
	flush := func() {
		if text.Len() == 0 {
			return
		}
		segments = append(segments, segment{text: text.String()})
		text.Reset()
	}

	for i := 0; i < len(template); {
		switch template[i] {
		case '\\':
			if i+1 < len(template) && template[i+1] == 'n' {
				text.WriteByte('\n')
				i += 2
				continue
			}
		case '{':
			if name, ok := placeholderAt(template[i:]); ok {
				flush()
				segments = append(segments, segment{placeholder: name})
				i += len(name) + 2
				continue
			}
		}
		text.WriteByte(template[i])
		i++
	}
	flush()

	return &Template{segments: segments}
}

// placeholderAt reports the placeholder name when s starts with "{name}" and
// name is part of the vocabulary.
func placeholderAt(s string) (string, bool) {
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return "", false
	}
	name := s[1:end]
	if !render.IsPlaceholder(name) {
		return "", false
	}
	return name, true
}

// Render substitutes the placeholders for seq.
func (t *Template) Render(seq swizzle.Sequence) string {
	vars := render.NewVars(seq)

	var b strings.Builder
	for _, seg := range t.segments {
		if seg.placeholder == "" {
			b.WriteString(seg.text)
			continue
		}
		value, _ := vars.Lookup(seg.placeholder)
		b.WriteString(value)
	}
	return b.String()
}

// Execute satisfies render.Template.
func (t *Template) Execute(seq swizzle.Sequence) (string, error) {
	return t.Render(seq), nil
}

// Placeholders lists the placeholders used by the template, in order of first
// appearance.
func (t *Template) Placeholders() []string {
	var out []string
	seen := make(map[string]struct{}, 3)
	for _, seg := range t.segments {
		if seg.placeholder == "" {
			continue
		}
		if _, ok := seen[seg.placeholder]; ok {
			continue
		}
		seen[seg.placeholder] = struct{}{}
		out = append(out, seg.placeholder)
	}
	return out
}
