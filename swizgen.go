package swizgen

import (
	"context"
	"io"

	"github.com/goliatone/go-swizgen/pkg/generator"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

// Request aliases generator.Request so callers can stay on the top-level
// package for the common case.
type Request = generator.Request

// Option aliases generator.Option.
type Option = generator.Option

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...Option) *generator.Generator {
	return generator.New(options...)
}

// Generate enumerates every swizzle of components up to maxLength, shortest
// first, and renders each one with the default renderer (literal unless
// WithDefaultRenderer says otherwise).
func Generate(ctx context.Context, components string, maxLength int, template string, options ...Option) ([]string, error) {
	return generator.New(options...).Generate(ctx, Request{
		Symbols:   swizzle.ParseSymbols(components),
		MaxLength: maxLength,
		Template:  template,
	})
}

// GenerateTo streams the same lines Generate returns into w, one per line,
// and reports how many were written.
func GenerateTo(ctx context.Context, w io.Writer, req Request, options ...Option) (int, error) {
	return generator.New(options...).Stream(ctx, req, w)
}
