// Package swizgen generates swizzle accessors: every ordered combination of a
// set of component letters up to a maximum length, ordered shortest first and
// rendered through a template.
//
//	lines, err := swizgen.Generate(ctx, "XY", 2, "{elem}: {params}")
//	// X: X, Y: Y, XX: X, X, XY: X, Y, YX: Y, X, YY: Y, Y
//
// The building blocks live under pkg/: swizzle enumerates and sorts,
// render/literal and render/template/pongo render, generator wires the
// pipeline and preset loads saved configurations.
package swizgen
