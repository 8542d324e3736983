// Package render defines the template engine seam used by the generator: a
// Renderer compiles a user template once, and the resulting Template renders
// each generated sequence. Engines share the placeholder vocabulary exposed by
// Vars ({elem}, {length}, {params}) and are looked up by name in a Registry.
package render
