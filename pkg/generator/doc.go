// Package generator wires the enumerate -> sort -> render pipeline behind a
// single entry point. Generate collects rendered lines in memory; Stream
// writes them one per line to an io.Writer.
package generator
