package render

import "errors"

var (
	// ErrUnknownRenderer is returned when a renderer name is not registered.
	ErrUnknownRenderer = errors.New("render: renderer not found")
	// ErrCompile wraps template parse failures reported by an engine.
	ErrCompile = errors.New("render: compile template")
)
