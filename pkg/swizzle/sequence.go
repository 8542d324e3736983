package swizzle

import (
	"strings"
)

// Symbols is the ordered component set used for enumeration. Duplicates are
// kept and produce duplicate sequences.
type Symbols []rune

// ParseSymbols splits raw input into one symbol per rune, preserving order.
func ParseSymbols(raw string) Symbols {
	if raw == "" {
		return nil
	}
	return Symbols([]rune(raw))
}

// String joins the symbols back into a single string.
func (s Symbols) String() string {
	return string(s)
}

// Sequence is one generated swizzle. Values returned by this package are never
// shared between sequences, so callers may keep them without copying.
type Sequence []rune

// String concatenates the symbols of the sequence ("RGB").
func (s Sequence) String() string {
	return string(s)
}

// Len reports the number of symbols in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// Parts returns each symbol as its own string, in order.
func (s Sequence) Parts() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

// Join concatenates the symbols with sep between each pair.
func (s Sequence) Join(sep string) string {
	return strings.Join(s.Parts(), sep)
}

func (s Sequence) extend(symbol rune) Sequence {
	out := make(Sequence, len(s)+1)
	copy(out, s)
	out[len(s)] = symbol
	return out
}
