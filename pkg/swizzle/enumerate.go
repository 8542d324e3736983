package swizzle

import (
	"context"
	"errors"
	"math"
	"slices"
)

// ErrStop can be returned from a Walk callback to end the walk early without
// reporting an error.
var ErrStop = errors.New("swizzle: stop walk")

// Walk visits every sequence of length 1..maxLength built from symbols in
// discovery order: each symbol in turn, followed by all of its extensions,
// before moving to the next symbol. It uses an explicit stack, so the call
// depth does not grow with maxLength.
//
// Walk returns nil when maxLength <= 0 or symbols is empty. The context is
// checked before every visit; cancellation stops the walk with ctx.Err().
func Walk(ctx context.Context, symbols Symbols, maxLength int, visit func(Sequence) error) error {
	if ctx == nil {
		return errors.New("swizzle: context is required")
	}
	if visit == nil {
		return errors.New("swizzle: visit function is required")
	}
	if maxLength <= 0 || len(symbols) == 0 {
		return nil
	}

	stack := make([]Sequence, 0, len(symbols)*maxLength)
	stack = pushChildren(stack, nil, symbols)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		last := len(stack) - 1
		current := stack[last]
		stack[last] = nil
		stack = stack[:last]

		if err := visit(current); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		if current.Len() < maxLength {
			stack = pushChildren(stack, current, symbols)
		}
	}
	return nil
}

// pushChildren pushes prefix+symbol for every symbol in reverse order so the
// first symbol is popped first.
func pushChildren(stack []Sequence, prefix Sequence, symbols Symbols) []Sequence {
	for i := len(symbols) - 1; i >= 0; i-- {
		stack = append(stack, prefix.extend(symbols[i]))
	}
	return stack
}

// Enumerate collects every sequence Walk would visit, in discovery order. The
// result is not grouped by length; see SortByLength.
func Enumerate(symbols Symbols, maxLength int) []Sequence {
	out, _ := EnumerateContext(context.Background(), symbols, maxLength)
	return out
}

// EnumerateContext is Enumerate with cancellation support.
func EnumerateContext(ctx context.Context, symbols Symbols, maxLength int) ([]Sequence, error) {
	var out []Sequence
	if total := Count(len(symbols), maxLength); total > 0 && total <= maxPrealloc {
		out = make([]Sequence, 0, total)
	}
	err := Walk(ctx, symbols, maxLength, func(seq Sequence) error {
		out = append(out, seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

const maxPrealloc = 1 << 20

// SortByLength orders sequences shortest first. The sort is stable, so
// sequences of equal length keep their discovery order.
func SortByLength(seqs []Sequence) {
	slices.SortStableFunc(seqs, func(a, b Sequence) int {
		return a.Len() - b.Len()
	})
}

// Count returns how many sequences Enumerate produces for k symbols and the
// given maximum length: k + k^2 + ... + k^maxLength. It saturates at
// math.MaxInt instead of overflowing.
func Count(k, maxLength int) int {
	if k <= 0 || maxLength <= 0 {
		return 0
	}
	total, power := 0, 1
	for l := 1; l <= maxLength; l++ {
		if power > math.MaxInt/k {
			return math.MaxInt
		}
		power *= k
		if total > math.MaxInt-power {
			return math.MaxInt
		}
		total += power
	}
	return total
}
