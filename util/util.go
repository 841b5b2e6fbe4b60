package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// NextWrap returns the element after current, wrapping around the end.
// When current lies in the last overlapSize elements the step skips
// overlapSize extra elements.
func NextWrap[A comparable](current A, elements []A, overlapSize int) (A, bool) {
	idx := slices.Index(elements, current)
	if idx < 0 {
		var zero A
		return zero, false
	}
	n := len(elements)
	next := idx + 1
	if idx > n-1-overlapSize {
		next += overlapSize
	}
	return elements[Mod(next, n)], true
}

// PrevWrap is NextWrap in the other direction: when current lies in the
// first overlapSize elements the step skips overlapSize extra elements.
func PrevWrap[A comparable](current A, elements []A, overlapSize int) (A, bool) {
	idx := slices.Index(elements, current)
	if idx < 0 {
		var zero A
		return zero, false
	}
	prev := idx - 1
	if idx < overlapSize {
		prev -= overlapSize
	}
	return elements[Mod(prev, len(elements))], true
}

// Rotate returns a copy of elements starting at start.
func Rotate[A comparable](elements []A, start A) []A {
	res := make([]A, 0, len(elements))
	idx := slices.Index(elements, start)
	if idx < 0 {
		return append(res, elements...)
	}
	res = append(res, elements[idx:]...)
	return append(res, elements[:idx]...)
}

// Mod is the non-negative remainder of a / b.
func Mod[A constraints.Integer](a, b A) A {
	return ((a % b) + b) % b
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv[A constraints.Integer](a, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
