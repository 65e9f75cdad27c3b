// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"slices"

	"github.com/amp-labs/amp-sort/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Undefined is implemented by sortable types that have values with no place
// in the order, like NaN or an invalid date. Sorted puts such values last in
// both directions.
type Undefined interface {
	Undefined() bool
}

// Compare derives a three-way comparison from LessThan.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Sorted returns a stably sorted copy of seq. The input is not modified.
func Sorted[T Sortable[T]](seq []T, descending bool) []T {
	out := slices.Clone(seq)

	slices.SortStableFunc(out, func(a, b T) int {
		aU, bU := isUndefined(a), isUndefined(b)

		switch {
		case aU && bU:
			return 0
		case aU:
			return 1
		case bU:
			return -1
		}

		if descending {
			return Compare(b, a)
		}

		return Compare(a, b)
	})

	return out
}

func isUndefined(v any) bool {
	u, ok := v.(Undefined)

	return ok && u.Undefined()
}
