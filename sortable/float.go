package sortable

import (
	"math"

	"github.com/amp-labs/amp-sort/compare"
)

// Float is a sortable wrapper for float64.
//
// NaN is not less than anything and nothing is less than NaN, except that
// every number is less than NaN. Combined with Undefined this places NaN
// after all numbers whichever way the slice is sorted.
type Float float64

var (
	_ Sortable[Float] = (*Float)(nil)
	_ Undefined       = (*Float)(nil)
)

// Equals follows IEEE semantics except that NaN equals NaN, so that NaNs
// group together.
func (f Float) Equals(other Float) bool {
	return f == other || (f.Undefined() && other.Undefined())
}

func (f Float) LessThan(other Float) bool {
	return compare.Ordered(float64(f), float64(other), false) < 0
}

// Undefined reports whether f is NaN.
func (f Float) Undefined() bool {
	return math.IsNaN(float64(f))
}
