package sorting

import (
	"slices"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sortable"
)

// Numbers returns seq sorted ascending, or descending when asked.
func Numbers[N sortable.Number](seq []N, descending bool) []N {
	out := slices.Clone(seq)

	slices.SortStableFunc(out, func(a, b N) int {
		return compare.Ordered(a, b, descending)
	})

	return out
}
