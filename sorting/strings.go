package sorting

import (
	"slices"

	"github.com/amp-labs/amp-sort/collate"
	"golang.org/x/text/language"
)

// StringOptions configures Strings. The zero value sorts ascending,
// ignoring case, by the root collation order.
type StringOptions struct {
	CaseSensitive bool
	Descending    bool

	// Natural orders digit runs by numeric value ("a2" before "a10").
	Natural bool

	// IgnoreAccents makes "e" and "é" compare equal.
	IgnoreAccents bool

	// Locale picks collation rules; language.Und is the root order.
	Locale language.Tag
}

func (o StringOptions) comparer() *collate.Comparer {
	return collate.New(collate.Options{
		Locale:        o.Locale,
		CaseSensitive: o.CaseSensitive,
		Natural:       o.Natural,
		IgnoreAccents: o.IgnoreAccents,
	})
}

// Strings returns seq sorted by locale-aware comparison.
func Strings(seq []string, opts StringOptions) []string {
	out := slices.Clone(seq)
	cmp := opts.comparer()

	slices.SortStableFunc(out, func(a, b string) int {
		c := cmp.Compare(a, b)
		if opts.Descending {
			return -c
		}

		return c
	})

	return out
}
