package sorting

import (
	"slices"

	"github.com/amp-labs/amp-sort/collate"
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/logger"
)

// ByKey returns seq sorted by a single key. Two numbers compare numerically,
// two strings by case-sensitive collation, and anything else with the generic
// comparator (compare.Any). descending reverses every branch.
func ByKey[T any](seq []T, key Key[T], descending bool) ([]T, error) {
	return ByMultipleKeys(seq, []SortKey[T]{{
		Key:           key,
		Descending:    descending,
		CaseSensitive: true,
	}})
}

// ByMultipleKeys returns seq sorted by keys in precedence order: the first
// key decides, and each following key only breaks ties left by the ones
// before it. Records that tie on every key keep their input order.
func ByMultipleKeys[T any](seq []T, keys []SortKey[T]) ([]T, error) {
	chain, err := newChain(keys)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(seq)
	if len(chain) == 0 {
		return out, nil
	}

	slices.SortStableFunc(out, chain.compare)

	return out, nil
}

type link[T any] struct {
	extract func(T) compare.Value
	opts    compare.Options
}

type chain[T any] []link[T]

func newChain[T any](keys []SortKey[T]) (chain[T], error) {
	links := make(chain[T], 0, len(keys))

	for idx, sk := range keys {
		if err := sk.Key.Validate(); err != nil {
			return nil, logger.AnnotateError(err, "key_index", idx, "key", sk.Key.Name)
		}

		// Each link owns its comparer; collators are not shared across calls.
		cmp := collate.New(collate.Options{
			Locale:        sk.Locale,
			CaseSensitive: sk.CaseSensitive,
			Natural:       sk.Natural,
			IgnoreAccents: sk.IgnoreAccents,
		})

		links = append(links, link[T]{
			extract: sk.Key.Extract,
			opts: compare.Options{
				Descending: sk.Descending,
				Text:       cmp.Compare,
			},
		})
	}

	return links, nil
}

func (c chain[T]) compare(a, b T) int {
	for _, l := range c {
		if r := compare.Values(l.extract(a), l.extract(b), l.opts); r != 0 {
			return r
		}
	}

	return 0
}
