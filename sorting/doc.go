// Package sorting returns sorted copies of slices: numbers, strings, records
// by one key, records by several keys, and dates.
//
// Every function leaves its argument untouched and returns a new slice (nil
// in, nil out). Sorts are stable, so elements that compare equal keep their
// input order. None of the functions keep state; they may be called from any
// number of goroutines.
//
// # Values without a place in the order
//
// NaN and invalid dates go after every other element, in ascending and
// descending order alike. Missing record fields are a generic nil, which the
// generic comparator ranks after every other value (so they lead when
// sorting descending).
//
// # Records
//
// Records are addressed through a Key. Field builds keys for JSON-like
// records (map[string]any); for structs write the extractor directly:
//
//	byAge := sorting.Key[Person]{Name: "age", Extract: func(p Person) compare.Value {
//	    return compare.Number(float64(p.Age))
//	}}
//	people, err := sorting.ByKey(people, byAge, false)
package sorting
