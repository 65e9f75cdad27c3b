package sorting_test

import (
	"fmt"

	"github.com/amp-labs/amp-sort/sorting"
)

func ExampleNumbers() {
	fmt.Println(sorting.Numbers([]int{3, 1, 2}, false))
	fmt.Println(sorting.Numbers([]int{3, 1, 2}, true))

	// Output:
	// [1 2 3]
	// [3 2 1]
}

func ExampleStrings() {
	fmt.Println(sorting.Strings([]string{"b", "A", "a"}, sorting.StringOptions{}))
	fmt.Println(sorting.Strings([]string{"img10", "img2"}, sorting.StringOptions{Natural: true}))

	// Output:
	// [A a b]
	// [img2 img10]
}

func ExampleByMultipleKeys() {
	people := []sorting.Record{
		{"team": "red", "name": "Zoe"},
		{"team": "blue", "name": "Yan"},
		{"team": "red", "name": "Abe"},
	}

	sorted, err := sorting.ByMultipleKeys(people, []sorting.SortKey[sorting.Record]{
		{Key: sorting.Field("team")},
		{Key: sorting.Field("name")},
	})
	if err != nil {
		panic(err)
	}

	for _, p := range sorted {
		fmt.Println(p["team"], p["name"])
	}

	// Output:
	// blue Yan
	// red Abe
	// red Zoe
}

func ExampleDates() {
	fmt.Println(sorting.Dates([]string{"2021-01-01", "not a date", "2020-01-01"}, false))

	// Output:
	// [2020-01-01T00:00:00Z 2021-01-01T00:00:00Z Invalid Date]
}
