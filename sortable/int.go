package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// Example:
//
//	sortable.Sorted([]sortable.Int{5, 3, 7}, false) // 3, 5, 7
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
