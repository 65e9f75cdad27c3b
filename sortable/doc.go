// Package sortable provides the Sortable interface and wrapper types that
// implement it for primitives, along with Sorted, a non-mutating stable sort
// for any Sortable element type.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-sort/compare.Comparable]
// with a LessThan method. Ready-made implementations: [Int], [Byte], [String],
// [Float] and [Date].
//
//	sorted := sortable.Sorted([]sortable.Int{42, 10, 25}, false)
//	// 10, 25, 42
//
// # Values without a place in the order
//
// [Float] (NaN) and [Date] (invalid dates) also implement [Undefined]. Sorted
// moves undefined values after every defined value, in ascending and in
// descending order alike, and keeps their relative input order.
//
// # Creating Custom Sortable Types
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types are values and Sorted works on its own copy of the input,
// so concurrent calls need no coordination.
package sortable
