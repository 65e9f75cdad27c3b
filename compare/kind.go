package compare

// Kind is the closed set of comparison strategies a Value can be dispatched to.
type Kind uint8

const (
	// KindGeneric values are compared with the generic three-way comparator
	// (see Generic). Booleans, times, nil and anything else land here.
	KindGeneric Kind = iota

	// KindNumber values are compared numerically.
	KindNumber

	// KindText values are compared with a text comparer (collation by default
	// in the sorting package, byte order otherwise).
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}
