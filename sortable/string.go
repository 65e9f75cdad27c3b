package sortable

// String is a sortable wrapper for string that orders by bytes. Use the
// collate package when the order has to follow a locale.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
