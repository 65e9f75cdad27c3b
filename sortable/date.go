package sortable

import (
	"time"
)

const invalidDateText = "Invalid Date"

// Date is a point in time that may be invalid. Invalid dates come from text
// that could not be parsed; they are ordered after every valid date.
type Date struct {
	t     time.Time
	valid bool
}

var (
	_ Sortable[Date] = Date{}
	_ Undefined      = Date{}
)

// NewDate wraps a valid time.
func NewDate(t time.Time) Date {
	return Date{t: t, valid: true}
}

// InvalidDate returns the invalid sentinel.
func InvalidDate() Date {
	return Date{}
}

// Time returns the wrapped instant, or the zero time for an invalid date.
func (d Date) Time() time.Time {
	return d.t
}

// Valid reports whether the date holds an instant.
func (d Date) Valid() bool {
	return d.valid
}

// Undefined reports whether the date is invalid.
func (d Date) Undefined() bool {
	return !d.valid
}

// Equals reports whether both dates are the same instant, or both invalid.
func (d Date) Equals(other Date) bool {
	if d.valid != other.valid {
		return false
	}

	return !d.valid || d.t.Equal(other.t)
}

// LessThan orders valid dates by instant; any valid date is less than an
// invalid one.
func (d Date) LessThan(other Date) bool {
	switch {
	case !d.valid:
		return false
	case !other.valid:
		return true
	default:
		return d.t.Before(other.t)
	}
}

// String formats the date as RFC 3339, or "Invalid Date".
func (d Date) String() string {
	if !d.valid {
		return invalidDateText
	}

	return d.t.Format(time.RFC3339Nano)
}
