// Package errors holds the sentinel errors shared across the module and a
// small accumulator for reporting several problems at once.
package errors

import "errors"

var (
	// ErrInvalidInput is returned when an argument is malformed at the boundary.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidKey is returned when a sort key cannot extract values.
	ErrInvalidKey = errors.New("invalid sort key")

	// ErrUnparseableDate is returned by strict date parsing. The sorting
	// helpers absorb it and use an invalid date instead.
	ErrUnparseableDate = errors.New("unparseable date")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// Len returns how many errors were collected.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Is is errors.Is, for callers that import this package under its own name.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
