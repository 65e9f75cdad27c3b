package sorting

import (
	"fmt"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/jsonpath"
	"golang.org/x/text/language"
)

// Record is a JSON-like object, as produced by encoding/json or yaml.v3.
type Record = map[string]any

// Key extracts the value a record is sorted by.
type Key[T any] struct {
	// Name identifies the key in errors and logs.
	Name string

	// Extract returns the tagged value for one record.
	Extract func(T) compare.Value

	err error
}

// Validate reports why the key cannot be used, if it cannot.
func (k Key[T]) Validate() error {
	if k.err != nil {
		return k.err
	}

	if k.Extract == nil {
		return fmt.Errorf("%w: key %q has no extractor", errors.ErrInvalidKey, k.Name)
	}

	return nil
}

// KeyFunc builds a Key from a plain accessor. The accessor's result is
// classified with compare.Of.
func KeyFunc[T any, V any](name string, f func(T) V) Key[T] {
	if f == nil {
		return Key[T]{Name: name}
	}

	return Key[T]{
		Name: name,
		Extract: func(item T) compare.Value {
			return compare.Of(f(item))
		},
	}
}

// Field builds a Key reading a field of a Record. The path is a plain key or
// bracket notation for nested fields ("$['address']['zip']"). Absent fields
// yield compare.Missing(). A malformed path is reported when the key is used.
func Field(path string) Key[Record] {
	return field(path, false)
}

// FieldIgnoringCase is Field with case-insensitive key matching; exact
// matches win.
func FieldIgnoringCase(path string) Key[Record] {
	return field(path, true)
}

func field(path string, caseInsensitive bool) Key[Record] {
	parsed, err := jsonpath.Parse(path)
	if err != nil {
		return Key[Record]{
			Name: path,
			err:  fmt.Errorf("%w: %w", errors.ErrInvalidKey, err),
		}
	}

	return Key[Record]{
		Name: path,
		Extract: func(r Record) compare.Value {
			value, ok := parsed.Lookup(r, caseInsensitive)
			if !ok {
				return compare.Missing()
			}

			return compare.Of(value)
		},
	}
}

// SortKey is one entry of a multi-key sort. The zero options sort ascending
// and ignore case.
type SortKey[T any] struct {
	Key           Key[T]
	Descending    bool
	CaseSensitive bool

	// Natural orders digit runs inside text by numeric value.
	Natural bool

	// IgnoreAccents compares text without diacritics.
	IgnoreAccents bool

	// Locale picks collation rules for text; language.Und is the root order.
	Locale language.Tag
}
