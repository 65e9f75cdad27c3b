// Package jsonpath resolves field paths inside JSON-like records
// (map[string]any). A path is either a plain key ("name", matched literally,
// dots included) or JSONPath bracket notation ("$['address']['zip']") for
// nested fields.
package jsonpath

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for path parsing.
var (
	ErrPathEmpty          = errors.New("path cannot be empty")
	ErrPathEmptySegment   = errors.New("path contains empty segment")
	ErrPathInvalidSyntax  = errors.New("invalid bracket notation syntax")
	ErrPathNoValidSegment = errors.New("no valid segments found in path")
)

var segmentRe = regexp.MustCompile(`\['([^']*)'\]`)

// Path is a parsed field path.
type Path struct {
	raw      string
	segments []string
}

// Parse parses a plain key or a bracket notation path.
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, ErrPathEmpty
	}

	if !IsNestedPath(path) {
		return Path{raw: path, segments: []string{path}}, nil
	}

	matches := segmentRe.FindAllStringSubmatchIndex(path, -1)
	if len(matches) == 0 {
		return Path{}, fmt.Errorf("%w: %s", ErrPathNoValidSegment, path)
	}

	segments := make([]string, 0, len(matches))
	next := 1 // just past the "$"

	for idx, m := range matches {
		if m[0] != next {
			return Path{}, fmt.Errorf("%w: %s", ErrPathInvalidSyntax, path)
		}

		key := path[m[2]:m[3]]
		if key == "" {
			return Path{}, fmt.Errorf("%w: segment %d", ErrPathEmptySegment, idx)
		}

		segments = append(segments, key)
		next = m[1]
	}

	if next != len(path) {
		return Path{}, fmt.Errorf("%w: %s", ErrPathInvalidSyntax, path)
	}

	return Path{raw: path, segments: segments}, nil
}

// MustParse is like Parse but panics on error. Intended for constant paths.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the path as it was given to Parse.
func (p Path) String() string {
	return p.raw
}

// Segments returns the keys walked from the root.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Lookup walks the record. It reports false when a key is absent or when an
// intermediate value is not an object. A present key holding null yields
// (nil, true).
func (p Path) Lookup(record map[string]any, caseInsensitive bool) (any, bool) {
	if len(p.segments) == 0 {
		return nil, false
	}

	current := record

	for idx, key := range p.segments {
		value, ok := lookupKey(current, key, caseInsensitive)
		if !ok {
			return nil, false
		}

		if idx == len(p.segments)-1 {
			return value, true
		}

		current, ok = value.(map[string]any)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}

// lookupKey prefers an exact match over a case-insensitive one.
func lookupKey(m map[string]any, key string, caseInsensitive bool) (any, bool) {
	if value, exists := m[key]; exists {
		return value, true
	}

	if caseInsensitive {
		for k, v := range m {
			if strings.EqualFold(k, key) {
				return v, true
			}
		}
	}

	return nil, false
}

// IsNestedPath checks if a field name is a JSONPath bracket notation path.
func IsNestedPath(fieldName string) bool {
	return strings.HasPrefix(fieldName, "$[")
}

// ToNestedPath converts path keys into JSONPath bracket notation.
//
//   - ToNestedPath("address") -> "$['address']"
//   - ToNestedPath("address", "city") -> "$['address']['city']"
func ToNestedPath(keys ...string) string {
	if len(keys) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("$")

	for _, key := range keys {
		b.WriteString("['")
		b.WriteString(key)
		b.WriteString("']")
	}

	return b.String()
}
