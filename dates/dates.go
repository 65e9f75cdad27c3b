// Package dates turns date values and date text into sortable.Date.
//
// Text is tried against the caller's layouts first, in order, and then
// handed to dateparse, which recognizes ISO 8601, RFC 1123/822/850, ANSIC,
// "Jan 2, 2006", "2006/01/02", US-style "01/02/2006", unix timestamps and
// many more. Text without zone information is read in the parser's location
// (UTC unless configured).
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/amp-labs/amp-sort/xform"
	"github.com/araddon/dateparse"
)

// Datelike is the set of element types that can be normalized to a Date.
type Datelike interface {
	time.Time | string | sortable.Date
}

// Parser parses date text. The zero value is ready to use.
type Parser struct {
	// Layouts are Go reference-time layouts tried before automatic parsing.
	Layouts []string

	// Location applies to text without zone information. Nil means UTC.
	Location *time.Location
}

func (p Parser) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}

	return p.Location
}

// Parse returns the instant described by text, or ErrUnparseableDate.
func (p Parser) Parse(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty text", errors.ErrUnparseableDate)
	}

	for _, layout := range p.Layouts {
		if t, err := xform.TimeIn(layout, p.location())(trimmed); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseIn(trimmed, p.location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", errors.ErrUnparseableDate, text, err)
	}

	// dateparse fills in year 0 for fragments like "12:" or "1/".
	if t.Year() == 0 {
		return time.Time{}, fmt.Errorf("%w: %q has no year", errors.ErrUnparseableDate, text)
	}

	return t, nil
}

// Date parses text, absorbing failures into the invalid date.
func (p Parser) Date(text string) sortable.Date {
	t, err := p.Parse(text)
	if err != nil {
		logger.Get().Debug("unparseable date text, using invalid date", "text", text, "error", err)

		return sortable.InvalidDate()
	}

	return sortable.NewDate(t)
}

// Parse parses text with the zero Parser.
func Parse(text string) (time.Time, error) {
	return Parser{}.Parse(text)
}

// ParseOrInvalid parses text with the zero Parser, returning the invalid
// date when the text is not a date.
func ParseOrInvalid(text string) sortable.Date {
	return Parser{}.Date(text)
}

// Normalize converts one element to a Date. Times are always valid, text is
// parsed, and Dates pass through.
func Normalize[D Datelike](value D, p Parser) sortable.Date {
	switch v := any(value).(type) {
	case time.Time:
		return sortable.NewDate(v)
	case string:
		return p.Date(v)
	case sortable.Date:
		return v
	default:
		return sortable.InvalidDate()
	}
}

// NormalizeAll converts every element, preserving order.
func NormalizeAll[D Datelike](seq []D, p Parser) []sortable.Date {
	if seq == nil {
		return nil
	}

	out := make([]sortable.Date, len(seq))
	for i, v := range seq {
		out[i] = Normalize(v, p)
	}

	return out
}
