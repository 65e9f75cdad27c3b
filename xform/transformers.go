// Package xform holds small value transformers of the shape
// func(A) (B, error). They compose with envutil.Map and with each other.
package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/amp-labs/amp-sort/collate"
	"golang.org/x/text/language"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// SplitString returns a transformer that splits a string by the given separator.
func SplitString(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		return strings.Split(s, sep), nil
	}
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that validates a value is one of the allowed choices.
// Returns ErrInvalidChoice if the value doesn't match any of the choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v", ErrInvalidChoice, value)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Float64 parses a string as a float64. "NaN" and "Inf" are accepted.
func Float64(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// Positive validates that a numeric value is greater than zero.
func Positive[A Numeric](value A) (A, error) { // nolint:ireturn
	if value <= 0 {
		return value, ErrNonPositive
	}

	return value, nil
}

// Time returns a transformer that parses a string as a time.Time using the given layout.
// The layout uses Go's reference time format (Mon Jan 2 15:04:05 MST 2006).
func Time(layout string) func(string) (time.Time, error) {
	return TimeIn(layout, time.UTC)
}

// TimeIn is like Time, but text without zone information is read in loc.
func TimeIn(layout string, loc *time.Location) func(string) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	return func(value string) (time.Time, error) {
		return time.ParseInLocation(layout, value, loc)
	}
}

// Locale parses a BCP 47 language tag such as "en-US" or "sv".
func Locale(value string) (language.Tag, error) {
	return collate.ParseLocale(value)
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
