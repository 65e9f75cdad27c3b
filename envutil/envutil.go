// Package envutil reads typed configuration from environment variables.
//
//	level := envutil.SlogLevel("LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrFatal()
package envutil

import (
	"log/slog"
	"os"

	"github.com/amp-labs/amp-sort/xform"
	"golang.org/x/text/language"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// NewReader returns a Reader for the given raw data, for callers whose
// values come from somewhere other than the environment.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

func Float64(key string, opts ...Option[float64]) Reader[float64] {
	return apply(Map(get(key), xform.Float64), opts)
}

func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(get(key), xform.TrimString), xform.SlogLevel), opts)
}

// Locale reads a BCP 47 language tag.
func Locale(key string, opts ...Option[language.Tag]) Reader[language.Tag] {
	return apply(Map(Map(get(key), xform.TrimString), xform.Locale), opts)
}
