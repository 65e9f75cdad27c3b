package xform

import (
	"errors"
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNonPositive   = errors.New("value must be positive")

	// ErrInvalidLogLevel is returned when a log level string is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | int | uint
}
