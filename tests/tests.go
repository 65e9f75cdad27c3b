// Package tests carries test metadata (a unique id, the test name and a
// logger that writes through t.Log) on a context.Context.
//
//	func TestSomething(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//	    logger.Get(ctx).Info("visible with go test -v")
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

type contextKey string

const (
	// testIdKey holds "test-" followed by a random UUID.
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
	testTestKey contextKey = "testTest"
)

// GetUniqueContext derives a context from t.Context() carrying a unique test
// id, the test name, t itself, and a slog logger bound to t.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testTestKey, t)
	ctx = context.WithValue(ctx, testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())

	return logger.WithLogger(ctx, slogt.New(t).With("test_id", id))
}

// CheckSkipped skips t when the boolean environment variable envKey is true.
// The optional arguments are the default value and whether to invert the
// check.
func CheckSkipped(t *testing.T, envKey string, defaultValue ...bool) {
	t.Helper()

	defl := false
	invert := false

	if len(defaultValue) > 0 {
		defl = defaultValue[0]
	}

	if len(defaultValue) > 1 {
		invert = defaultValue[1]
	}

	shouldSkip := envutil.Bool(envKey, envutil.Default(defl)).ValueOrElse(defl)

	original := shouldSkip

	if invert {
		shouldSkip = !shouldSkip
	}

	if shouldSkip {
		t.Skipf("Skipping test because of environment variable: %s=%v",
			envKey, original)
	}
}

func getValue[T any](ctx context.Context, key contextKey) (T, bool) {
	var zero T

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(T)

	return v, ok
}

// GetTestName returns the full test name, including subtests.
func GetTestName(ctx context.Context) (string, bool) {
	return getValue[string](ctx, testNameKey)
}

// GetTestId returns the unique test identifier.
func GetTestId(ctx context.Context) (string, bool) {
	return getValue[string](ctx, testIdKey)
}

// GetTest returns the testing.T the context was created for.
func GetTest(ctx context.Context) (*testing.T, bool) {
	return getValue[*testing.T](ctx, testTestKey)
}

// Info is the test metadata stored on a context.
type Info struct {
	Test *testing.T `json:"-"`
	Id   string     `json:"id"`
	Name string     `json:"name"`
}

// GetTestInfo returns whatever test metadata is present, and false when
// there is none.
func GetTestInfo(ctx context.Context) (Info, bool) {
	name, nameOk := GetTestName(ctx)
	id, idOk := GetTestId(ctx)
	t, tOk := GetTest(ctx)

	if !nameOk && !idOk && !tOk {
		return Info{}, false
	}

	return Info{
		Test: t,
		Id:   id,
		Name: name,
	}, true
}
