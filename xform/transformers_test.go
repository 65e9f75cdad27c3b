package xform_test

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/amp-labs/amp-sort/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no whitespace", "hello", "hello"},
		{"both sides", "  hello  ", "hello"},
		{"tabs and newlines", "\t\nhello\n\t", "hello"},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.TrimString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSplitString(t *testing.T) {
	t.Parallel()

	parts, err := xform.SplitString(":")("name:desc:cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "desc", "cs"}, parts)
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	pick := xform.OneOf("asc", "desc")

	v, err := pick("desc")
	require.NoError(t, err)
	assert.Equal(t, "desc", v)

	_, err = pick("sideways")
	require.ErrorIs(t, err, xform.ErrInvalidChoice)
}

func TestFloat64(t *testing.T) {
	t.Parallel()

	v, err := xform.Float64("2.5")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 0)

	v, err = xform.Float64("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, err = xform.Float64("two")
	assert.Error(t, err)
}

func TestPositive(t *testing.T) {
	t.Parallel()

	_, err := xform.Positive(0)
	require.ErrorIs(t, err, xform.ErrNonPositive)

	v, err := xform.Positive(3.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, v, 0)
}

func TestTime(t *testing.T) {
	t.Parallel()

	v, err := xform.Time("2006-01-02")("2021-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), v)

	zone := time.FixedZone("plus2", 2*3600)
	v, err = xform.TimeIn("2006-01-02 15:04", zone)("2021-03-04 10:00")
	require.NoError(t, err)
	assert.Equal(t, 8, v.UTC().Hour())

	_, err = xform.Time("2006-01-02")("yesterday")
	assert.Error(t, err)
}

func TestLocale(t *testing.T) {
	t.Parallel()

	tag, err := xform.Locale("sv")
	require.NoError(t, err)
	assert.Equal(t, "sv", tag.String())

	_, err = xform.Locale("??")
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	level, err := xform.SlogLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = xform.SlogLevel("WARN")
	require.ErrorIs(t, err, xform.ErrInvalidLogLevel)
}

func TestBoolAndLower(t *testing.T) {
	t.Parallel()

	b, err := xform.Bool("true")
	require.NoError(t, err)
	assert.True(t, b)

	s, err := xform.ToLower("DeSc")
	require.NoError(t, err)
	assert.Equal(t, "desc", s)
}
