package compare

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type score int

type label string

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{name: "nil", in: nil, kind: KindGeneric},
		{name: "int", in: 3, kind: KindNumber},
		{name: "uint8", in: uint8(3), kind: KindNumber},
		{name: "float32", in: float32(1.5), kind: KindNumber},
		{name: "named int", in: score(4), kind: KindNumber},
		{name: "string", in: "x", kind: KindText},
		{name: "named string", in: label("x"), kind: KindText},
		{name: "bool", in: true, kind: KindGeneric},
		{name: "time", in: time.Now(), kind: KindGeneric},
		{name: "slice", in: []int{1}, kind: KindGeneric},
		{name: "already tagged", in: Text("y"), kind: KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.kind, Of(tt.in).Kind())
		})
	}

	assert.InDelta(t, 4.0, Of(score(4)).Float(), 0)
	assert.Equal(t, "x", Of(label("x")).Str())
	assert.Equal(t, label("x"), Of(label("x")).Any())
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	assert.Equal(t, -1, Ordered(1, 2, false))
	assert.Equal(t, 1, Ordered(1, 2, true))
	assert.Equal(t, 0, Ordered(2, 2, true))
	assert.Equal(t, -1, Ordered("a", "b", false))

	// NaN goes last in both directions.
	assert.Equal(t, 1, Ordered(nan, 1, false))
	assert.Equal(t, 1, Ordered(nan, 1, true))
	assert.Equal(t, -1, Ordered(1, nan, false))
	assert.Equal(t, -1, Ordered(1, nan, true))
	assert.Equal(t, 0, Ordered(nan, nan, false))
}

func TestValues(t *testing.T) {
	t.Parallel()

	t.Run("numbers", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, Values(Number(1), Number(2), Options{}))
		assert.Equal(t, 1, Values(Number(1), Number(2), Options{Descending: true}))
	})

	t.Run("integers compare exactly", func(t *testing.T) {
		t.Parallel()

		big := int64(1) << 53

		assert.Equal(t, 1, Values(Of(big+1), Of(big), Options{}))
		assert.Equal(t, -1, Values(Of(big+1), Of(big), Options{Descending: true}))
		assert.Equal(t, 1, Values(Of(uint64(math.MaxUint64)), Of(uint64(math.MaxUint64-1)), Options{}))
		assert.Equal(t, 1, Values(Of(uint64(math.MaxInt64)+1), Of(int64(math.MaxInt64)), Options{}))
		assert.Equal(t, -1, Values(Int(-1), Uint(0), Options{}))
		assert.Equal(t, 1, Values(Uint(0), Int(-1), Options{}))
		assert.Equal(t, 0, Values(Int(7), Uint(7), Options{}))
		assert.Equal(t, -1, Values(Int(1), Number(1.5), Options{}))
		assert.Equal(t, -1, Values(Int(1), Number(math.NaN()), Options{Descending: true}))
		assert.False(t, Of(big+1).Equals(Of(big)))
		assert.True(t, Of(uint8(3)).Equals(Of(3)))
	})

	t.Run("text uses the configured comparer", func(t *testing.T) {
		t.Parallel()

		folded := func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		}

		assert.Equal(t, -1, Values(Text("B"), Text("a"), Options{}))
		assert.Equal(t, 1, Values(Text("B"), Text("a"), Options{Text: folded}))
		assert.Equal(t, -1, Values(Text("B"), Text("a"), Options{Text: folded, Descending: true}))
	})

	t.Run("mixed kinds fall back to generic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, Values(Number(5), Text("1"), Options{}))
		assert.Equal(t, 1, Values(Number(5), Text("1"), Options{Descending: true}))
		assert.Equal(t, -1, Values(Text("z"), Missing(), Options{}))
	})
}

func TestAny(t *testing.T) {
	t.Parallel()

	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	tests := []struct {
		name     string
		a        any
		b        any
		expected int
	}{
		{name: "both nil", a: nil, b: nil, expected: 0},
		{name: "nil after value", a: nil, b: 1, expected: 1},
		{name: "false before true", a: false, b: true, expected: -1},
		{name: "equal bools", a: true, b: true, expected: 0},
		{name: "bool before number", a: true, b: 0, expected: -1},
		{name: "numbers", a: 10, b: 2.5, expected: 1},
		{name: "large integers", a: int64(1)<<53 + 1, b: int64(1) << 53, expected: 1},
		{name: "number before string", a: 100, b: "1", expected: -1},
		{name: "strings by bytes", a: "B", b: "a", expected: -1},
		{name: "times", a: early, b: late, expected: -1},
		{name: "string before time", a: "x", b: early, expected: -1},
		{name: "other by text", a: []int{1}, b: []int{2}, expected: -1},
		{name: "tagged operands", a: Generic(true), b: false, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Any(tt.a, tt.b))
			assert.Equal(t, -tt.expected, Any(tt.b, tt.a))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "generic", KindGeneric.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
