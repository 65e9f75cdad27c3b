package sortable

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type task struct {
	priority int
	name     string
}

func (t task) Equals(other task) bool {
	return t == other
}

func (t task) LessThan(other task) bool {
	return t.priority < other.priority
}

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Compare(Int(1), Int(2)))
	assert.Equal(t, 1, Compare(String("b"), String("a")))
	assert.Equal(t, 0, Compare(Byte('x'), Byte('x')))
}

func TestSorted(t *testing.T) {
	t.Parallel()

	t.Run("ascending", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []Int{1, 2, 3}, Sorted([]Int{3, 1, 2}, false))
	})

	t.Run("descending", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []String{"c", "b", "a"}, Sorted([]String{"b", "c", "a"}, true))
	})

	t.Run("does not mutate", func(t *testing.T) {
		t.Parallel()

		in := []Byte{'c', 'a', 'b'}
		_ = Sorted(in, false)

		assert.Equal(t, []Byte{'c', 'a', 'b'}, in)
	})

	t.Run("stable", func(t *testing.T) {
		t.Parallel()

		in := []task{{2, "x"}, {1, "first"}, {2, "y"}, {1, "second"}}

		assert.Equal(t,
			[]task{{1, "first"}, {1, "second"}, {2, "x"}, {2, "y"}},
			Sorted(in, false))
		assert.Equal(t,
			[]task{{2, "x"}, {2, "y"}, {1, "first"}, {1, "second"}},
			Sorted(in, true))
	})

	t.Run("nil and empty", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Sorted[Int](nil, false))
		assert.Equal(t, []Int{}, Sorted([]Int{}, false))
		assert.Equal(t, []Int{7}, Sorted([]Int{7}, true))
	})
}

func TestSorted_UndefinedLast(t *testing.T) {
	t.Parallel()

	nan := Float(math.NaN())

	asc := Sorted([]Float{2, nan, 1, 3}, false)
	assert.Equal(t, []Float{1, 2, 3}, asc[:3])
	assert.True(t, asc[3].Undefined())

	desc := Sorted([]Float{2, nan, 1, 3}, true)
	assert.Equal(t, []Float{3, 2, 1}, desc[:3])
	assert.True(t, desc[3].Undefined())

	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := Sorted([]Date{InvalidDate(), NewDate(day.AddDate(1, 0, 0)), NewDate(day)}, true)
	assert.True(t, dates[0].Time().After(dates[1].Time()))
	assert.False(t, dates[2].Valid())
}

func TestFloat(t *testing.T) {
	t.Parallel()

	nan := Float(math.NaN())

	assert.True(t, Float(1).LessThan(2))
	assert.True(t, Float(1).LessThan(nan))
	assert.False(t, nan.LessThan(1))
	assert.False(t, nan.LessThan(nan))
	assert.True(t, nan.Equals(nan))
	assert.False(t, Float(1).Equals(nan))
	assert.True(t, Float(0).Equals(Float(math.Copysign(0, -1))))
}

func TestDate(t *testing.T) {
	t.Parallel()

	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	sameInstant := day.In(time.FixedZone("X", 3600))

	assert.True(t, NewDate(day).Equals(NewDate(sameInstant)))
	assert.True(t, InvalidDate().Equals(InvalidDate()))
	assert.False(t, InvalidDate().Equals(NewDate(day)))
	assert.True(t, NewDate(day).LessThan(InvalidDate()))
	assert.False(t, InvalidDate().LessThan(NewDate(day)))
	assert.True(t, NewDate(day).LessThan(NewDate(day.Add(time.Second))))
	assert.Equal(t, "2020-01-01T00:00:00Z", NewDate(day).String())
	assert.Equal(t, "Invalid Date", InvalidDate().String())
	assert.True(t, InvalidDate().Time().IsZero())
}
