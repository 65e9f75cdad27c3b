package sorting

import (
	"testing"
	"time"

	"github.com/amp-labs/amp-sort/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func years(ds []sortable.Date) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		if d.Valid() {
			out[i] = d.Time().Year()
		}
	}

	return out
}

func TestDates(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		in := []string{"2021-01-01", "2020-01-01"}

		assert.Equal(t, []int{2020, 2021}, years(Dates(in, false)))
		assert.Equal(t, []int{2021, 2020}, years(Dates(in, true)))
		assert.Equal(t, []string{"2021-01-01", "2020-01-01"}, in)
	})

	t.Run("times", func(t *testing.T) {
		t.Parallel()

		base := time.Date(2022, 5, 1, 12, 0, 0, 0, time.UTC)
		in := []time.Time{base.Add(time.Hour), base, base.Add(-time.Hour)}

		got := Dates(in, false)
		require.Len(t, got, 3)
		assert.True(t, got[0].Time().Equal(base.Add(-time.Hour)))
		assert.True(t, got[2].Time().Equal(base.Add(time.Hour)))
	})

	t.Run("same instant in different zones ties", func(t *testing.T) {
		t.Parallel()

		got := Dates([]string{"2021-01-01T02:00:00+02:00", "2021-01-01T00:00:00Z", "2020-12-31T00:00:00Z"}, false)
		assert.Equal(t, 2020, got[0].Time().Year())
		assert.Equal(t, "2021-01-01T02:00:00+02:00", got[1].String())
		assert.True(t, got[1].Equals(got[2]))
	})

	t.Run("invalid dates last in both directions", func(t *testing.T) {
		t.Parallel()

		in := []string{"soon", "2019-07-04", "2018-07-04", "later"}

		asc := Dates(in, false)
		assert.Equal(t, []int{2018, 2019, 0, 0}, years(asc))
		assert.False(t, asc[3].Valid())

		desc := Dates(in, true)
		assert.Equal(t, []int{2019, 2018, 0, 0}, years(desc))
		assert.Equal(t, "Invalid Date", desc[2].String())
	})

	t.Run("fragments without a year are invalid", func(t *testing.T) {
		t.Parallel()

		got := Dates([]string{"12:", "2020-05-05", "1/", "10.1."}, false)
		assert.Equal(t, []int{2020, 0, 0, 0}, years(got))

		for _, d := range got[1:] {
			assert.False(t, d.Valid())
		}
	})

	t.Run("already normalized", func(t *testing.T) {
		t.Parallel()

		day := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		in := []sortable.Date{sortable.InvalidDate(), sortable.NewDate(day.AddDate(1, 0, 0)), sortable.NewDate(day)}

		assert.Equal(t, []int{2000, 2001, 0}, years(Dates(in, false)))
	})

	t.Run("empty single and nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Dates([]string{}, false))
		assert.NotNil(t, Dates([]string{}, false))
		assert.Equal(t, []int{1999}, years(Dates([]string{"1999-12-31"}, true)))
		assert.Nil(t, Dates[string](nil, false))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		once := Dates([]string{"2003-01-01", "bad", "2001-01-01", "2002-01-01"}, false)
		assert.Equal(t, once, Dates(once, false))
	})
}

func TestDatesWithOptions(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("minus5", -5*3600)

	got := DatesWithOptions([]string{"31/12/2020", "01/01/2020"}, DateOptions{
		Layouts:    []string{"02/01/2006"},
		Location:   zone,
		Descending: true,
	})

	require.Len(t, got, 2)
	assert.Equal(t, time.December, got[0].Time().Month())
	assert.Equal(t, zone, got[0].Time().Location())
	assert.Equal(t, time.January, got[1].Time().Month())
}
