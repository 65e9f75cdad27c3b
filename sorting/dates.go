package sorting

import (
	"time"

	"github.com/amp-labs/amp-sort/dates"
	"github.com/amp-labs/amp-sort/sortable"
)

// DateOptions configures DatesWithOptions.
type DateOptions struct {
	Descending bool

	// Layouts are tried, in order, before automatic parsing of text.
	Layouts []string

	// Location applies to text without zone information. Nil means UTC.
	Location *time.Location
}

// Dates normalizes every element to a date, parsing text, then sorts by
// instant. Text that is not a date becomes an invalid date, and invalid dates
// sort last.
func Dates[D dates.Datelike](seq []D, descending bool) []sortable.Date {
	return DatesWithOptions(seq, DateOptions{Descending: descending})
}

// DatesWithOptions is Dates with control over parsing.
func DatesWithOptions[D dates.Datelike](seq []D, opts DateOptions) []sortable.Date {
	parser := dates.Parser{Layouts: opts.Layouts, Location: opts.Location}

	return sortable.Sorted(dates.NormalizeAll(seq, parser), opts.Descending)
}
