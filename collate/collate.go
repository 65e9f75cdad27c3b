// Package collate compares strings the way people expect them ordered: by the
// collation rules of a locale, optionally folding case or comparing embedded
// numbers naturally ("file2" before "file10").
//
// A Comparer is not safe for concurrent use; the underlying x/text collator
// keeps scratch buffers. Build one per goroutine (or per sort call).
package collate

import (
	"facette.io/natsort"
	xcollate "golang.org/x/text/collate"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options configures a Comparer. The zero value compares case-insensitively
// using the root collation order.
type Options struct {
	// Locale selects collation rules. language.Und means the CLDR root order.
	Locale language.Tag

	// CaseSensitive disables case folding of both operands.
	CaseSensitive bool

	// Natural compares runs of digits by numeric value. It replaces locale
	// collation with natural ordering.
	Natural bool

	// IgnoreAccents makes "e" and "é" compare equal.
	IgnoreAccents bool
}

// Comparer is a three-way string comparator built from Options.
type Comparer struct {
	opts     Options
	collator *xcollate.Collator
	folder   cases.Caser
}

// New returns a Comparer for the given options.
func New(opts Options) *Comparer {
	var collOpts []xcollate.Option

	if opts.IgnoreAccents {
		collOpts = append(collOpts, xcollate.IgnoreDiacritics)
	}

	return &Comparer{
		opts:     opts,
		collator: xcollate.New(opts.Locale, collOpts...),
		folder:   cases.Fold(),
	}
}

// Options returns the options the Comparer was built with.
func (c *Comparer) Options() Options {
	return c.opts
}

// Compare returns -1, 0 or 1.
func (c *Comparer) Compare(a, b string) int {
	if !c.opts.CaseSensitive {
		a, b = c.folder.String(a), c.folder.String(b)
	}

	if c.opts.Natural {
		return natural(a, b)
	}

	return c.collator.CompareString(a, b)
}

// Func returns Compare as a plain function value.
func (c *Comparer) Func() func(a, b string) int {
	return c.Compare
}

func natural(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}

// ParseLocale parses a BCP 47 tag. The empty string maps to language.Und.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.Und, nil
	}

	return language.Parse(s)
}
