package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/amp-labs/amp-sort/xform"
)

// NumbersCmd sorts one number per line. Blank lines are skipped.
type NumbersCmd struct {
	Desc bool   `short:"d" help:"Sort in descending order."`
	File string `arg:"" optional:"" help:"Input file; stdin when omitted or \"-\"."`
}

func (c *NumbersCmd) Run(ctx context.Context, cli *CLI, s *streams) error {
	lines, err := readLines(s, cli.source(c.File), true)
	if err != nil {
		return err
	}

	var errs errors.Collection

	values := make([]float64, 0, len(lines))

	for _, ln := range lines {
		v, err := xform.Float64(ln.text)
		if err != nil {
			errs.Add(fmt.Errorf("%w: line %d: %q is not a number", errors.ErrInvalidInput, ln.number, ln.text))

			continue
		}

		values = append(values, v)
	}

	if errs.HasError() {
		return errs.GetError()
	}

	sorted := sorting.Numbers(values, c.Desc)

	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	logger.Get(ctx).Debug("sorted numbers", "count", len(out), "descending", c.Desc)

	return writeLines(s.out, out)
}

// StringsCmd sorts lines of text. Blank lines are kept.
type StringsCmd struct {
	Desc          bool   `short:"d" help:"Sort in descending order."`
	CaseSensitive bool   `name:"case-sensitive" short:"s" help:"Do not fold case before comparing."`
	Natural       bool   `short:"n" help:"Order digit runs by numeric value (img2 before img10)."`
	IgnoreAccents bool   `name:"ignore-accents" short:"a" help:"Compare letters without their accents."`
	Locale        string `help:"BCP 47 collation locale (env SORTKIT_LOCALE)." default:"${locale}"`
	File          string `arg:"" optional:"" help:"Input file; stdin when omitted or \"-\"."`
}

func (c *StringsCmd) Run(ctx context.Context, cli *CLI, s *streams) error {
	tag, err := xform.Locale(c.Locale)
	if err != nil {
		return fmt.Errorf("%w: --locale: %w", errors.ErrInvalidInput, err)
	}

	lines, err := readLines(s, cli.source(c.File), false)
	if err != nil {
		return err
	}

	sorted := sorting.Strings(texts(lines), sorting.StringOptions{
		CaseSensitive: c.CaseSensitive,
		Descending:    c.Desc,
		Natural:       c.Natural,
		IgnoreAccents: c.IgnoreAccents,
		Locale:        tag,
	})

	logger.Get(ctx).Debug("sorted strings", "count", len(sorted), "locale", tag.String())

	return writeLines(s.out, sorted)
}

// DatesCmd sorts one date per line and prints them in RFC 3339 form.
type DatesCmd struct {
	Desc   bool     `short:"d" help:"Sort in descending order."`
	Layout []string `short:"l" sep:"none" help:"Go reference-time layout tried before automatic parsing. Repeatable."`
	Zone   string   `short:"z" help:"IANA zone for dates without offset." default:"UTC"`
	File   string   `arg:"" optional:"" help:"Input file; stdin when omitted or \"-\"."`
}

func (c *DatesCmd) Run(ctx context.Context, cli *CLI, s *streams) error {
	loc, err := time.LoadLocation(c.Zone)
	if err != nil {
		return fmt.Errorf("%w: --zone: %w", errors.ErrInvalidInput, err)
	}

	lines, err := readLines(s, cli.source(c.File), true)
	if err != nil {
		return err
	}

	sorted := sorting.DatesWithOptions(texts(lines), sorting.DateOptions{
		Descending: c.Desc,
		Layouts:    c.Layout,
		Location:   loc,
	})

	out := make([]string, len(sorted))
	invalid := 0

	for i, d := range sorted {
		if !d.Valid() {
			invalid++
		}

		out[i] = d.String()
	}

	logger.Get(ctx).Debug("sorted dates", "count", len(out), "invalid", invalid)

	return writeLines(s.out, out)
}

// RecordsCmd sorts a JSON array of objects.
type RecordsCmd struct {
	Key      []string `short:"k" sep:"none" help:"Sort key as path[:desc][:cs][:nat][:noacc]. Repeatable; earlier keys take precedence."`
	KeysFile string   `name:"keys-file" help:"YAML file listing sort keys; applied before --key."`
	Locale   string   `help:"BCP 47 collation locale (env SORTKIT_LOCALE)." default:"${locale}"`
	File     string   `arg:"" optional:"" help:"Input file; stdin when omitted or \"-\"."`
}

func (c *RecordsCmd) Run(ctx context.Context, cli *CLI, s *streams) error {
	tag, err := xform.Locale(c.Locale)
	if err != nil {
		return fmt.Errorf("%w: --locale: %w", errors.ErrInvalidInput, err)
	}

	specs, err := c.keySpecs()
	if err != nil {
		return err
	}

	records, err := readRecords(s, cli.source(c.File))
	if err != nil {
		return err
	}

	keys := make([]sorting.SortKey[sorting.Record], len(specs))
	for i, spec := range specs {
		keys[i] = spec.sortKey(tag)
	}

	sorted, err := sorting.ByMultipleKeys(records, keys)
	if err != nil {
		logger.Get(ctx).Error("cannot sort records", "error", err)

		return err
	}

	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")

	return enc.Encode(sorted)
}

func (c *RecordsCmd) keySpecs() ([]keySpec, error) {
	var specs []keySpec

	if c.KeysFile != "" {
		fromFile, err := readKeysFile(c.KeysFile)
		if err != nil {
			return nil, err
		}

		specs = append(specs, fromFile...)
	}

	var errs errors.Collection

	for _, raw := range c.Key {
		spec, err := parseKeySpec(raw)
		if err != nil {
			errs.Add(err)

			continue
		}

		specs = append(specs, spec)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return specs, nil
}
