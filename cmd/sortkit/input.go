package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/should"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/amp-labs/amp-sort/textenc"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// maxLineBytes bounds a single input line unless streams override it.
const maxLineBytes = 16 << 20

type line struct {
	number int
	text   string
}

func texts(lines []line) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.text
	}

	return out
}

// source names where input comes from: a file, or stdin when the name is
// empty or "-". The charset label is optional.
type source struct {
	name    string
	charset string
}

// withInput calls f with the source decoded to UTF-8.
func withInput(s *streams, src source, f func(io.Reader) error) error {
	var in io.Reader = s.in

	if src.name != "" && src.name != "-" {
		file, err := os.Open(src.name) //nolint:gosec
		if err != nil {
			return err
		}

		defer should.Close(file, "failed to close input file")

		in = file
	}

	decoded, cs, err := textenc.Reader(in, src.charset)
	if err != nil {
		return err
	}

	logger.Get().Debug("read input", "file", src.name, "charset", cs)

	return f(decoded)
}

// readLines reads the input line by line. With trim set, surrounding space
// is removed and blank lines are dropped.
func readLines(s *streams, src source, trim bool) ([]line, error) {
	var lines []line

	err := withInput(s, src, func(r io.Reader) error {
		limit := s.maxLine
		if limit <= 0 {
			limit = maxLineBytes
		}

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, min(limit, 4096)), limit)

		n := 0

		for scanner.Scan() {
			n++

			text := strings.TrimSuffix(scanner.Text(), "\r")
			if trim {
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
			}

			lines = append(lines, line{number: n, text: text})
		}

		if err := scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return fmt.Errorf("%w: line %d is longer than %d bytes", errors.ErrInvalidInput, n+1, limit)
			}

			return err
		}

		return nil
	})

	return lines, err
}

func writeLines(w io.Writer, lines []string) error {
	buf := bufio.NewWriter(w)

	for _, ln := range lines {
		if _, err := buf.WriteString(ln + "\n"); err != nil {
			return err
		}
	}

	return buf.Flush()
}

func readRecords(s *streams, src source) ([]sorting.Record, error) {
	var records []sorting.Record

	err := withInput(s, src, func(r io.Reader) error {
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return fmt.Errorf("%w: expected a JSON array of objects: %w", errors.ErrInvalidInput, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []sorting.Record{}
	}

	return records, nil
}

// keySpec describes one sort key, either parsed from a --key flag or read
// from a keys file.
type keySpec struct {
	Key           string `yaml:"key"`
	Descending    bool   `yaml:"descending"`
	CaseSensitive bool   `yaml:"caseSensitive"`
	Natural       bool   `yaml:"natural"`
	IgnoreAccents bool   `yaml:"ignoreAccents"`
}

func (k keySpec) sortKey(locale language.Tag) sorting.SortKey[sorting.Record] {
	return sorting.SortKey[sorting.Record]{
		Key:           sorting.Field(k.Key),
		Descending:    k.Descending,
		CaseSensitive: k.CaseSensitive,
		Natural:       k.Natural,
		IgnoreAccents: k.IgnoreAccents,
		Locale:        locale,
	}
}

// parseKeySpec reads path[:modifier]... where the modifiers are asc, desc,
// cs (case-sensitive), ci (ignore case), nat (natural order) and noacc
// (ignore accents). Modifiers are taken from the end, so paths may
// themselves contain colons.
func parseKeySpec(raw string) (keySpec, error) {
	spec := keySpec{}
	path := raw

loop:
	for {
		idx := strings.LastIndex(path, ":")
		if idx < 0 {
			break
		}

		switch path[idx+1:] {
		case "asc":
			spec.Descending = false
		case "desc":
			spec.Descending = true
		case "cs":
			spec.CaseSensitive = true
		case "ci":
			spec.CaseSensitive = false
		case "nat":
			spec.Natural = true
		case "noacc":
			spec.IgnoreAccents = true
		default:
			break loop
		}

		path = path[:idx]
	}

	if strings.TrimSpace(path) == "" {
		return keySpec{}, fmt.Errorf("%w: key %q has no path", errors.ErrInvalidInput, raw)
	}

	spec.Key = path

	return spec, nil
}

func readKeysFile(name string) ([]keySpec, error) {
	file, err := os.Open(name) //nolint:gosec
	if err != nil {
		return nil, err
	}

	defer should.Close(file, "failed to close keys file")

	var specs []keySpec

	if err := yaml.NewDecoder(file).Decode(&specs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: keys file %s: %w", errors.ErrInvalidInput, name, err)
	}

	for i, spec := range specs {
		if strings.TrimSpace(spec.Key) == "" {
			return nil, fmt.Errorf("%w: keys file %s: entry %d has no key", errors.ErrInvalidInput, name, i)
		}
	}

	return specs, nil
}
