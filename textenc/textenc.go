// Package textenc normalizes input text to UTF-8 before it is sorted.
//
// With an explicit charset label (any WHATWG encoding label, such as
// "latin1" or "windows-1252") the bytes are decoded from that charset. Without
// one, valid UTF-8 passes through untouched and anything else goes through
// charset detection.
package textenc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

const utf8Label = "utf-8"

// ToUTF8 returns data decoded to UTF-8 along with the name of the charset it
// was decoded from. An unknown label is an ErrInvalidInput.
func ToUTF8(data []byte, label string) ([]byte, string, error) {
	label = strings.TrimSpace(label)

	if label != "" {
		decoded, err := decode(data, label)
		if err != nil {
			return nil, "", fmt.Errorf("%w: charset %q: %w", errors.ErrInvalidInput, label, err)
		}

		return decoded, label, nil
	}

	if utf8.Valid(data) {
		return data, utf8Label, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		logger.Get().Debug("charset detection failed, keeping raw bytes", "error", err)

		return data, utf8Label, nil
	}

	decoded, err := decode(data, best.Charset)
	if err != nil || !utf8.Valid(decoded) {
		logger.Get().Debug("cannot decode detected charset, keeping raw bytes",
			"charset", best.Charset, "confidence", best.Confidence)

		return data, utf8Label, nil
	}

	return decoded, best.Charset, nil
}

// Reader reads all of r and returns a reader over its UTF-8 form.
func Reader(r io.Reader, label string) (io.Reader, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}

	decoded, name, err := ToUTF8(data, label)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewReader(decoded), name, nil
}

func decode(data []byte, label string) ([]byte, error) {
	rdr, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return io.ReadAll(rdr)
}
