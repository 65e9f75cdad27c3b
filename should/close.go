// Package should holds cleanup helpers for defer statements: failures are
// logged instead of returned.
package should

import (
	"io"

	"github.com/amp-labs/amp-sort/logger"
)

// Close closes closer and logs msg at error level if that fails.
//
//	defer should.Close(file, "failed to close input file")
func Close(closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get().Error(msg, "error", err)
	}
}
