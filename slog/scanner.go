// Package slog provides log/slog decorators for mathindex services.
package slog

import (
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/mathindex"
)

// Ensure LoggingScanner implements mathindex.NotebookScanner.
var _ mathindex.NotebookScanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a NotebookScanner with logging.
type LoggingScanner struct {
	next   mathindex.NotebookScanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next mathindex.NotebookScanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner. Load failures are logged
// immediately; successful scans are logged with their occurrence count once
// the sequence has been consumed.
func (s *LoggingScanner) Scan(path string) (iter.Seq[mathindex.Occurrence], error) {
	begin := time.Now()
	occurrences, err := s.next.Scan(path)
	if err != nil {
		s.logger.Info("notebook scan",
			"path", path,
			"count", 0,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	return func(yield func(mathindex.Occurrence) bool) {
		count := 0
		defer func() {
			s.logger.Info("notebook scan",
				"path", path,
				"count", count,
				"duration", time.Since(begin),
				"err", nil,
			)
		}()
		for o := range occurrences {
			count++
			if !yield(o) {
				return
			}
		}
	}, nil
}
