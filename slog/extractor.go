package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mathindex"
)

// Ensure LoggingExtractor implements mathindex.MathExtractor.
var _ mathindex.MathExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MathExtractor with debug logging.
type LoggingExtractor struct {
	next   mathindex.MathExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mathindex.MathExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the number of spans found.
func (e *LoggingExtractor) Extract(markdown string) (spans []string) {
	defer func(begin time.Time) {
		e.logger.Debug("math extraction",
			"bytes", len(markdown),
			"count", len(spans),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(markdown)
}
