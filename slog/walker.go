package slog

import (
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/mathindex"
)

// Ensure LoggingWalker implements mathindex.Walker.
var _ mathindex.Walker = (*LoggingWalker)(nil)

// LoggingWalker wraps a Walker with logging.
type LoggingWalker struct {
	next   mathindex.Walker
	logger *slog.Logger
}

// NewLoggingWalker creates a new LoggingWalker.
func NewLoggingWalker(next mathindex.Walker, logger *slog.Logger) *LoggingWalker {
	return &LoggingWalker{next: next, logger: logger}
}

// Walk delegates to the wrapped walker and logs totals when the walk ends.
func (w *LoggingWalker) Walk(root string) iter.Seq2[mathindex.FileOccurrence, error] {
	return func(yield func(mathindex.FileOccurrence, error) bool) {
		var (
			files, count int
			last         string
			err          error
		)
		defer func(begin time.Time) {
			w.logger.Info("directory walk",
				"root", root,
				"files", files,
				"count", count,
				"duration", time.Since(begin),
				"err", err,
			)
		}(time.Now())

		for fo, walkErr := range w.next.Walk(root) {
			if walkErr != nil {
				err = walkErr
			} else {
				count++
				if fo.Path != last {
					files++
					last = fo.Path
				}
			}
			if !yield(fo, walkErr) {
				return
			}
		}
	}
}
