package mock

import "github.com/fwojciec/mathindex"

var _ mathindex.MathExtractor = (*MathExtractor)(nil)

// MathExtractor is a mock implementation of mathindex.MathExtractor.
type MathExtractor struct {
	ExtractFn func(markdown string) []string
}

func (e *MathExtractor) Extract(markdown string) []string {
	return e.ExtractFn(markdown)
}
