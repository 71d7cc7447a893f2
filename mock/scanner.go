package mock

import (
	"iter"

	"github.com/fwojciec/mathindex"
)

var _ mathindex.NotebookScanner = (*NotebookScanner)(nil)

// NotebookScanner is a mock implementation of mathindex.NotebookScanner.
type NotebookScanner struct {
	ScanFn func(path string) (iter.Seq[mathindex.Occurrence], error)
}

func (s *NotebookScanner) Scan(path string) (iter.Seq[mathindex.Occurrence], error) {
	return s.ScanFn(path)
}

var _ mathindex.Walker = (*Walker)(nil)

// Walker is a mock implementation of mathindex.Walker.
type Walker struct {
	WalkFn func(root string) iter.Seq2[mathindex.FileOccurrence, error]
}

func (w *Walker) Walk(root string) iter.Seq2[mathindex.FileOccurrence, error] {
	return w.WalkFn(root)
}
