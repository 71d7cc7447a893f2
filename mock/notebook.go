package mock

import (
	"io"

	"github.com/fwojciec/mathindex"
)

var _ mathindex.NotebookReader = (*NotebookReader)(nil)

// NotebookReader is a mock implementation of mathindex.NotebookReader.
type NotebookReader struct {
	ReadNotebookFn func(r io.Reader) (*mathindex.Notebook, error)
}

func (r *NotebookReader) ReadNotebook(rd io.Reader) (*mathindex.Notebook, error) {
	return r.ReadNotebookFn(rd)
}
