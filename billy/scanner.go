// Package billy implements notebook scanning and directory walking on top
// of go-billy filesystems.
package billy

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"

	"github.com/fwojciec/mathindex"
	"github.com/go-git/go-billy/v5"
)

// Ensure Scanner implements mathindex.NotebookScanner at compile time.
var _ mathindex.NotebookScanner = (*Scanner)(nil)

// Scanner finds math in notebook files stored on a billy filesystem.
type Scanner struct {
	fs        billy.Filesystem
	reader    mathindex.NotebookReader
	extractor mathindex.MathExtractor
}

// NewScanner creates a new Scanner reading notebooks from fsys.
func NewScanner(fsys billy.Filesystem, reader mathindex.NotebookReader, extractor mathindex.MathExtractor) *Scanner {
	return &Scanner{
		fs:        fsys,
		reader:    reader,
		extractor: extractor,
	}
}

// Scan loads the notebook at path and returns its math occurrences.
func (s *Scanner) Scan(path string) (iter.Seq[mathindex.Occurrence], error) {
	f, err := s.fs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, mathindex.Errorf(mathindex.ENOTFOUND, "No such file or directory: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	nb, err := s.reader.ReadNotebook(f)
	if err != nil {
		return nil, mathindex.Errorf(mathindex.ErrorCode(err), "%s: %s", path, mathindex.ErrorMessage(err))
	}

	return mathindex.ScanNotebook(nb, s.extractor), nil
}
