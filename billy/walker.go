package billy

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/mathindex"
	"github.com/go-git/go-billy/v5"
)

// Ensure Walker implements mathindex.Walker at compile time.
var _ mathindex.Walker = (*Walker)(nil)

// Walker walks a billy filesystem and scans every notebook it finds.
type Walker struct {
	fs      billy.Filesystem
	scanner mathindex.NotebookScanner
}

// NewWalker creates a new Walker. The scanner must read from the same
// filesystem.
func NewWalker(fsys billy.Filesystem, scanner mathindex.NotebookScanner) *Walker {
	return &Walker{
		fs:      fsys,
		scanner: scanner,
	}
}

// Walk traverses the tree rooted at root top-down. Within a directory,
// entries are visited in name order: notebook files first, then
// subdirectories. Directories named mathindex.BuildDir are pruned and
// unreadable subdirectories are skipped.
func (w *Walker) Walk(root string) iter.Seq2[mathindex.FileOccurrence, error] {
	return func(yield func(mathindex.FileOccurrence, error) bool) {
		entries, err := w.fs.ReadDir(root)
		if err != nil {
			yield(mathindex.FileOccurrence{}, fmt.Errorf("read directory %s: %w", root, err))
			return
		}
		w.walkDir(root, "", entries, yield)
	}
}

// walkDir scans the notebooks in dir and descends into its subdirectories.
// rel is the path of dir relative to the walk root. Returns false once the
// walk must stop.
func (w *Walker) walkDir(dir, rel string, entries []os.FileInfo, yield func(mathindex.FileOccurrence, error) bool) bool {
	slices.SortFunc(entries, func(a, b os.FileInfo) int {
		return strings.Compare(a.Name(), b.Name())
	})

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if name != mathindex.BuildDir {
				subdirs = append(subdirs, name)
			}
			continue
		}
		if !strings.HasSuffix(name, mathindex.Extension) {
			continue
		}

		relPath := filepath.Join(rel, name)
		occurrences, err := w.scanner.Scan(filepath.Join(dir, name))
		if err != nil {
			yield(mathindex.FileOccurrence{Path: relPath}, err)
			return false
		}
		for o := range occurrences {
			if !yield(mathindex.FileOccurrence{Path: relPath, Occurrence: o}, nil) {
				return false
			}
		}
	}

	for _, name := range subdirs {
		entries, err := w.fs.ReadDir(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if !w.walkDir(filepath.Join(dir, name), filepath.Join(rel, name), entries, yield) {
			return false
		}
	}
	return true
}
