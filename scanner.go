package mathindex

import "iter"

// NotebookScanner finds math in notebook files.
type NotebookScanner interface {
	// Scan loads the notebook at path and returns its math occurrences.
	// The notebook is read eagerly; occurrences are produced on demand.
	// Returns ENOTFOUND if the file does not exist and EINVALID if it is
	// not a notebook document.
	Scan(path string) (iter.Seq[Occurrence], error)
}

// Walker finds math in every notebook below a directory.
type Walker interface {
	// Walk traverses the tree rooted at root depth-first and yields the
	// occurrences of every notebook file, paired with its path relative to
	// root. Directories named "build" are never entered. A non-nil error is
	// yielded at most once and ends the walk.
	Walk(root string) iter.Seq2[FileOccurrence, error]
}

// BuildDir is the name of directories skipped by walkers. Packaging tools
// stage a copy of the source tree there.
const BuildDir = "build"

// ScanNotebook returns the math occurrences of nb in traversal order.
// Fragment ids are numbered from 1 across markdown and output matches.
func ScanNotebook(nb *Notebook, extractor MathExtractor) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		n, ok := 0, true
		for i, cell := range nb.Cells {
			switch cell.Type {
			case CellTypeCode:
				n, ok = scanOutputs(cell, i+1, n, yield)
			case CellTypeMarkdown:
				n, ok = scanMarkdown(cell, i+1, n, extractor, yield)
			}
			if !ok {
				return
			}
		}
	}
}

// scanOutputs yields the LaTeX outputs of a code cell. It takes the number
// of occurrences seen so far and returns the updated count.
func scanOutputs(cell *Cell, cellIx, n int, yield func(Occurrence) bool) (int, bool) {
	for i, output := range cell.Outputs {
		latex, ok := output.LaTeX()
		if !ok {
			continue
		}
		n++
		if !yield(Occurrence{
			Cell:     cellIx,
			Output:   i + 1,
			LaTeX:    latex,
			Fragment: FragmentID(n),
		}) {
			return n, false
		}
	}
	return n, true
}

// scanMarkdown yields the math spans of a markdown cell.
func scanMarkdown(cell *Cell, cellIx, n int, extractor MathExtractor, yield func(Occurrence) bool) (int, bool) {
	for _, latex := range extractor.Extract(cell.Source) {
		n++
		if !yield(Occurrence{
			Cell:     cellIx,
			LaTeX:    latex,
			Fragment: FragmentID(n),
		}) {
			return n, false
		}
	}
	return n, true
}
