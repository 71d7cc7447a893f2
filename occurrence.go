package mathindex

import "strconv"

// Occurrence represents one piece of math found in a notebook.
type Occurrence struct {
	// Cell is the 1-based index of the cell containing the math.
	Cell int

	// Output is the 1-based index of the code cell output holding the math.
	// Zero for math found in markdown cells.
	Output int

	// LaTeX is the math text. Markdown matches keep their delimiters,
	// output matches hold the raw LaTeX content.
	LaTeX string

	// Fragment is the anchor of the rendered math element.
	Fragment string
}

// FileOccurrence is an Occurrence found while walking a directory.
type FileOccurrence struct {
	// Path is the notebook path relative to the walk root.
	Path string

	Occurrence
}

// FragmentID returns the anchor of the n-th rendered math element of a notebook.
// Numbering starts at 1.
func FragmentID(n int) string {
	return "MathJax-Element-" + strconv.Itoa(n) + "-Frame"
}
