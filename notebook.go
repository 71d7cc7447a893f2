package mathindex

import "io"

// Extension is the file name suffix of notebook documents.
const Extension = ".ipynb"

// MIMELaTeX is the output MIME type carrying rendered LaTeX.
const MIMELaTeX = "text/latex"

// CellType identifies the kind of a notebook cell.
type CellType string

// Cell types defined by the notebook format.
const (
	CellTypeCode     CellType = "code"
	CellTypeMarkdown CellType = "markdown"
	CellTypeRaw      CellType = "raw"
)

// OutputType identifies the kind of a code cell output.
type OutputType string

// Output types defined by the notebook format.
const (
	OutputTypeExecuteResult OutputType = "execute_result"
	OutputTypeDisplayData   OutputType = "display_data"
	OutputTypeStream        OutputType = "stream"
	OutputTypeError         OutputType = "error"
)

// Notebook represents a parsed notebook document.
type Notebook struct {
	Cells []*Cell
}

// Cell represents a single notebook cell.
type Cell struct {
	Type   CellType
	Source string

	// Outputs is only populated for code cells.
	Outputs []*Output
}

// Output represents a single output of a code cell.
type Output struct {
	Type OutputType

	// Data maps MIME types to their content.
	Data map[string]string
}

// LaTeX returns the rendered LaTeX carried by the output.
// Only display and execute results are considered.
func (o *Output) LaTeX() (string, bool) {
	if o.Type != OutputTypeDisplayData && o.Type != OutputTypeExecuteResult {
		return "", false
	}
	latex, ok := o.Data[MIMELaTeX]
	return latex, ok
}

// NotebookReader decodes notebook documents.
type NotebookReader interface {
	// ReadNotebook decodes a notebook document from r.
	// Returns EINVALID if the content is not a supported notebook.
	ReadNotebook(r io.Reader) (*Notebook, error)
}
