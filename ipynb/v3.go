package ipynb

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/mathindex"
)

// Version 3 output keys that map to MIME types in version 4.
var mimeKeys = map[string]string{
	"text":       "text/plain",
	"html":       "text/html",
	"svg":        "image/svg+xml",
	"png":        "image/png",
	"jpeg":       "image/jpeg",
	"latex":      "text/latex",
	"json":       "application/json",
	"javascript": "application/javascript",
}

// Version 3 output keys that are not part of the output data.
var outputMetaKeys = map[string]bool{
	"output_type":   true,
	"prompt_number": true,
	"metadata":      true,
}

type notebookV3 struct {
	Worksheets []struct {
		Cells []cellV3 `json:"cells"`
	} `json:"worksheets"`
}

type cellV3 struct {
	CellType string       `json:"cell_type"`
	Source   multiline    `json:"source"`
	Input    multiline    `json:"input"`
	Level    int          `json:"level"`
	Outputs  []mimeBundle `json:"outputs"`
}

// decodeV3 decodes a version 3 notebook and upgrades its cells to the
// version 4 model. Cells of all worksheets are concatenated.
func decodeV3(data []byte) ([]*mathindex.Cell, error) {
	var nb notebookV3
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, err
	}

	var cells []*mathindex.Cell
	for _, ws := range nb.Worksheets {
		for _, c := range ws.Cells {
			cells = append(cells, upgradeCell(c))
		}
	}
	return cells, nil
}

func upgradeCell(c cellV3) *mathindex.Cell {
	switch c.CellType {
	case "code":
		cell := &mathindex.Cell{Type: mathindex.CellTypeCode, Source: string(c.Input)}
		for _, o := range c.Outputs {
			cell.Outputs = append(cell.Outputs, upgradeOutput(o))
		}
		return cell
	case "heading":
		level := c.Level
		if level == 0 {
			level = 1
		}
		return &mathindex.Cell{
			Type:   mathindex.CellTypeMarkdown,
			Source: strings.Repeat("#", level) + " " + strings.Join(splitLines(string(c.Source)), " "),
		}
	case "html":
		return &mathindex.Cell{Type: mathindex.CellTypeMarkdown, Source: string(c.Source)}
	default:
		return &mathindex.Cell{Type: mathindex.CellType(c.CellType), Source: string(c.Source)}
	}
}

func upgradeOutput(o mimeBundle) *mathindex.Output {
	var outputType string
	_ = json.Unmarshal(o["output_type"], &outputType)

	switch outputType {
	case "pyout", "display_data":
		data := make(mimeBundle)
		for key, raw := range o {
			if outputMetaKeys[key] {
				continue
			}
			if mime, ok := mimeKeys[key]; ok {
				key = mime
			}
			data[key] = raw
		}
		output := &mathindex.Output{Type: mathindex.OutputTypeDisplayData, Data: data.strings()}
		if outputType == "pyout" {
			output.Type = mathindex.OutputTypeExecuteResult
		}
		return output
	case "pyerr":
		return &mathindex.Output{Type: mathindex.OutputTypeError}
	default:
		return &mathindex.Output{Type: mathindex.OutputType(outputType)}
	}
}

// splitLines splits s into lines without their line endings.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
