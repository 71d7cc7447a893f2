package ipynb

import (
	"encoding/json"

	"github.com/fwojciec/mathindex"
)

type notebookV4 struct {
	Cells []cellV4 `json:"cells"`
}

type cellV4 struct {
	CellType string     `json:"cell_type"`
	Source   multiline  `json:"source"`
	Outputs  []outputV4 `json:"outputs"`
}

type outputV4 struct {
	OutputType string     `json:"output_type"`
	Data       mimeBundle `json:"data"`
}

func decodeV4(data []byte) ([]*mathindex.Cell, error) {
	var nb notebookV4
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, err
	}

	cells := make([]*mathindex.Cell, 0, len(nb.Cells))
	for _, c := range nb.Cells {
		cell := &mathindex.Cell{
			Type:   mathindex.CellType(c.CellType),
			Source: string(c.Source),
		}
		for _, o := range c.Outputs {
			cell.Outputs = append(cell.Outputs, &mathindex.Output{
				Type: mathindex.OutputType(o.OutputType),
				Data: o.Data.strings(),
			})
		}
		cells = append(cells, cell)
	}
	return cells, nil
}
