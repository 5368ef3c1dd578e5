package tables

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tabgrid/tabgrid/model"
)

// RowExtractor turns an assembled grid into output rows: it prunes hidden
// rows and columns, concatenates per-cell text, and reorders rows into
// top-to-bottom reading order.
type RowExtractor struct {
	config Config
}

// NewRowExtractor creates an extractor with the given configuration.
func NewRowExtractor(config Config) *RowExtractor {
	return &RowExtractor{config: config}
}

// Extract walks visible rows and columns in increasing index order. Each
// visible cell's characters are concatenated in assignment order and
// stripped of surrounding whitespace; a cell that never received a
// character becomes an absent value, distinct from a whitespace-only cell
// that strips to the empty string.
//
// Grid row 0 is the visual bottom of the page, so the assembled rows are
// reversed before returning: the first result row is the topmost.
//
// When ov is non-nil, the bounding box of every character contributing to
// a visible cell is added to the char overlay layer.
func (r *RowExtractor) Extract(grid *Grid, ov *Overlay) [][]model.Cell {
	var rows [][]model.Cell

	for y := 0; y < grid.Rows(); y++ {
		if !grid.rowVisible[y] {
			continue
		}

		var row []model.Cell
		for x := 0; x < grid.Cols(); x++ {
			if !grid.colVisible[x] {
				continue
			}

			chars := grid.Cell(y, x)
			if len(chars) == 0 {
				row = append(row, model.AbsentCell())
				continue
			}

			var sb strings.Builder
			for _, c := range chars {
				sb.WriteString(c.Text)
				ov.AddRect(LayerChar, model.NewBBox(c.X0, c.Y0, c.X1, c.Y1))
			}

			text := strings.TrimSpace(sb.String())
			if r.config.NormalizeText {
				text = norm.NFC.String(text)
			}
			row = append(row, model.Cell{Text: text, Present: true})
		}
		rows = append(rows, row)
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}
