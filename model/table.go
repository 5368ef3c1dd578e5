package model

import "strings"

// Region is the finalized result of clustering and filtering: the border
// lines of one table-region candidate, partitioned by orientation and
// sorted. Immutable once built.
type Region struct {
	XLines []Segment // vertical lines, sorted by (x, yLo)
	YLines []Segment // horizontal lines, sorted by (y, xLo)
	BBox   BBox
}

// Cell is one grid cell value. Present distinguishes a cell that received
// characters (possibly all whitespace, stripping to "") from a cell that
// never received any. Serializers must preserve the distinction.
type Cell struct {
	Text    string
	Present bool
}

// AbsentCell returns the absent-value marker.
func AbsentCell() Cell {
	return Cell{}
}

// Table is one extracted table: rows of cells in top-to-bottom reading
// order, left-to-right within a row.
type Table struct {
	Page int // 1-indexed page the table was found on
	BBox BBox
	Rows [][]Cell
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// GetText renders the table as tab-separated lines, absent cells empty.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
