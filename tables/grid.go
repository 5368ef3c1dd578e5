package tables

import (
	"fmt"
	"sort"

	"github.com/tabgrid/tabgrid/model"
)

// SplitIndex returns the number of split values strictly less than v: the
// bin index of v among the len(splits)+1 bins the ordered splits induce.
// A value exactly on a split truncates toward the lower bin.
func SplitIndex(splits []float64, v float64) int {
	return sort.SearchFloat64s(splits, v)
}

// Grid is the implicit cell structure induced by one table's split lists,
// with every page character assigned to exactly one cell.
type Grid struct {
	XSplits []float64
	YSplits []float64

	cells      [][]model.Char // row-major, indexed [row*Cols()+col]
	colVisible []bool
	rowVisible []bool
}

// Cols returns the number of column bins.
func (g *Grid) Cols() int {
	return len(g.XSplits) + 1
}

// Rows returns the number of row bins.
func (g *Grid) Rows() int {
	return len(g.YSplits) + 1
}

// Cell returns the characters assigned to (row, col), in encounter order.
func (g *Grid) Cell(row, col int) []model.Char {
	return g.cells[row*g.Cols()+col]
}

// GridAssembler builds a Grid from the two split lists and assigns every
// character to a cell by the midpoint rule.
type GridAssembler struct {
	config Config
}

// NewGridAssembler creates an assembler with the given configuration.
func NewGridAssembler(config Config) *GridAssembler {
	return &GridAssembler{config: config}
}

// Assemble places each character in the cell containing the midpoint of
// its bounding box. A non-whitespace character whose span straddles a
// split on either axis produces a warning but is still assigned by the
// midpoint, truncating toward the lower index on ties.
//
// Row and column visibility starts all-true, or all-false when RemoveEmpty
// is set, in which case a non-whitespace character marks its row and
// column visible. RemoveOuter then unconditionally hides the first and
// last row and column: cells outside the outermost border line are margin,
// never content, no matter what lands there.
func (a *GridAssembler) Assemble(xSplits, ySplits []float64, chars []model.Char) (*Grid, []model.Warning) {
	grid := &Grid{XSplits: xSplits, YSplits: ySplits}
	grid.cells = make([][]model.Char, grid.Cols()*grid.Rows())
	grid.colVisible = makeFlags(grid.Cols(), !a.config.RemoveEmpty)
	grid.rowVisible = makeFlags(grid.Rows(), !a.config.RemoveEmpty)

	var warnings []model.Warning

	for _, c := range chars {
		col, crossesX := binIndex(xSplits, c.X0, c.X1)
		row, crossesY := binIndex(ySplits, c.Y0, c.Y1)

		if !c.IsBlank() {
			if crossesX {
				warnings = append(warnings, crossingWarning(c, "column"))
			}
			if crossesY {
				warnings = append(warnings, crossingWarning(c, "row"))
			}
		}

		i := row*grid.Cols() + col
		grid.cells[i] = append(grid.cells[i], c)

		if !c.IsBlank() {
			grid.colVisible[col] = true
			grid.rowVisible[row] = true
		}
	}

	if a.config.RemoveOuter {
		grid.colVisible[0] = false
		grid.colVisible[len(grid.colVisible)-1] = false
		grid.rowVisible[0] = false
		grid.rowVisible[len(grid.rowVisible)-1] = false
	}

	return grid, warnings
}

// binIndex returns the authoritative bin for the range [p0, p1], the bin
// of its midpoint, and whether the range endpoints fall in different bins.
func binIndex(splits []float64, p0, p1 float64) (int, bool) {
	i0 := SplitIndex(splits, p0)
	i1 := SplitIndex(splits, p1)
	return SplitIndex(splits, (p0+p1)/2), i0 != i1
}

func crossingWarning(c model.Char, axis string) model.Warning {
	return model.Warning{
		Code:    model.WarnCrossingChar,
		Message: fmt.Sprintf("character %q crosses a %s boundary", c.Text, axis),
	}
}

func makeFlags(n int, v bool) []bool {
	flags := make([]bool, n)
	if v {
		for i := range flags {
			flags[i] = true
		}
	}
	return flags
}
