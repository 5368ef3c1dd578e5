package tables

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tabgrid/tabgrid/model"
)

// Extractor runs the full pipeline on one page: segment grouping, region
// building, then per-region split filtering, grid assembly, and row
// extraction.
type Extractor struct {
	config Config
}

// NewExtractor creates a page extractor with the given configuration.
func NewExtractor(config Config) *Extractor {
	return &Extractor{config: config}
}

// ExtractPage returns the page's tables in region-discovery order, along
// with any non-fatal warnings.
//
// A step-budget failure during grouping fails the page. A step-budget
// failure during split filtering skips only the affected table: the table
// is dropped, a warning is recorded, and the rest of the page completes.
//
// When ov is non-nil it receives diagnostic geometry for every stage.
// With Config.Parallel set, regions are processed concurrently; they share
// no mutable state once grouping has made them disjoint.
func (e *Extractor) ExtractPage(page model.PageData, ov *Overlay) ([]model.Table, []model.Warning, error) {
	grouped, err := NewSegmentGrouper(e.config).Group(page.Groups)
	if err != nil {
		return nil, nil, fmt.Errorf("page %d: %w", page.Number, err)
	}

	regions := NewRegionBuilder(e.config).Build(grouped)
	for _, region := range regions {
		ov.AddRect(LayerTable, region.BBox)
	}

	results := make([]*model.Table, len(regions))
	warnLists := make([][]model.Warning, len(regions))

	process := func(i int) error {
		table, warnings, err := e.extractRegion(page, regions[i], ov)
		if err != nil {
			var limit *StepLimitError
			if errors.As(err, &limit) {
				warnLists[i] = []model.Warning{{
					Code:    model.WarnTableSkipped,
					Page:    page.Number,
					Message: err.Error(),
				}}
				return nil
			}
			return err
		}
		results[i] = table
		warnLists[i] = warnings
		return nil
	}

	if e.config.Parallel {
		var g errgroup.Group
		for i := range regions {
			i := i
			g.Go(func() error { return process(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := range regions {
			if err := process(i); err != nil {
				return nil, nil, err
			}
		}
	}

	var out []model.Table
	var warnings []model.Warning
	for i := range regions {
		if results[i] != nil {
			out = append(out, *results[i])
		}
		warnings = append(warnings, warnLists[i]...)
	}
	return out, warnings, nil
}

// extractRegion processes one table region. Fewer than two splits on
// either axis cannot form a grid; the table then has zero rows, which is
// not an error.
func (e *Extractor) extractRegion(page model.PageData, region model.Region, ov *Overlay) (*model.Table, []model.Warning, error) {
	filter := NewSplitFilter(e.config)

	xSplits, err := filter.Filter(linePositions(region.XLines))
	if err != nil {
		return nil, nil, err
	}
	ySplits, err := filter.Filter(linePositions(region.YLines))
	if err != nil {
		return nil, nil, err
	}

	for _, x := range xSplits {
		ov.AddLine(LayerSplit,
			model.Point{X: x, Y: region.BBox.Y.Lo},
			model.Point{X: x, Y: region.BBox.Y.Hi})
	}
	for _, y := range ySplits {
		ov.AddLine(LayerSplit,
			model.Point{X: region.BBox.X.Lo, Y: y},
			model.Point{X: region.BBox.X.Hi, Y: y})
	}

	table := &model.Table{Page: page.Number, BBox: region.BBox}
	if len(xSplits) < 2 || len(ySplits) < 2 {
		return table, nil, nil
	}

	grid, warnings := NewGridAssembler(e.config).Assemble(xSplits, ySplits, page.Chars)
	for i := range warnings {
		warnings[i].Page = page.Number
	}

	table.Rows = NewRowExtractor(e.config).Extract(grid, ov)
	return table, warnings, nil
}

// linePositions extracts the fixed coordinate of each line: x positions of
// vertical lines feed the column splits, y positions of horizontal lines
// feed the row splits.
func linePositions(lines []model.Segment) []float64 {
	positions := make([]float64, len(lines))
	for i, line := range lines {
		positions[i] = line.Position
	}
	return positions
}
