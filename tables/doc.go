// Package tables extracts grid-structured tabular data from the border
// segments and positioned characters of one document page.
//
// # Pipeline
//
// Extraction is a strictly downward data flow:
//
//  1. [SegmentGrouper] - clusters border segments into disjoint
//     bounding-box regions by tolerance-widened touch merging.
//  2. [RegionBuilder] - drops degenerate regions and partitions each
//     region's segments into sorted vertical and horizontal line lists.
//  3. [SplitFilter] - collapses near-duplicate line coordinates into one
//     canonical split position per axis.
//  4. [GridAssembler] - assigns every character to exactly one grid cell
//     by the midpoint rule and tracks row/column occupancy.
//  5. [RowExtractor] - prunes hidden rows and columns, concatenates cell
//     text, and reorders rows into reading order.
//
// [Extractor.ExtractPage] runs the whole pipeline; the stages are exported
// for callers that need only part of it.
//
// # Configuration
//
// Behavior is controlled by [Config], bound at construction:
//
//	cfg := tables.DefaultConfig()
//	cfg.BorderWidth = 0.5
//	ext := tables.NewExtractor(cfg)
//	tbls, warnings, err := ext.ExtractPage(page, nil)
//
// # Failure model
//
// The only error condition is a [StepLimitError]: one of the two merge
// fixpoints exhausted its step budget on pathological input. It is scoped
// as narrowly as possible - split filtering failure skips one table and
// the rest of the page completes. Degenerate regions, grids with fewer
// than two splits on an axis, and characters straddling a split all
// degrade silently (the last one with a warning).
//
// # Diagnostics
//
// Pass an [Overlay] to collect tagged geometry (region boxes, split lines,
// assigned-character boxes) for visualization. The overlay never affects
// results.
package tables
