package tables

import (
	"sync"

	"github.com/tabgrid/tabgrid/model"
)

// Layer tags overlay geometry by the pipeline stage that produced it.
type Layer string

const (
	// LayerTable holds the bounding box of each clustered table region.
	LayerTable Layer = "table"
	// LayerSplit holds the grid lines derived from split filtering.
	LayerSplit Layer = "split"
	// LayerChar holds the bounding box of each character assigned to a
	// visible cell.
	LayerChar Layer = "char"
)

// OverlayRect is one tagged rectangle.
type OverlayRect struct {
	Layer Layer
	BBox  model.BBox
}

// OverlayLine is one tagged line segment.
type OverlayLine struct {
	Layer Layer
	From  model.Point
	To    model.Point
}

// Overlay collects diagnostic geometry for visualization. It never
// influences extraction results. A nil *Overlay is a valid no-op
// collector, so pipeline stages can add to it unconditionally. Collection
// is safe under concurrent per-table extraction.
type Overlay struct {
	PageWidth  float64
	PageHeight float64

	mu    sync.Mutex
	Rects []OverlayRect
	Lines []OverlayLine
}

// AddRect records a tagged rectangle. No-op on a nil receiver.
func (o *Overlay) AddRect(layer Layer, bbox model.BBox) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.Rects = append(o.Rects, OverlayRect{Layer: layer, BBox: bbox})
	o.mu.Unlock()
}

// AddLine records a tagged line segment. No-op on a nil receiver.
func (o *Overlay) AddLine(layer Layer, from, to model.Point) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.Lines = append(o.Lines, OverlayLine{Layer: layer, From: from, To: to})
	o.mu.Unlock()
}
