package model

// Orientation distinguishes horizontal from vertical border segments.
type Orientation int

const (
	// Horizontal segments have a fixed y coordinate and span a range of x.
	Horizontal Orientation = iota
	// Vertical segments have a fixed x coordinate and span a range of y.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Segment represents one straight border line on a page. Position is the
// fixed coordinate (y for horizontal, x for vertical) and Extent is the
// range spanned along the other axis.
type Segment struct {
	Orientation Orientation
	Position    float64
	Extent      Span
}

// HSegment creates a horizontal segment at height y spanning [x0, x1].
func HSegment(y, x0, x1 float64) Segment {
	return Segment{Orientation: Horizontal, Position: y, Extent: NewSpan(x0, x1)}
}

// VSegment creates a vertical segment at x spanning [y0, y1].
func VSegment(x, y0, y1 float64) Segment {
	return Segment{Orientation: Vertical, Position: x, Extent: NewSpan(y0, y1)}
}

// BBox returns the segment's (degenerate) bounding box.
func (s Segment) BBox() BBox {
	if s.Orientation == Vertical {
		return BBox{X: Span{Lo: s.Position, Hi: s.Position}, Y: s.Extent}
	}
	return BBox{X: s.Extent, Y: Span{Lo: s.Position, Hi: s.Position}}
}

// SegmentGroup is a mutable cluster of border segments and their combined
// bounding box. Clustering starts from one group per drawn rectangle and
// merges groups whose boxes touch.
type SegmentGroup struct {
	Segments []Segment
	BBox     BBox
}

// RectGroup creates the initial group for a drawn rectangle: its four edge
// segments plus the rectangle's bounding box.
func RectGroup(x0, y0, x1, y1 float64) SegmentGroup {
	return SegmentGroup{
		Segments: []Segment{
			HSegment(y0, x0, x1),
			HSegment(y1, x0, x1),
			VSegment(x0, y0, y1),
			VSegment(x1, y0, y1),
		},
		BBox: NewBBox(x0, y0, x1, y1),
	}
}

// GroupsFromSegments wraps loose border segments as single-segment groups,
// the entry point for callers that hold individual lines rather than
// rectangles.
func GroupsFromSegments(segments []Segment) []SegmentGroup {
	groups := make([]SegmentGroup, len(segments))
	for i, s := range segments {
		groups[i] = SegmentGroup{Segments: []Segment{s}, BBox: s.BBox()}
	}
	return groups
}
