package model

import "math"

// Point represents a 2D point in page coordinates (origin bottom-left).
type Point struct {
	X, Y float64
}

// Span represents a closed 1-D interval [Lo, Hi] along one axis.
type Span struct {
	Lo, Hi float64
}

// NewSpan creates a span from two endpoints in either order.
func NewSpan(a, b float64) Span {
	if a > b {
		a, b = b, a
	}
	return Span{Lo: a, Hi: b}
}

// Length returns the extent of the span.
func (s Span) Length() float64 {
	return s.Hi - s.Lo
}

// Contains reports whether v lies within the span, widened by tol on
// both sides.
func (s Span) Contains(v, tol float64) bool {
	return s.Lo-tol <= v && v <= s.Hi+tol
}

// Touches reports whether two spans overlap, are adjacent, or are within
// tol of overlapping. The check is symmetric over all four endpoint
// combinations.
func (s Span) Touches(other Span, tol float64) bool {
	return s.Contains(other.Lo, tol) ||
		s.Contains(other.Hi, tol) ||
		other.Contains(s.Lo, tol) ||
		other.Contains(s.Hi, tol)
}

// Union returns the smallest span covering both spans.
func (s Span) Union(other Span) Span {
	return Span{
		Lo: math.Min(s.Lo, other.Lo),
		Hi: math.Max(s.Hi, other.Hi),
	}
}

// BBox represents an axis-aligned bounding box as a pair of spans.
type BBox struct {
	X Span
	Y Span
}

// NewBBox creates a bounding box from two corner coordinates in either order.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X: NewSpan(x0, x1), Y: NewSpan(y0, y1)}
}

// Width returns the horizontal extent.
func (b BBox) Width() float64 {
	return b.X.Length()
}

// Height returns the vertical extent.
func (b BBox) Height() float64 {
	return b.Y.Length()
}

// Touches reports whether two boxes overlap, are adjacent, or are within
// tol of overlapping on both axes.
func (b BBox) Touches(other BBox, tol float64) bool {
	return b.X.Touches(other.X, tol) && b.Y.Touches(other.Y, tol)
}

// Union returns the smallest box covering both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X: b.X.Union(other.X),
		Y: b.Y.Union(other.Y),
	}
}
