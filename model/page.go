package model

import "strings"

// Char represents a single positioned glyph supplied by the page parser.
// The core never mutates it.
type Char struct {
	X0, X1 float64 // horizontal extent
	Y0, Y1 float64 // vertical extent
	Text   string
}

// MidX returns the horizontal midpoint of the glyph's box.
func (c Char) MidX() float64 {
	return (c.X0 + c.X1) / 2
}

// MidY returns the vertical midpoint of the glyph's box.
func (c Char) MidY() float64 {
	return (c.Y0 + c.Y1) / 2
}

// IsBlank reports whether the glyph carries only whitespace.
func (c Char) IsBlank() bool {
	return strings.TrimSpace(c.Text) == ""
}

// PageData holds the geometric primitives of one page: the border segment
// groups discovered on it and every positioned character. It is the input
// contract between the page parser and the table extraction core.
type PageData struct {
	Number int     // 1-indexed page number
	Width  float64 // page width in points
	Height float64 // page height in points

	Groups []SegmentGroup // initial clusters, one per drawn rectangle
	Chars  []Char         // characters in reading (encounter) order
}
