// Package model defines the data types exchanged between the page parser
// and the table extraction core.
//
// # Input contract
//
// A page parser supplies one [PageData] per page: the border [Segment]
// groups drawn on it (initially one [SegmentGroup] per rectangle, built
// with [RectGroup]) and every positioned [Char] in reading order. Callers
// holding loose line segments instead of rectangles can wrap them with
// [GroupsFromSegments].
//
// # Output contract
//
// The core produces a sequence of [Table] values per page, each a grid of
// [Cell] values in top-to-bottom reading order. A cell is either present
// (a stripped string, possibly empty) or absent; the Present flag keeps
// the two distinguishable through serialization.
//
// # Geometry
//
// [Span] and [BBox] carry the interval arithmetic the clustering relies
// on, notably the tolerance-widened Touches predicate.
package model
