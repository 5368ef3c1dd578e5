package tables

import (
	"github.com/tidwall/rtree"

	"github.com/tabgrid/tabgrid/model"
)

// SegmentGrouper clusters border segment groups into disjoint table-region
// candidates. Two groups belong to the same region when their bounding
// boxes touch within the tolerance, directly or through the combined box
// of already-merged groups.
type SegmentGrouper struct {
	config Config
}

// NewSegmentGrouper creates a grouper with the given configuration.
func NewSegmentGrouper(config Config) *SegmentGrouper {
	return &SegmentGrouper{config: config}
}

// Group merges the input groups to a fixpoint: in the result no two
// bounding boxes touch within the tolerance. Groups keep the position of
// their earliest member, so region order is deterministic.
//
// Each round loads the current boxes into an R-tree, unions every touching
// pair in a disjoint-set structure, and coalesces the components. Because
// a merged component's combined box can touch groups that none of its
// members touched, rounds repeat until no merge happens.
func (g *SegmentGrouper) Group(groups []model.SegmentGroup) ([]model.SegmentGroup, error) {
	tol := g.config.BorderWidth

	current := make([]model.SegmentGroup, len(groups))
	copy(current, groups)

	steps := 0
	for len(current) > 1 {
		var tr rtree.RTreeG[int]
		for i, grp := range current {
			tr.Insert(
				[2]float64{grp.BBox.X.Lo, grp.BBox.Y.Lo},
				[2]float64{grp.BBox.X.Hi, grp.BBox.Y.Hi},
				i,
			)
		}

		uf := newUnionFind(len(current))
		merged := false
		var limitErr error

		for i := range current {
			// Candidate neighbors are entries intersecting the box widened
			// by the tolerance; the exact predicate is re-checked below.
			lo := [2]float64{current[i].BBox.X.Lo - tol, current[i].BBox.Y.Lo - tol}
			hi := [2]float64{current[i].BBox.X.Hi + tol, current[i].BBox.Y.Hi + tol}

			tr.Search(lo, hi, func(_, _ [2]float64, j int) bool {
				if j <= i {
					return true
				}
				steps++
				if steps > g.config.MaxGroupSteps {
					limitErr = &StepLimitError{Op: "segment grouping", Limit: g.config.MaxGroupSteps}
					return false
				}
				if current[i].BBox.Touches(current[j].BBox, tol) {
					if uf.union(i, j) {
						merged = true
					}
				}
				return true
			})
			if limitErr != nil {
				return nil, limitErr
			}
		}

		if !merged {
			break
		}
		current = coalesce(current, uf)
	}

	return current, nil
}

// coalesce combines each disjoint-set component into one group. Output
// order follows the lowest original index in each component.
func coalesce(groups []model.SegmentGroup, uf *unionFind) []model.SegmentGroup {
	slot := make(map[int]int, len(groups))
	out := make([]model.SegmentGroup, 0, len(groups))

	for i, grp := range groups {
		root := uf.find(i)
		if at, ok := slot[root]; ok {
			out[at].Segments = append(out[at].Segments, grp.Segments...)
			out[at].BBox = out[at].BBox.Union(grp.BBox)
			continue
		}
		slot[root] = len(out)
		out = append(out, model.SegmentGroup{
			Segments: append([]model.Segment(nil), grp.Segments...),
			BBox:     grp.BBox,
		})
	}
	return out
}

// unionFind is a disjoint-set forest with path halving and union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union joins the sets containing a and b, reporting whether they were
// previously distinct.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
	return true
}
