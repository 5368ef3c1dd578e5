package tables

import (
	"errors"
	"testing"

	"github.com/tabgrid/tabgrid/model"
)

func groupsFromRects(rects ...[4]float64) []model.SegmentGroup {
	groups := make([]model.SegmentGroup, len(rects))
	for i, r := range rects {
		groups[i] = model.RectGroup(r[0], r[1], r[2], r[3])
	}
	return groups
}

func TestSegmentGrouper_DisjointStayApart(t *testing.T) {
	g := NewSegmentGrouper(DefaultConfig())

	groups := groupsFromRects(
		[4]float64{0, 0, 100, 50},
		[4]float64{200, 0, 300, 50},
	)

	result, err := g.Group(groups)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(result))
	}
}

func TestSegmentGrouper_AdjacentCellsMerge(t *testing.T) {
	g := NewSegmentGrouper(DefaultConfig())

	// Two table cells sharing an edge and a third within the tolerance gap.
	groups := groupsFromRects(
		[4]float64{0, 0, 50, 50},
		[4]float64{50, 0, 100, 50},
		[4]float64{100.5, 0, 150, 50},
	)

	result, err := g.Group(groups)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Expected 1 merged group, got %d", len(result))
	}
	if len(result[0].Segments) != 12 {
		t.Errorf("Expected 12 segments in merged group, got %d", len(result[0].Segments))
	}
	want := model.NewBBox(0, 0, 150, 50)
	if result[0].BBox != want {
		t.Errorf("Expected merged bbox %+v, got %+v", want, result[0].BBox)
	}
}

func TestSegmentGrouper_TransitiveChain(t *testing.T) {
	g := NewSegmentGrouper(DefaultConfig())

	// A touches B, B touches C, A and C are far apart. All three must end
	// up in the same group.
	groups := groupsFromRects(
		[4]float64{0, 0, 10, 10},
		[4]float64{11, 0, 20, 10},
		[4]float64{21, 0, 30, 10},
	)

	result, err := g.Group(groups)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Expected 1 group from transitive chain, got %d", len(result))
	}
}

// No two bounding boxes in a grouping result may touch within the
// tolerance; if they did, another merge would still be pending.
func TestSegmentGrouper_ResultIsClosed(t *testing.T) {
	cfg := DefaultConfig()
	g := NewSegmentGrouper(cfg)

	// A grid of cells: some clusters touch, some do not.
	var rects [][4]float64
	for i := 0; i < 5; i++ {
		x := float64(i * 40)
		rects = append(rects, [4]float64{x, 0, x + 30, 30})    // isolated column
		rects = append(rects, [4]float64{x, 30.5, x + 30, 60}) // touches the one below
	}
	groups := groupsFromRects(rects...)

	result, err := g.Group(groups)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}

	for i := range result {
		for j := i + 1; j < len(result); j++ {
			if result[i].BBox.Touches(result[j].BBox, cfg.BorderWidth) {
				t.Errorf("Result groups %d and %d still touch: %+v vs %+v",
					i, j, result[i].BBox, result[j].BBox)
			}
		}
	}
}

func TestSegmentGrouper_Idempotent(t *testing.T) {
	g := NewSegmentGrouper(DefaultConfig())

	groups := groupsFromRects(
		[4]float64{0, 0, 50, 50},
		[4]float64{50, 0, 100, 50},
		[4]float64{200, 0, 250, 50},
	)

	once, err := g.Group(groups)
	if err != nil {
		t.Fatalf("First Group failed: %v", err)
	}
	twice, err := g.Group(once)
	if err != nil {
		t.Fatalf("Second Group failed: %v", err)
	}

	if len(once) != len(twice) {
		t.Fatalf("Expected idempotent grouping, got %d then %d groups", len(once), len(twice))
	}
	for i := range once {
		if once[i].BBox != twice[i].BBox {
			t.Errorf("Group %d bbox changed on regrouping: %+v vs %+v", i, once[i].BBox, twice[i].BBox)
		}
	}
}

func TestSegmentGrouper_PreservesDiscoveryOrder(t *testing.T) {
	g := NewSegmentGrouper(DefaultConfig())

	// First input group sits to the right of the second; output must keep
	// input order, not coordinate order.
	groups := groupsFromRects(
		[4]float64{200, 0, 300, 50},
		[4]float64{0, 0, 100, 50},
	)

	result, err := g.Group(groups)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(result))
	}
	if result[0].BBox.X.Lo != 200 {
		t.Errorf("Expected first group at x=200, got %g", result[0].BBox.X.Lo)
	}
	if result[1].BBox.X.Lo != 0 {
		t.Errorf("Expected second group at x=0, got %g", result[1].BBox.X.Lo)
	}
}

func TestSegmentGrouper_StepLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxGroupSteps = 0
	g := NewSegmentGrouper(cfg)

	groups := groupsFromRects(
		[4]float64{0, 0, 50, 50},
		[4]float64{50, 0, 100, 50},
	)

	_, err := g.Group(groups)
	if err == nil {
		t.Fatal("Expected step limit error, got nil")
	}
	var limit *StepLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("Expected *StepLimitError, got %T: %v", err, err)
	}
	if limit.Limit != 0 {
		t.Errorf("Expected limit 0 in error, got %d", limit.Limit)
	}
}

func TestSegmentGrouper_EmptyAndSingle(t *testing.T) {
	g := NewSegmentGrouper(DefaultConfig())

	result, err := g.Group(nil)
	if err != nil {
		t.Fatalf("Group of nil failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty result, got %d groups", len(result))
	}

	single := groupsFromRects([4]float64{0, 0, 10, 10})
	result, err = g.Group(single)
	if err != nil {
		t.Fatalf("Group of single failed: %v", err)
	}
	if len(result) != 1 {
		t.Errorf("Expected 1 group, got %d", len(result))
	}
}

func BenchmarkSegmentGrouper(b *testing.B) {
	// A 20x20 grid of touching cells that collapses to one region.
	var rects [][4]float64
	for row := 0; row < 20; row++ {
		for col := 0; col < 20; col++ {
			x, y := float64(col*20), float64(row*20)
			rects = append(rects, [4]float64{x, y, x + 20, y + 20})
		}
	}
	groups := groupsFromRects(rects...)
	g := NewSegmentGrouper(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Group(groups); err != nil {
			b.Fatal(err)
		}
	}
}
