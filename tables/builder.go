package tables

import (
	"sort"

	"github.com/tabgrid/tabgrid/model"
)

// RegionBuilder turns clustered segment groups into table regions: it
// discards groups too thin to hold a grid, partitions each group's
// segments by orientation, and sorts them into a deterministic order.
type RegionBuilder struct {
	config Config
}

// NewRegionBuilder creates a builder with the given configuration.
func NewRegionBuilder(config Config) *RegionBuilder {
	return &RegionBuilder{config: config}
}

// Build emits one Region per retained group, in input (discovery) order.
// Groups narrower or shorter than the tolerance are border noise and are
// silently dropped.
func (b *RegionBuilder) Build(groups []model.SegmentGroup) []model.Region {
	regions := make([]model.Region, 0, len(groups))

	for _, grp := range groups {
		if grp.BBox.Width() < b.config.BorderWidth || grp.BBox.Height() < b.config.BorderWidth {
			continue
		}

		region := model.Region{BBox: grp.BBox}
		for _, seg := range grp.Segments {
			if seg.Orientation == model.Vertical {
				region.XLines = append(region.XLines, seg)
			} else {
				region.YLines = append(region.YLines, seg)
			}
		}

		sortSegments(region.XLines)
		sortSegments(region.YLines)

		regions = append(regions, region)
	}

	return regions
}

// sortSegments orders segments by (fixed position, extent start, extent
// end), a total order that makes downstream iteration deterministic for
// identical input sets.
func sortSegments(segments []model.Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		a, b := segments[i], segments[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.Extent.Lo != b.Extent.Lo {
			return a.Extent.Lo < b.Extent.Lo
		}
		return a.Extent.Hi < b.Extent.Hi
	})
}
