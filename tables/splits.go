package tables

import "sort"

// SplitFilter collapses near-duplicate coordinates along one axis into a
// canonical, well-separated list of grid split positions. Nominally
// identical border coordinates jitter by rendering imprecision and
// overlapping strokes; any two values within the tolerance are one line.
type SplitFilter struct {
	config Config
}

// NewSplitFilter creates a filter with the given configuration.
func NewSplitFilter(config Config) *SplitFilter {
	return &SplitFilter{config: config}
}

// Filter deduplicates and sorts the values, then repeatedly replaces the
// first adjacent pair within the tolerance by its arithmetic mean until
// every consecutive gap exceeds the tolerance. The result is strictly
// increasing.
//
// Tolerance closeness is not treated as transitive: for values a, b, c
// with b-a and c-b within tolerance but c-a beyond it, a and b merge to
// their mean and c stays distinct when it is more than the tolerance from
// that mean.
func (f *SplitFilter) Filter(values []float64) ([]float64, error) {
	out := dedupeSorted(values)

	steps := 0
	for {
		merged := false
		for i := 0; i+1 < len(out); i++ {
			if out[i+1]-out[i] > f.config.BorderWidth {
				continue
			}
			steps++
			if steps > f.config.MaxSplitSteps {
				return nil, &StepLimitError{Op: "split filtering", Limit: f.config.MaxSplitSteps}
			}
			// The mean lies between the pair, so the list stays sorted.
			out[i] = (out[i] + out[i+1]) / 2
			out = append(out[:i+1], out[i+2:]...)
			merged = true
			break
		}
		if !merged {
			return out, nil
		}
	}
}

// dedupeSorted returns a sorted copy of values with exact duplicates
// removed.
func dedupeSorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)

	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}
