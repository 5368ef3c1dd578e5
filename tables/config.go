package tables

// Default step budgets for the two merge fixpoints. Exhausting a budget is
// a guard against pathological inputs (e.g. thousands of disjoint hairline
// segments) and surfaces as a *StepLimitError.
const (
	DefaultMaxGroupSteps = 10_000_000
	DefaultMaxSplitSteps = 100_000
)

// DefaultBorderWidth is the default touch tolerance in page units.
const DefaultBorderWidth = 1.0

// Config controls table extraction. All values are bound when a pipeline
// stage is constructed and never mutated mid-computation.
type Config struct {
	// BorderWidth is the touch tolerance: the maximum gap, in page units,
	// at which two segments or two split candidates are treated as the
	// same line or region.
	BorderWidth float64

	// RemoveOuter drops the first and last row and column of every table.
	// Cells outside the outermost border line are margin, not content.
	RemoveOuter bool

	// RemoveEmpty drops rows and columns that never received a
	// non-whitespace character.
	RemoveEmpty bool

	// NormalizeText applies Unicode NFC normalization to cell text.
	NormalizeText bool

	// Parallel extracts the tables of a page concurrently. Output order
	// is unaffected.
	Parallel bool

	// MaxGroupSteps bounds candidate-pair checks during segment grouping.
	MaxGroupSteps int

	// MaxSplitSteps bounds merge operations during split filtering.
	MaxSplitSteps int
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		BorderWidth:   DefaultBorderWidth,
		RemoveOuter:   true,
		RemoveEmpty:   false,
		NormalizeText: false,
		Parallel:      false,
		MaxGroupSteps: DefaultMaxGroupSteps,
		MaxSplitSteps: DefaultMaxSplitSteps,
	}
}
