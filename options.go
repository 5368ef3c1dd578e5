package tabgrid

import "github.com/tabgrid/tabgrid/tables"

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Page selection (1-indexed, nil means all pages)
	pages []int

	// Geometry
	borderWidth float64

	// Output shaping
	removeOuter   bool
	removeEmpty   bool
	normalizeText bool

	// Processing
	parallel bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	cfg := tables.DefaultConfig()
	return ExtractOptions{
		pages:         nil,
		borderWidth:   cfg.BorderWidth,
		removeOuter:   cfg.RemoveOuter,
		removeEmpty:   cfg.RemoveEmpty,
		normalizeText: cfg.NormalizeText,
		parallel:      cfg.Parallel,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}

// config converts the options to a core pipeline configuration.
func (o ExtractOptions) config() tables.Config {
	cfg := tables.DefaultConfig()
	cfg.BorderWidth = o.borderWidth
	cfg.RemoveOuter = o.removeOuter
	cfg.RemoveEmpty = o.removeEmpty
	cfg.NormalizeText = o.normalizeText
	cfg.Parallel = o.parallel
	return cfg
}
