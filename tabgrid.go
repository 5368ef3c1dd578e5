// Package tabgrid provides a fluent API for extracting bordered tables
// from PDF pages into text grids and CSV.
//
// Basic usage:
//
//	tbls, warnings, err := tabgrid.Open("report.pdf").Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabgrid.FormatWarnings(warnings))
//	}
//
// With options:
//
//	csv, _, err := tabgrid.Open("report.pdf").
//	    PageRange(2, 9).
//	    BorderWidth(0.5).
//	    CSV()
//
// Callers that already hold geometric primitives (border segments and
// positioned characters) can bypass PDF parsing entirely with
// [FromPageData]. The lower-level tables package exposes the individual
// pipeline stages.
package tabgrid

import (
	"github.com/tabgrid/tabgrid/model"
	"github.com/tabgrid/tabgrid/reader"
)

// Warning is a non-fatal diagnostic accumulated during extraction.
type Warning = model.Warning

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Tables().
//
// Example:
//
//	tbls, warnings, err := tabgrid.Open("report.pdf").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// The caller keeps responsibility for closing the reader.
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// FromPageData creates an Extractor over pre-parsed page primitives,
// with no PDF involved.
//
// Example:
//
//	page := model.PageData{
//	    Number: 1,
//	    Groups: []model.SegmentGroup{model.RectGroup(0, 0, 100, 50)},
//	    Chars:  chars,
//	}
//	tbls, _, err := tabgrid.FromPageData(page).Tables()
func FromPageData(pages ...model.PageData) *Extractor {
	return &Extractor{
		pageData: pages,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts or tests
// where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables wraps a terminal operation returning (T, []Warning, error),
// panicking on error and discarding warnings.
//
// Example:
//
//	tbls := tabgrid.MustTables(tabgrid.Open("report.pdf").Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
