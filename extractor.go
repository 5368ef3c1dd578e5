package tabgrid

import (
	"fmt"
	"io"
	"sort"

	"github.com/tabgrid/tabgrid/export"
	"github.com/tabgrid/tabgrid/model"
	"github.com/tabgrid/tabgrid/reader"
	"github.com/tabgrid/tabgrid/tables"
)

// Extractor provides a fluent interface for extracting bordered tables.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: a filename, an opened reader, or pre-parsed page data
	filename string
	reader   *reader.Reader
	pageData []model.PageData

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options, keeping each chain link immutable.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		pageData:     e.pageData,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open. No-op for extractors
// built over pre-parsed page data.
func (e *Extractor) ensureReader() error {
	if e.readerOpened || e.pageData != nil {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times. A file-backed extractor reopens
// its reader on the next terminal operation.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	tbls, _, err := tabgrid.Open("doc.pdf").Pages(1, 3, 5).Tables()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	tbls, _, err := tabgrid.Open("doc.pdf").PageRange(2, 9).Tables()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// BorderWidth sets the touch tolerance in page units (default 1). Border
// segments or split candidates closer than this are treated as one line.
//
// Example:
//
//	tbls, _, err := tabgrid.Open("doc.pdf").BorderWidth(0.5).Tables()
func (e *Extractor) BorderWidth(w float64) *Extractor {
	newExt := e.clone()
	newExt.options.borderWidth = w
	return newExt
}

// KeepOuter retains the outermost row and column of every table. By
// default the cells outside a table's outer border line are treated as
// margin and removed.
func (e *Extractor) KeepOuter() *Extractor {
	newExt := e.clone()
	newExt.options.removeOuter = false
	return newExt
}

// DropEmpty removes rows and columns that never received a non-whitespace
// character.
func (e *Extractor) DropEmpty() *Extractor {
	newExt := e.clone()
	newExt.options.removeEmpty = true
	return newExt
}

// Normalize applies Unicode NFC normalization to cell text.
func (e *Extractor) Normalize() *Extractor {
	newExt := e.clone()
	newExt.options.normalizeText = true
	return newExt
}

// Parallel extracts the tables of each page concurrently. Result order is
// unaffected.
func (e *Extractor) Parallel() *Extractor {
	newExt := e.clone()
	newExt.options.parallel = true
	return newExt
}

// PageCount returns the number of pages in the source.
// Note: for file sources this opens the reader; the reader remains open.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.pageData != nil {
		return len(e.pageData), nil
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.reader.PageCount(), nil
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tables extracts every bordered table from the configured pages, in page
// order and, within a page, in region-discovery order. This is a terminal
// operation that closes the underlying reader.
//
// Returns the tables, any warnings encountered during processing, and an
// error if extraction failed. Warnings indicate non-fatal issues (e.g. a
// character straddling a grid line) where extraction succeeded but results
// may be imperfect.
//
// Example:
//
//	tbls, warnings, err := tabgrid.Open("report.pdf").Tables()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabgrid.FormatWarnings(warnings))
//	}
func (e *Extractor) Tables() ([]model.Table, []Warning, error) {
	tbls, _, warnings, err := e.run(false)
	return tbls, warnings, err
}

// Overlays runs extraction collecting diagnostic geometry per page:
// region boxes, derived grid lines, and assigned-character boxes, keyed by
// page number. The overlay is purely for visualization and never
// influences results. Terminal operation.
func (e *Extractor) Overlays() (map[int]*tables.Overlay, []Warning, error) {
	_, overlays, warnings, err := e.run(true)
	return overlays, warnings, err
}

// CSV extracts tables and renders them as CSV, tables separated by blank
// lines. Terminal operation.
func (e *Extractor) CSV() (string, []Warning, error) {
	tbls, _, warnings, err := e.run(false)
	if err != nil {
		return "", nil, err
	}
	return export.CSVString(tbls), warnings, nil
}

// WriteCSV extracts tables and writes them as CSV to w. Terminal
// operation.
func (e *Extractor) WriteCSV(w io.Writer) ([]Warning, error) {
	tbls, _, warnings, err := e.run(false)
	if err != nil {
		return nil, err
	}
	return warnings, export.WriteCSV(w, tbls)
}

// run executes extraction over the selected pages.
func (e *Extractor) run(collectOverlays bool) ([]model.Table, map[int]*tables.Overlay, []Warning, error) {
	if e.err != nil {
		return nil, nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, nil, err
	}
	defer e.Close()

	pages, err := e.selectPages()
	if err != nil {
		return nil, nil, nil, err
	}

	ext := tables.NewExtractor(e.options.config())

	var out []model.Table
	var warnings []Warning
	var overlays map[int]*tables.Overlay
	if collectOverlays {
		overlays = make(map[int]*tables.Overlay, len(pages))
	}

	for _, page := range pages {
		var ov *tables.Overlay
		if collectOverlays {
			ov = &tables.Overlay{PageWidth: page.Width, PageHeight: page.Height}
			overlays[page.Number] = ov
		}

		tbls, warns, err := ext.ExtractPage(page, ov)
		if err != nil {
			return nil, nil, nil, err
		}
		out = append(out, tbls...)
		warnings = append(warnings, warns...)
	}

	return out, overlays, warnings, nil
}

// selectPages resolves the configured page selection to parsed page data.
func (e *Extractor) selectPages() ([]model.PageData, error) {
	wanted := e.pageFilter()

	if e.pageData != nil {
		if wanted == nil {
			return e.pageData, nil
		}
		var pages []model.PageData
		for _, p := range e.pageData {
			if wanted[p.Number] {
				pages = append(pages, p)
			}
		}
		return pages, nil
	}

	count := e.reader.PageCount()
	var numbers []int
	if wanted == nil {
		for n := 1; n <= count; n++ {
			numbers = append(numbers, n)
		}
	} else {
		for n := range wanted {
			if n >= 1 && n <= count {
				numbers = append(numbers, n)
			}
		}
		sort.Ints(numbers)
	}

	pages := make([]model.PageData, 0, len(numbers))
	for _, n := range numbers {
		page, err := e.reader.Page(n)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", n, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// pageFilter returns the requested page numbers as a set, nil for all.
func (e *Extractor) pageFilter() map[int]bool {
	if e.options.pages == nil {
		return nil
	}
	wanted := make(map[int]bool, len(e.options.pages))
	for _, n := range e.options.pages {
		wanted[n] = true
	}
	return wanted
}
