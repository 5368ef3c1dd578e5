// Package reader parses PDF pages into the geometric primitives the table
// extraction core consumes: border segment groups from drawn rectangles
// and positioned characters from text content.
//
// Structural access (validation, page geometry) goes through pdfcpu;
// positioned content comes from ledongthuc/pdf. Standalone path-drawn
// lines are not exposed by the content API, so tables must be bordered by
// rectangle elements - the common case for drawn table grids.
package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tabgrid/tabgrid/model"
)

// Reader provides page-by-page access to a PDF file's geometric content.
type Reader struct {
	path string
	file *os.File
	pdf  *pdf.Reader
	dims []types.Dim
}

// Open opens a PDF file for page extraction. The returned Reader must be
// closed when done.
func Open(path string) (*Reader, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page geometry of %s: %w", path, err)
	}

	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return &Reader{path: path, file: file, pdf: r, dims: dims}, nil
}

// Close releases the underlying file. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Page extracts the geometric primitives of one page (1-indexed). Each
// drawn rectangle contributes one initial segment group holding its four
// edges; each positioned text item becomes a character with its box
// derived from position, advance width, and font size. Whitespace-only
// items are dropped.
func (r *Reader) Page(n int) (model.PageData, error) {
	if n < 1 || n > r.pdf.NumPage() {
		return model.PageData{}, fmt.Errorf("page %d out of range [1, %d]", n, r.pdf.NumPage())
	}

	page := r.pdf.Page(n)
	if page.V.IsNull() {
		return model.PageData{}, fmt.Errorf("page %d has no content", n)
	}

	data := model.PageData{Number: n}
	if n-1 < len(r.dims) {
		data.Width = r.dims[n-1].Width
		data.Height = r.dims[n-1].Height
	}

	content := page.Content()

	for _, rect := range content.Rect {
		data.Groups = append(data.Groups,
			model.RectGroup(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y))
	}

	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		data.Chars = append(data.Chars, model.Char{
			X0:   t.X,
			X1:   t.X + t.W,
			Y0:   t.Y,
			Y1:   t.Y + t.FontSize,
			Text: t.S,
		})
	}

	return data, nil
}
