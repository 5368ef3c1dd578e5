// Package export serializes extraction results: tables to CSV and
// diagnostic overlays to SVG.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tabgrid/tabgrid/model"
)

// WriteCSV writes every non-empty table to w, one row per line, with a
// blank line between consecutive tables.
//
// An absent cell becomes an empty unquoted field; a present cell is quoted
// when it is empty or contains a delimiter, quote, or line break, so the
// absent-vs-empty distinction survives the format.
func WriteCSV(w io.Writer, tables []model.Table) error {
	written := false
	for _, t := range tables {
		if len(t.Rows) == 0 {
			continue
		}
		if written {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		for _, row := range t.Rows {
			fields := make([]string, len(row))
			for i, cell := range row {
				fields[i] = csvField(cell)
			}
			if _, err := io.WriteString(w, strings.Join(fields, ",")+"\n"); err != nil {
				return err
			}
		}
		written = true
	}
	return nil
}

// CSVString renders tables as a CSV string.
func CSVString(tables []model.Table) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = WriteCSV(&sb, tables)
	return sb.String()
}

// WriteCSVFile writes tables to path atomically: output goes to a
// temporary file in the same directory, renamed into place on success.
func WriteCSVFile(path string, tables []model.Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tabgrid-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, tables); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// csvField renders one cell. Present-but-empty cells are force-quoted to
// stay distinguishable from absent cells.
func csvField(cell model.Cell) string {
	if !cell.Present {
		return ""
	}
	t := cell.Text
	if t == "" || strings.ContainsAny(t, ",\"\n\r") {
		return `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return t
}
