package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tabgrid/tabgrid/model"
)

func present(text string) model.Cell {
	return model.Cell{Text: text, Present: true}
}

func TestCSVString_AbsentVersusEmpty(t *testing.T) {
	tables := []model.Table{{
		Page: 1,
		Rows: [][]model.Cell{
			{model.AbsentCell(), present(""), present("x")},
		},
	}}

	got := CSVString(tables)
	want := ",\"\",x\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCSVString_Quoting(t *testing.T) {
	tests := []struct {
		name string
		cell model.Cell
		want string
	}{
		{"plain", present("abc"), "abc\n"},
		{"comma", present("a,b"), "\"a,b\"\n"},
		{"quote", present(`say "hi"`), "\"say \"\"hi\"\"\"\n"},
		{"newline", present("a\nb"), "\"a\nb\"\n"},
		{"absent", model.AbsentCell(), "\n"},
	}
	for _, tt := range tests {
		tables := []model.Table{{Rows: [][]model.Cell{{tt.cell}}}}
		if got := CSVString(tables); got != tt.want {
			t.Errorf("%s: Expected %q, got %q", tt.name, got, tt.want)
		}
	}
}

func TestWriteCSV_BlankLineBetweenTables(t *testing.T) {
	tables := []model.Table{
		{Rows: [][]model.Cell{{present("a")}, {present("b")}}},
		{Rows: nil}, // zero-row tables are skipped entirely
		{Rows: [][]model.Cell{{present("c")}}},
	}

	got := CSVString(tables)
	want := "a\nb\n\nc\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriteCSV_AllEmpty(t *testing.T) {
	if got := CSVString(nil); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
	if got := CSVString([]model.Table{{Rows: nil}}); got != "" {
		t.Errorf("Expected empty output for zero-row table, got %q", got)
	}
}

func TestWriteCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	tables := []model.Table{
		{Rows: [][]model.Cell{{present("a"), model.AbsentCell()}}},
	}
	if err := WriteCSVFile(path, tables); err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "a,\n" {
		t.Errorf("Expected %q, got %q", "a,\n", string(data))
	}

	// No temporary file may be left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tabgrid-") {
			t.Errorf("Temporary file left behind: %s", e.Name())
		}
	}
}
