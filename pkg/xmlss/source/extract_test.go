package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/xmlss-go/pkg/xmlss"
	"github.com/xuri/excelize/v2"
)

func TestExtractWorkbook(t *testing.T) {
	path := writeTestWorkbook(t)

	table, err := Extract(path, Options{Range: "A1:B2"})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if table.Name != "test.xlsx#Sheet1" {
		t.Errorf("Name = %q, expected %q", table.Name, "test.xlsx#Sheet1")
	}
	if table.Area == nil || FormatArea(*table.Area) != "A1:B2" {
		t.Errorf("Area = %v, expected A1:B2", table.Area)
	}
	if len(table.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.Rows))
	}
}

func TestExtractDetectTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "C3", "id")
	f.SetCellValue("Sheet1", "D3", "name")
	f.SetCellValue("Sheet1", "C4", 1)
	f.SetCellValue("Sheet1", "D4", "x")
	path := filepath.Join(t.TempDir(), "offset.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	table, err := Extract(path, Options{DetectTable: true})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(table.Rows) != 2 || len(table.Rows[0]) != 2 {
		t.Fatalf("Rows = %v, expected 2x2", table.Rows)
	}
	if table.Rows[0][0] != (xmlss.Scalar{Value: "id"}) {
		t.Errorf("Rows[0][0] = %#v, expected id", table.Rows[0][0])
	}
}

func TestExtractCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	if err := os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	table, err := Extract(path, Options{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(table.Rows) != 2 || len(table.Rows[1]) != 2 {
		t.Fatalf("Rows = %v, expected 2x2", table.Rows)
	}
	if table.Rows[1][1] != (xmlss.Scalar{Value: int64(2)}) {
		t.Errorf("Rows[1][1] = %#v, expected int64(2)", table.Rows[1][1])
	}
}

func TestExtractErrors(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	tests := []struct {
		path     string
		opts     Options
		expected error
	}{
		{filepath.Join(dir, "missing.xlsx"), Options{}, ErrFileNotFound},
		{other, Options{}, ErrUnsupportedFormat},
		{writeTestWorkbook(t), Options{Sheet: "Nope"}, ErrSheetNotFound},
	}

	for _, tt := range tests {
		_, err := Extract(tt.path, tt.opts)
		if !errors.Is(err, tt.expected) {
			t.Errorf("Extract(%q) error = %v, expected %v", filepath.Base(tt.path), err, tt.expected)
		}
	}
}
