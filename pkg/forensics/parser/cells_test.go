package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExtractSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", " Invoice Num ")
	f.SetCellValue(sheetName, "B1", "invoice amount")
	f.SetCellValue(sheetName, "C1", "Vendor ID")
	f.SetCellValue(sheetName, "A2", "INV-001 ")
	f.SetCellValue(sheetName, "B2", 100)
	f.SetCellValue(sheetName, "C2", "0042")
	f.SetCellValue(sheetName, "A3", "INV-002")
	f.SetCellValue(sheetName, "B3", 200.5)
	// row 4 left blank on purpose
	f.SetCellValue(sheetName, "A5", "INV-003")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	sheet, err := ExtractSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}

	wantCols := []string{"INVOICE_NUM", "INVOICE_AMOUNT", "VENDOR_ID"}
	if len(sheet.Columns) != len(wantCols) {
		t.Fatalf("Expected %d columns, got %d", len(wantCols), len(sheet.Columns))
	}
	for i, name := range wantCols {
		if sheet.Columns[i].Name != name {
			t.Errorf("Column %d = %q, expected %q", i, sheet.Columns[i].Name, name)
		}
	}

	if len(sheet.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(sheet.Rows))
	}
	if sheet.Rows[0][0] != "INV-001 " {
		t.Errorf("Expected trailing whitespace kept, got %q", sheet.Rows[0][0])
	}
	if sheet.Rows[0][1] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", sheet.Rows[0][1], sheet.Rows[0][1])
	}
	if sheet.Rows[1][1] != 200.5 {
		t.Errorf("Expected 200.5, got %v", sheet.Rows[1][1])
	}
	if sheet.Rows[0][2] != "0042" {
		t.Errorf("Expected text cell to stay \"0042\", got %v (type: %T)", sheet.Rows[0][2], sheet.Rows[0][2])
	}
	if sheet.Rows[2][1] != nil {
		t.Errorf("Expected nil for missing cell, got %v", sheet.Rows[2][1])
	}

	if got := sheet.Columns[1].Type; got != "REAL" {
		t.Errorf("INVOICE_AMOUNT type = %q, expected REAL", got)
	}
	if got := sheet.Columns[2].Type; got != "TEXT" {
		t.Errorf("VENDOR_ID type = %q, expected TEXT", got)
	}
}

func TestExtractSheetDates(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	posted := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	f.SetCellValue("Sheet1", "A1", "POSTED_DATE")
	f.SetCellValue("Sheet1", "A2", posted)

	tmpFile := filepath.Join(t.TempDir(), "dates.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	sheet, err := ExtractSheet(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}
	if len(sheet.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(sheet.Rows))
	}
	got, ok := sheet.Rows[0][0].(time.Time)
	if !ok {
		t.Fatalf("Expected time.Time, got %T", sheet.Rows[0][0])
	}
	if !got.Equal(posted) {
		t.Errorf("Expected %v, got %v", posted, got)
	}
	if sheet.Columns[0].Type != "TIMESTAMP" {
		t.Errorf("Expected TIMESTAMP column, got %q", sheet.Columns[0].Type)
	}
}

func TestExtractSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := ExtractSheet(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}
	if len(sheet.Columns) != 0 || len(sheet.Rows) != 0 {
		t.Errorf("Expected empty sheet, got %d columns and %d rows", len(sheet.Columns), len(sheet.Rows))
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"abc", "abc"},
		{int64(42), "42"},
		{1234.5, "1234.5"},
		{time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), "2024-01-06"},
		{time.Date(2024, 1, 6, 13, 5, 0, 0, time.UTC), "2024-01-06 13:05:00"},
	}

	for _, tt := range tests {
		if result := FormatValue(tt.input); result != tt.expected {
			t.Errorf("FormatValue(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
