package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/xuri/excelize/v2"
)

// ExtractSheet reads a sheet into tabular memory.
// The first non-empty row is the header; fully empty rows below it are dropped.
func ExtractSheet(f *excelize.File, sheetName string) (*models.SheetData, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &models.SheetData{Name: sheetName}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return sheet, nil
	}

	width := maxCol - minCol + 1
	headers := make([]string, width)
	for i := range headers {
		headers[i] = cellAt(rows[minRow], minCol+i)
	}
	names := NormalizeHeaders(headers)

	dates := newDateStyles(f)
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		values := make([]any, width)
		hasData := false
		for i := 0; i < width; i++ {
			raw := cellAt(row, minCol+i)
			if raw == "" {
				continue
			}
			hasData = true
			cellName, _ := excelize.CoordinatesToCellName(minCol+i+1, rowIdx+1)
			values[i] = typedValue(f, dates, sheetName, cellName, raw)
		}
		if hasData {
			sheet.Rows = append(sheet.Rows, values)
		}
	}

	sheet.Columns = make([]models.Column, width)
	for i, name := range names {
		sheet.Columns[i] = models.Column{Name: name, Type: inferColumnType(sheet.Rows, i)}
	}
	return sheet, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// typedValue converts a raw cell value using the cell's stored type and style.
func typedValue(f *excelize.File, dates *dateStyles, sheetName, cellName, raw string) any {
	if cellType, err := f.GetCellType(sheetName, cellName); err == nil {
		switch cellType {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			return raw
		}
	}

	v := parseValue(raw)
	var serial float64
	switch n := v.(type) {
	case int64:
		serial = float64(n)
	case float64:
		serial = n
	default:
		return v
	}
	if dates.isDate(sheetName, cellName) {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t
		}
	}
	return v
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// FormatValue renders a cell value as plain text. Nil renders as "".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []byte:
		return string(x)
	case time.Time:
		return strings.TrimSuffix(x.Format(TimestampLayout), " 00:00:00")
	default:
		return fmt.Sprint(x)
	}
}
