package parser

import (
	"path/filepath"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/xuri/excelize/v2"
)

// SheetFilter decides whether a sheet is read.
type SheetFilter func(sheetName string) bool

// SheetError reports a sheet that could not be read.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return "sheet " + e.Sheet + ": " + e.Err.Error()
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// ReadWorkbook opens a workbook and reads every sheet accepted by filter, in workbook order.
// A sheet that fails to read is reported in the returned slice and the rest are still read.
func ReadWorkbook(path string, filter SheetFilter) (*models.WorkbookData, []error, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	wb := &models.WorkbookData{BookName: filepath.Base(path)}
	var sheetErrs []error
	for _, sheetName := range f.GetSheetList() {
		if filter != nil && !filter(sheetName) {
			continue
		}
		sheet, err := ExtractSheet(f, sheetName)
		if err != nil {
			sheetErrs = append(sheetErrs, &SheetError{Sheet: sheetName, Err: err})
			continue
		}
		wb.Sheets = append(wb.Sheets, *sheet)
	}
	return wb, sheetErrs, nil
}
