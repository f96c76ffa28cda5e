package models

// WorkbookData represents a workbook read sheet by sheet.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the accepted sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}
