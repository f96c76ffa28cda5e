package models

// SheetData represents one sheet read into tabular memory.
type SheetData struct {
	// Name is the sheet name as it appears in the workbook.
	Name string `json:"name"`
	// Columns lists the normalized columns in sheet order.
	Columns []Column `json:"columns"`
	// Rows holds one value per column; nil marks an empty cell.
	Rows [][]any `json:"rows,omitempty"`
}

// ColumnIndex returns the position of the named column, or -1.
func (s *SheetData) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// AddColumn appends a column and fills it by calling fill for every row.
func (s *SheetData) AddColumn(col Column, fill func(row []any) any) {
	s.Columns = append(s.Columns, col)
	for i, row := range s.Rows {
		s.Rows[i] = append(row, fill(row))
	}
}
