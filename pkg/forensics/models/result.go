package models

// ResultSet holds the rows returned by a check query.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Empty reports whether the result set has no rows.
func (r *ResultSet) Empty() bool {
	return r.Len() == 0
}

// ColumnIndex returns the position of the named column, or -1.
func (r *ResultSet) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Head returns a copy of the result set limited to the first n rows.
func (r *ResultSet) Head(n int) *ResultSet {
	out := &ResultSet{Columns: r.Columns}
	if n > len(r.Rows) {
		n = len(r.Rows)
	}
	out.Rows = append(out.Rows, r.Rows[:n]...)
	return out
}
