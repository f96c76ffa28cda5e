// Package models defines data structures shared by the loader and the reporter.
package models

// ColumnType is the storage type inferred for a sheet column.
type ColumnType string

const (
	// TypeInteger holds int64 values.
	TypeInteger ColumnType = "INTEGER"
	// TypeReal holds float64 values (integers are widened).
	TypeReal ColumnType = "REAL"
	// TypeTimestamp holds time.Time values.
	TypeTimestamp ColumnType = "TIMESTAMP"
	// TypeText holds strings; mixed columns fall back to text.
	TypeText ColumnType = "TEXT"
)

// Column describes a single normalized column of a sheet.
type Column struct {
	// Name is the normalized header (trimmed, underscored, uppercase).
	Name string `json:"name"`
	// Type is the inferred storage type.
	Type ColumnType `json:"type"`
}
