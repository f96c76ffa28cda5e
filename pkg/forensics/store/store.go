// Package store keeps the disposable relational snapshot the checks run against.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/parser"

	_ "modernc.org/sqlite"
)

// ErrDatabaseNotFound indicates the snapshot file has not been built yet.
var ErrDatabaseNotFound = errors.New("database not found")

// Store wraps a single-owner SQLite connection.
type Store struct {
	db *sql.DB
}

// Create removes any previous snapshot at path and opens a fresh one.
// removed reports whether an old file was deleted.
func Create(path string) (s *Store, removed bool, err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		if err := os.Remove(path); err != nil {
			return nil, false, fmt.Errorf("failed to remove previous build: %w", err)
		}
		removed = true
	}
	s, err = open(path)
	return s, removed, err
}

// Open opens an existing snapshot.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
	}
	return open(path)
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close closes the connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// QuoteIdent quotes an SQL identifier.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ReplaceTable drops any table called name and reloads it from sheet.
// It returns the number of rows written.
func (s *Store) ReplaceTable(ctx context.Context, name string, sheet *models.SheetData) (int, error) {
	if len(sheet.Columns) == 0 {
		return 0, fmt.Errorf("table %s: sheet has no columns", name)
	}

	cols := make([]string, len(sheet.Columns))
	marks := make([]string, len(sheet.Columns))
	for i, c := range sheet.Columns {
		cols[i] = QuoteIdent(c.Name) + " " + string(c.Type)
		marks[i] = "?"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+QuoteIdent(name)); err != nil {
		return 0, fmt.Errorf("failed to drop %s: %w", name, err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", QuoteIdent(name), strings.Join(cols, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", QuoteIdent(name), strings.Join(marks, ", ")))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	args := make([]any, len(sheet.Columns))
	for _, row := range sheet.Rows {
		for i := range args {
			args[i] = nil
			if i < len(row) {
				args[i] = bindValue(row[i])
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(sheet.Rows), nil
}

// bindValue stores datetimes as text so the snapshot reads the same from any client.
func bindValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(parser.TimestampLayout)
	}
	return v
}

// ReplaceView drops any view called name and recreates it from body.
func (s *Store) ReplaceView(ctx context.Context, name, body string) error {
	if _, err := s.db.ExecContext(ctx, "DROP VIEW IF EXISTS "+QuoteIdent(name)); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("CREATE VIEW %s AS\n%s", QuoteIdent(name), body)); err != nil {
		return err
	}
	// SQLite may accept a view over missing tables; selecting from it surfaces that.
	if _, err := s.db.ExecContext(ctx, "SELECT 1 FROM "+QuoteIdent(name)+" LIMIT 0"); err != nil {
		err = fmt.Errorf("view %s is invalid: %w", name, err)
		if _, dropErr := s.db.ExecContext(ctx, "DROP VIEW IF EXISTS "+QuoteIdent(name)); dropErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to drop invalid view %s: %w", name, dropErr))
		}
		return err
	}
	return nil
}

// Query runs a statement and collects every row.
func (s *Store) Query(ctx context.Context, query string, args ...any) (*models.ResultSet, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &models.ResultSet{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, values)
	}
	return rs, rows.Err()
}

// Scalar returns the first column of the first row. A missing row yields nil.
func (s *Store) Scalar(ctx context.Context, query string, args ...any) (any, error) {
	var v any
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return v, err
}

// Tables lists user tables in name order.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	return s.names(ctx, "table")
}

// Views lists views in name order.
func (s *Store) Views(ctx context.Context) ([]string, error) {
	return s.names(ctx, "view")
}

func (s *Store) names(ctx context.Context, kind string) ([]string, error) {
	rs, err := s.Query(ctx, "SELECT name FROM sqlite_master WHERE type = ? AND name NOT LIKE 'sqlite_%' ORDER BY name", kind)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, rs.Len())
	for _, row := range rs.Rows {
		out = append(out, fmt.Sprint(row[0]))
	}
	return out, nil
}

// Columns lists the column names of a table or view.
func (s *Store) Columns(ctx context.Context, table string) ([]string, error) {
	rs, err := s.Query(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, rs.Len())
	for _, row := range rs.Rows {
		out = append(out, fmt.Sprint(row[0]))
	}
	return out, nil
}

// Count returns the row count of a table or view.
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	v, err := s.Scalar(ctx, "SELECT COUNT(*) FROM "+QuoteIdent(table))
	if err != nil {
		return 0, err
	}
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
	return n, nil
}
