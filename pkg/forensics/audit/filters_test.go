package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

func TestWeekendOver(t *testing.T) {
	rs := &models.ResultSet{
		Columns: []string{"JE_HEADER_ID", "POSTED_DATE", "ENTERED_DR"},
		Rows: [][]any{
			{int64(1), "2024-01-06 00:00:00", 750000.0},                         // Saturday, large
			{int64(2), time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC), int64(600000)}, // Sunday, large
			{int64(3), "2024-01-08 00:00:00", 900000.0},                         // Monday
			{int64(4), "2024-01-06 00:00:00", 500000.0},                         // Saturday, at threshold
			{int64(5), nil, 900000.0},
			{int64(6), "2024-01-07", nil},
			{int64(7), "2024-01-13", "700000"}, // Saturday, numeric text
		},
	}

	out, err := WeekendOver("POSTED_DATE", "ENTERED_DR", 500000)(rs)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	assert.Equal(t, []any{int64(1), "2024-01-06", 750000.0}, out.Rows[0])
	assert.Equal(t, []any{int64(2), "2024-01-07", int64(600000)}, out.Rows[1])
	assert.Equal(t, []any{int64(7), "2024-01-13", "700000"}, out.Rows[2])

	// the input is left untouched
	assert.Equal(t, "2024-01-06 00:00:00", rs.Rows[0][1])
}

func TestWeekendOverMissingColumn(t *testing.T) {
	_, err := WeekendOver("POSTED_DATE", "ENTERED_DR", 0)(&models.ResultSet{Columns: []string{"JE_HEADER_ID"}})
	assert.Error(t, err)
}

func TestWeekendOverInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		row  []any
		msg  string
	}{
		{"unparseable date", []any{int64(1), "someday", 900000.0}, "POSTED_DATE"},
		{"text amount", []any{int64(2), "2024-01-06", "lots"}, "ENTERED_DR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &models.ResultSet{
				Columns: []string{"JE_HEADER_ID", "POSTED_DATE", "ENTERED_DR"},
				Rows:    [][]any{{int64(9), "2024-01-06", 750000.0}, tt.row},
			}
			_, err := WeekendOver("POSTED_DATE", "ENTERED_DR", 500000)(rs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRunFilterErrorIsCheckError(t *testing.T) {
	q := fakeQuerier{"SELECT": &models.ResultSet{
		Columns: []string{"JE_HEADER_ID", "POSTED_DATE", "ENTERED_DR"},
		Rows:    [][]any{{int64(1), "not a date", 900000.0}},
	}}
	c := Check{ID: "GL-02", Query: "SELECT", Severity: models.LevelWarn, Filter: WeekendOver("POSTED_DATE", "ENTERED_DR", 500000)}

	_, err := Run(context.Background(), q, c)
	var checkErr *CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, "GL-02", checkErr.ID)
}
