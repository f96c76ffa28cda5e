package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

type fakeQuerier map[string]*models.ResultSet

func (f fakeQuerier) Query(_ context.Context, query string, _ ...any) (*models.ResultSet, error) {
	rs, ok := f[query]
	if !ok {
		return nil, errors.New("no such table")
	}
	return rs, nil
}

func rows(n int) *models.ResultSet {
	rs := &models.ResultSet{Columns: []string{"ID"}}
	for i := 0; i < n; i++ {
		rs.Rows = append(rs.Rows, []any{int64(i)})
	}
	return rs
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		severity models.Level
		noun     string
		n        int
		expected string
	}{
		{models.LevelWarn, "Voids", 0, "CLEAN"},
		{models.LevelCritical, "Overrides", 0, "CLEAN"},
		{models.LevelWarn, "Voids", 2, "WARN (2 Voids)"},
		{models.LevelFail, "Conflicts", 7, "FAIL (7 Conflicts)"},
		{models.LevelCritical, "Kiting Events", 1, "CRITICAL FAIL (1 Kiting Events)"},
	}

	for _, tt := range tests {
		c := Check{Severity: tt.severity, Noun: tt.noun}
		if result := StatusFor(c, tt.n); result != tt.expected {
			t.Errorf("StatusFor(%v, %d) = %q, expected %q", tt.severity, tt.n, result, tt.expected)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status   string
		expected models.Level
	}{
		{"CLEAN", models.LevelClean},
		{"WARN (3 Manual Entries)", models.LevelWarn},
		{"FAIL (1 Anomalies)", models.LevelFail},
		{"CRITICAL FAIL (4 Overrides)", models.LevelCritical},
	}

	for _, tt := range tests {
		if result := Classify(tt.status); result != tt.expected {
			t.Errorf("Classify(%q) = %v, expected %v", tt.status, result, tt.expected)
		}
	}
}

func TestRunEmptyIsClean(t *testing.T) {
	q := fakeQuerier{"SELECT 1": rows(0)}
	f, err := Run(context.Background(), q, Check{ID: "C-08", Query: "SELECT 1", Severity: models.LevelFail, Noun: "Conflicts"})
	require.NoError(t, err)
	assert.Equal(t, "CLEAN", f.Status)
	assert.Equal(t, models.LevelClean, f.Level)
	assert.True(t, f.Result.Empty())
}

func TestRunEmbedsRowCount(t *testing.T) {
	q := fakeQuerier{"SELECT 1": rows(3)}
	f, err := Run(context.Background(), q, Check{ID: "C-06", Query: "SELECT 1", Severity: models.LevelWarn, Noun: "Voids", PageBreak: true})
	require.NoError(t, err)
	assert.Equal(t, "WARN (3 Voids)", f.Status)
	assert.Equal(t, models.LevelWarn, f.Level)
	assert.True(t, f.PageBreak)
}

func TestRunAllStopsOnQueryError(t *testing.T) {
	q := fakeQuerier{"SELECT 1": rows(1)}
	checks := []Check{
		{ID: "A", Query: "SELECT 1", Severity: models.LevelFail, Noun: "Rows"},
		{ID: "B", Query: "SELECT * FROM MISSING"},
		{ID: "C", Query: "SELECT 1"},
	}

	findings, err := RunAll(context.Background(), q, checks)
	require.Error(t, err)
	var checkErr *CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, "B", checkErr.ID)
	assert.Len(t, findings, 1)
}
