// Package audit runs forensic checks against the snapshot and classifies their results.
package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

// Querier executes a read-only query. *store.Store satisfies it.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (*models.ResultSet, error)
}

// Filter post-processes a query result in Go.
type Filter func(rs *models.ResultSet) (*models.ResultSet, error)

// Check is one fixed forensic test.
type Check struct {
	// ID is the control reference, e.g. "GL-04".
	ID string
	// Title is the section heading.
	Title string
	// Scope describes the test in one sentence.
	Scope string
	// Query is the literal SQL run against the snapshot.
	Query string
	// Severity is the level reported when the check returns rows.
	Severity models.Level
	// Noun names what a matching row is, e.g. "Conflicts".
	Noun string
	// Filter optionally narrows the query result.
	Filter Filter
	// PageBreak starts a new report page after this check.
	PageBreak bool
}

// Name returns the control reference, or the title for checks without one.
func (c Check) Name() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Title
}

// Heading returns the section heading, e.g. "MANAGEMENT OVERRIDE (GL-04)".
func (c Check) Heading() string {
	if c.ID == "" {
		return c.Title
	}
	return c.Title + " (" + c.ID + ")"
}

// CheckError reports a check whose query could not run.
type CheckError struct {
	ID  string
	Err error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check %s: %v", e.ID, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// Run executes a single check.
func Run(ctx context.Context, q Querier, c Check) (*models.Finding, error) {
	rs, err := q.Query(ctx, c.Query)
	if err != nil {
		return nil, &CheckError{ID: c.Name(), Err: err}
	}
	if c.Filter != nil {
		if rs, err = c.Filter(rs); err != nil {
			return nil, &CheckError{ID: c.Name(), Err: err}
		}
	}

	status := StatusFor(c, rs.Len())
	return &models.Finding{
		ID:        c.ID,
		Title:     c.Heading(),
		Scope:     c.Scope,
		Status:    status,
		Level:     Classify(status),
		Result:    rs,
		PageBreak: c.PageBreak,
	}, nil
}

// RunAll executes checks in order and stops at the first query failure.
func RunAll(ctx context.Context, q Querier, checks []Check) ([]*models.Finding, error) {
	findings := make([]*models.Finding, 0, len(checks))
	for _, c := range checks {
		f, err := Run(ctx, q, c)
		if err != nil {
			return findings, err
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// StatusFor builds the status line of a check that returned n rows.
func StatusFor(c Check, n int) string {
	if n == 0 {
		return models.LevelClean.String()
	}
	return fmt.Sprintf("%s (%d %s)", c.Severity, n, c.Noun)
}

// Classify maps a status line to a traffic-light level by keyword.
func Classify(status string) models.Level {
	switch {
	case strings.Contains(status, "CRITICAL"):
		return models.LevelCritical
	case strings.Contains(status, "FAIL"):
		return models.LevelFail
	case strings.Contains(status, "WARN"):
		return models.LevelWarn
	default:
		return models.LevelClean
	}
}
