package models

// TableStat records one loaded table.
type TableStat struct {
	Module string `json:"module"`
	Sheet  string `json:"sheet"`
	Table  string `json:"table"`
	Rows   int    `json:"rows"`
}

// CrossCheckOutcome records a post-load diagnostic.
type CrossCheckOutcome struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Lines   []string `json:"lines,omitempty"`
	Skipped string   `json:"skipped,omitempty"`
}

// LoadSummary describes a loader run.
type LoadSummary struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`
	// Database is the snapshot file path.
	Database string `json:"database"`
	// Tables lists loaded tables in load order.
	Tables []TableStat `json:"tables"`
	// SkippedModules lists modules whose source file was absent.
	SkippedModules []string `json:"skipped_modules,omitempty"`
	// Errors collects guarded per-module and per-sheet failures.
	Errors []error `json:"-"`
	// ViewCreated reports whether the risk view was deployed.
	ViewCreated bool `json:"view_created"`
	// RiskVectors is the risk view row count, or -1 when unavailable.
	RiskVectors int64 `json:"risk_vectors"`
	// CrossChecks holds the diagnostic outcomes in run order.
	CrossChecks []CrossCheckOutcome `json:"cross_checks,omitempty"`
}

// TotalRows sums the rows of every loaded table.
func (s *LoadSummary) TotalRows() int {
	total := 0
	for _, t := range s.Tables {
		total += t.Rows
	}
	return total
}
