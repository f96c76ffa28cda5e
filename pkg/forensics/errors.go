package forensics

import (
	"errors"
	"fmt"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/audit"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/profile"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/store"
)

// ErrFileNotFound indicates a module workbook is absent.
var ErrFileNotFound = errors.New("file not found")

// ErrDatabaseNotFound indicates the report ran before the loader.
var ErrDatabaseNotFound = store.ErrDatabaseNotFound

// ErrUnknownFlavor indicates a flavor name with no profile.
var ErrUnknownFlavor = profile.ErrUnknownFlavor

// CheckError reports a check whose query failed.
type CheckError = audit.CheckError

// LoadError represents a guarded failure while loading a module or one of its sheets.
type LoadError struct {
	Module string
	Sheet  string // empty when the whole module failed
	Err    error
}

func (e *LoadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("load error in module %s: %v", e.Module, e.Err)
	}
	return fmt.Sprintf("load error in module %s sheet %q: %v", e.Module, e.Sheet, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(module, sheet string, err error) *LoadError {
	return &LoadError{
		Module: module,
		Sheet:  sheet,
		Err:    err,
	}
}
