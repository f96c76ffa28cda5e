// Package profile describes the two ERP flavors: which workbooks to load, how
// their tables are named, which diagnostics run after loading and which checks
// the report contains.
package profile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/audit"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/store"
)

// Flavor names an ERP flavor.
type Flavor string

const (
	// FlavorOracle is the Oracle Cloud export set.
	FlavorOracle Flavor = "oracle"
	// FlavorSAP is the SAP ECC export set.
	FlavorSAP Flavor = "sap"
)

// ErrUnknownFlavor indicates a flavor name with no profile.
var ErrUnknownFlavor = errors.New("unknown flavor")

// Module is one business module and its source workbook.
type Module struct {
	Code string
	File string
}

// CleanColumn derives a digits-only reference column from Source.
type CleanColumn struct {
	Source string
	Target string
}

// RiskView is the aggregate view deployed after loading.
type RiskView struct {
	Name    string
	Sources []store.ViewSource
}

// SQL renders the view body.
func (v *RiskView) SQL() string {
	return store.BuildUnionView(v.Sources)
}

// Scalarer runs a single-value query. *store.Store satisfies it.
type Scalarer interface {
	Scalar(ctx context.Context, query string, args ...any) (any, error)
}

// CrossCheck is a post-load diagnostic. It returns console lines on success;
// an error means the check is skipped.
type CrossCheck struct {
	Name string
	Run  func(ctx context.Context, db Scalarer) ([]string, error)
}

// Profile holds everything fixed about one flavor.
type Profile struct {
	Flavor Flavor
	// Title is the human name of the ERP, e.g. "SAP ECC".
	Title string
	// Database and Report are the default output file names.
	Database string
	Report   string
	Modules  []Module
	// ExcludedSheets are summary/control tabs; ExemptSheets override the exclusion.
	ExcludedSheets []string
	ExemptSheets   []string
	// PrefixTables names tables <MODULE>_<SHEET> instead of <SHEET>.
	PrefixTables    bool
	CleanColumns    []CleanColumn
	RiskView        *RiskView
	CrossChecks     []CrossCheck
	Checks          []audit.Check
	CurrencyColumns []string
}

// Includes reports whether a sheet is loaded.
func (p *Profile) Includes(sheet string) bool {
	if slices.Contains(p.ExemptSheets, sheet) {
		return true
	}
	return !slices.Contains(p.ExcludedSheets, sheet)
}

// TableName returns the snapshot table for a module sheet.
func (p *Profile) TableName(module, sheet string) string {
	if p.PrefixTables {
		return module + "_" + sheet
	}
	return sheet
}

// Lookup returns a fresh profile for a flavor name.
func Lookup(name string) (*Profile, error) {
	switch Flavor(strings.ToLower(strings.TrimSpace(name))) {
	case FlavorOracle:
		return Oracle(), nil
	case FlavorSAP:
		return SAP(), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be oracle or sap)", ErrUnknownFlavor, name)
	}
}

// Flavors lists the known flavors.
func Flavors() []Flavor {
	return []Flavor{FlavorOracle, FlavorSAP}
}

// scalarFloat runs a query expected to return a number; NULL counts as missing data.
func scalarFloat(ctx context.Context, db Scalarer, query string) (float64, error) {
	v, err := db.Scalar(ctx, query)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	case nil:
		return 0, errors.New("data missing")
	default:
		return 0, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}
