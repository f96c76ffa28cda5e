package profile

import (
	"context"
	"fmt"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/audit"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/render"
)

// Oracle returns the Oracle Cloud profile.
func Oracle() *Profile {
	return &Profile{
		Flavor:   FlavorOracle,
		Title:    "Oracle Cloud",
		Database: "synthetic_cfo_erp.db",
		Report:   "Forensic_Audit_Report.pdf",
		Modules: []Module{
			{Code: "P2P", File: "Oracle_P2P_Platinum_Mode.xlsx"},
			{Code: "O2C", File: "Oracle_O2C_Platinum_Mode.xlsx"},
			{Code: "CE", File: "Oracle_CE_Platinum_Mode.xlsx"},
			{Code: "GL", File: "Oracle_GL_Platinum_Mode.xlsx"},
		},
		ExcludedSheets: []string{"SUMMARY", "RECONCILIATION_REPORT", "CONTROL_MATRIX"},
		CrossChecks:    []CrossCheck{{Name: "Cash Check", Run: oracleCashPosition}},
		Checks:         oracleChecks(),
	}
}

const (
	glCashQuery   = "SELECT SUM(ENDING_BALANCE) FROM GL_TRIAL_BALANCE WHERE ACCOUNT IN ('11000','11001','11002')"
	bankCashQuery = "SELECT SUM(CLOSING_BALANCE) FROM CE_STATEMENT_HEADERS WHERE STATEMENT_DATE = (SELECT MAX(STATEMENT_DATE) FROM CE_STATEMENT_HEADERS)"
)

// oracleCashPosition compares GL cash with the latest bank statement balance.
// The two never tie exactly because the data plants float and kiting gaps.
func oracleCashPosition(ctx context.Context, db Scalarer) ([]string, error) {
	gl, err := scalarFloat(ctx, db, glCashQuery)
	if err != nil {
		return nil, err
	}
	bank, err := scalarFloat(ctx, db, bankCashQuery)
	if err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("GL Cash Position: $%s", render.Amount(gl)),
		fmt.Sprintf("Bank Cash Position: $%s", render.Amount(bank)),
		fmt.Sprintf("Reconciliation Gap: $%s (Expected due to Float/Kiting Traps)", render.Amount(gl-bank)),
	}, nil
}

func oracleChecks() []audit.Check {
	return []audit.Check{
		// P2P
		{
			ID:       "C-01",
			Title:    "HIGH VALUE MANUAL INVOICES",
			Scope:    "Flagging manual entries > $50k bypassing PO.",
			Query:    "SELECT INVOICE_NUM, VENDOR_ID, INVOICE_AMOUNT, CREATED_BY FROM AP_INVOICES_ALL WHERE SOURCE = 'MANUAL' AND INVOICE_AMOUNT > 50000",
			Severity: models.LevelWarn,
			Noun:     "Manual Entries",
		},
		{
			ID:       "C-08",
			Title:    "SEGREGATION OF DUTIES",
			Scope:    "Invoices where Creator == Approver.",
			Query:    "SELECT INVOICE_NUM, INVOICE_AMOUNT, CREATED_BY, LAST_UPDATED_BY AS APPROVED_BY FROM AP_INVOICES_ALL WHERE CREATED_BY = LAST_UPDATED_BY AND APPROVAL_STATUS = 'APPROVED'",
			Severity: models.LevelFail,
			Noun:     "Conflicts",
		},
		{
			Title:    "DATA SANITIZATION / HIDDEN DUPLICATES",
			Scope:    "Invoices with trailing whitespace used to bypass unique constraints.",
			Query:    "SELECT INVOICE_NUM, VENDOR_ID, INVOICE_AMOUNT FROM AP_INVOICES_ALL WHERE INVOICE_NUM LIKE '% '",
			Severity: models.LevelFail,
			Noun:     "Anomalies",
		},
		{
			ID:        "C-06",
			Title:     "VOIDED PAYMENTS",
			Scope:     "Listing voided checks for review.",
			Query:     "SELECT CHECK_NUMBER, AMOUNT, CHECK_DATE, VENDOR_ID FROM AP_CHECKS_ALL WHERE STATUS_LOOKUP_CODE = 'VOIDED'",
			Severity:  models.LevelWarn,
			Noun:      "Voids",
			PageBreak: true,
		},
		// CE
		{
			ID:       "CASH-01",
			Title:    "CHECK KITING / UNRECORDED FUNDS",
			Scope:    "Large wire transfers in Bank missing from GL.",
			Query:    `SELECT LINE_ID, TRX_CODE, AMOUNT, "DESC" FROM CE_STATEMENT_LINES WHERE GL_MATCH = 'NO_MATCH' AND "DESC" LIKE '%KITE%'`,
			Severity: models.LevelCritical,
			Noun:     "Kiting Events",
		},
		// GL
		{
			ID:       "GL-04",
			Title:    "MANAGEMENT OVERRIDE",
			Scope:    "Entries by restricted user 'CFO_OVERRIDE'.",
			Query:    "SELECT JE_HEADER_ID, JE_LINE_NUM, ENTERED_DR, CREATED_BY FROM GL_JE_LINES WHERE CREATED_BY = 'CFO_OVERRIDE'",
			Severity: models.LevelCritical,
			Noun:     "Overrides",
		},
		{
			ID:       "GL-03",
			Title:    "BENFORD'S LAW VIOLATIONS",
			Scope:    "Large, perfectly round manual adjustments (> $1M).",
			Query:    "SELECT JE_HEADER_ID, ENTERED_DR, SOURCE, PERIOD_NAME FROM GL_JE_LINES WHERE ENTERED_DR > 1000000 AND CAST(ENTERED_DR AS INTEGER) % 10000 = 0 AND SOURCE = 'Manual'",
			Severity: models.LevelFail,
			Noun:     "Suspicious Entries",
		},
		{
			ID:       "GL-02",
			Title:    "SUSPICIOUS WEEKEND POSTINGS",
			Scope:    "Manual JEs > $500k posted on Sat/Sun.",
			Query:    "SELECT JE_HEADER_ID, POSTED_DATE, ENTERED_DR FROM GL_JE_LINES WHERE SOURCE = 'Manual'",
			Severity: models.LevelWarn,
			Noun:     "Weekend Postings",
			Filter:   audit.WeekendOver("POSTED_DATE", "ENTERED_DR", 500000),
		},
	}
}
