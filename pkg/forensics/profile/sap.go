package profile

import (
	"context"
	"fmt"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/audit"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/store"
)

// RiskViewName is the SAP aggregate risk view.
const RiskViewName = "V_GLOBAL_RISK_MAP"

// SAP returns the SAP ECC profile.
func SAP() *Profile {
	return &Profile{
		Flavor:   FlavorSAP,
		Title:    "SAP ECC",
		Database: "synthetic_cfo_sap_ecc.db",
		Report:   "SAP_ECC_Forensic_Audit_Report_Platinum.pdf",
		Modules: []Module{
			{Code: "P2P", File: "SAP_ECC_P2P_Final_Platinum.xlsx"},
			{Code: "O2C", File: "SAP_ECC_O2C_Final_Platinum.xlsx"},
			{Code: "CE", File: "SAP_ECC_CE_Final_Platinum.xlsx"},
			{Code: "R2R", File: "SAP_ECC_R2R_Final_Platinum.xlsx"},
		},
		// SKA1 (G/L accounts) and T012 (house banks) are master data and stay loaded.
		ExcludedSheets: []string{"SUMMARY", "SKA1", "AUDIT_LEAD_SHEET", "T012"},
		ExemptSheets:   []string{"SKA1", "T012"},
		PrefixTables:   true,
		CleanColumns: []CleanColumn{
			{Source: "XBLNR", Target: "XBLNR_CLEAN"},
			{Source: "EOWNR", Target: "EOWNR_CLEAN"},
		},
		RiskView: &RiskView{
			Name: RiskViewName,
			Sources: []store.ViewSource{
				{Module: "P2P", Source: "EKKO", Table: "P2P_EKKO", DocID: "EBELN", Column: "SME_REASONING",
					Keywords: []string{"FAIL", "CRITICAL"}, Severity: "High"},
				{Module: "O2C", Source: "VBRK", Table: "O2C_VBRK", DocID: "VBELN", Column: "SME_REASONING",
					Keywords: []string{"FAIL", "CRITICAL", "OVERRIDE"}, Severity: "Medium"},
				{Module: "CE", Source: "FEBEP", Table: "CE_FEBEP", DocID: "KUKEY || '-' || ESNUM", Column: "SME_REASONING",
					Keywords: []string{"FAIL", "CRITICAL"}, Severity: "Critical"},
				{Module: "R2R", Source: "BSEG", Table: "R2R_BSEG", DocID: "BELNR", Column: "SME_REASONING",
					Keywords: []string{"FAIL", "CRITICAL", "Suspicious"}, Severity: "Critical"},
			},
		},
		CrossChecks: []CrossCheck{
			{Name: "Revenue Handshake", Run: sapRevenueHandshake},
			{Name: "Cash Handshake", Run: sapCashHandshake},
		},
		Checks:          sapChecks(),
		CurrencyColumns: []string{"NETWR", "WRBTR", "DMBTR", "UMSATZ"},
	}
}

// sapRevenueHandshake counts O2C billing documents posted to the GL.
func sapRevenueHandshake(ctx context.Context, db Scalarer) ([]string, error) {
	n, err := scalarFloat(ctx, db, `
		SELECT COUNT(*)
		FROM O2C_VBRK v
		JOIN R2R_BKPF b ON b.XBLNR = v.VBELN
		WHERE b.BLART = 'RV'`)
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Revenue Handshake: %d O2C Billing Docs successfully posted to GL.", int64(n))}, nil
}

// sapCashHandshake counts P2P checks that cleared on the bank statement.
func sapCashHandshake(ctx context.Context, db Scalarer) ([]string, error) {
	n, err := scalarFloat(ctx, db, `
		SELECT COUNT(*)
		FROM P2P_PAYR p
		JOIN CE_FEBEP f ON f.EOWNR_CLEAN = p.CHECT`)
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Cash Handshake: %d Physical Checks cleared on Bank Statement.", int64(n))}, nil
}

func sapChecks() []audit.Check {
	return []audit.Check{
		// P2P
		{
			ID:       "P2P-02",
			Title:    "SEGREGATION OF DUTIES",
			Scope:    "Transactions where Creator == Approver.",
			Query:    "SELECT BELNR, USNAM, TCODE, SME_REASONING FROM P2P_BKPF WHERE SME_REASONING LIKE '%SOD%' OR SME_REASONING LIKE '%Self-Approval%'",
			Severity: models.LevelFail,
			Noun:     "Conflicts",
		},
		{
			ID:       "P2P-03",
			Title:    "SPLIT PURCHASE ORDERS",
			Scope:    "Structuring orders to bypass approval limits.",
			Query:    "SELECT EBELN, ERNAM, NETWR, SME_REASONING FROM P2P_EKKO WHERE SME_REASONING LIKE '%Split%' OR SME_REASONING LIKE '%Limit Evasion%'",
			Severity: models.LevelFail,
			Noun:     "Split POs",
		},
		{
			ID:        "P2P-01",
			Title:     "DUPLICATE INVOICES",
			Scope:     "Invoices with trailing whitespace used to bypass uniqueness checks.",
			Query:     "SELECT BELNR, XBLNR, BKTXT FROM P2P_BKPF WHERE XBLNR LIKE '% ' OR BKTXT LIKE '%Duplicate%'",
			Severity:  models.LevelFail,
			Noun:      "Duplicates",
			PageBreak: true,
		},
		// O2C
		{
			ID:       "O2C-02",
			Title:    "REVENUE CUT-OFF / CHANNEL STUFFING",
			Scope:    "High-value sales forced through at month-end.",
			Query:    "SELECT VBELN, NETWR, FKDAT, SME_REASONING FROM O2C_VBRK WHERE SME_REASONING LIKE '%Stuffing%' OR SME_REASONING LIKE '%Force%' OR SME_REASONING LIKE '%Premature%'",
			Severity: models.LevelFail,
			Noun:     "Stuffing Events",
		},
		{
			ID:       "O2C-03",
			Title:    "PHANTOM BILLING",
			Scope:    "Revenue recognition without proof of delivery (Goods Issue).",
			Query:    "SELECT VBELN, NETWR, KUNRG, SME_REASONING FROM O2C_VBRK WHERE SME_REASONING LIKE '%Phantom%' OR SME_REASONING LIKE '%No Goods Issue%'",
			Severity: models.LevelCritical,
			Noun:     "Phantom Bills",
		},
		// CE
		{
			ID:       "CE-01",
			Title:    "CHECK KITING",
			Scope:    "Large transfers with value date mismatches (Float Fraud).",
			Query:    "SELECT KUKEY, ESNUM, UMSATZ, VALUT, SME_REASONING FROM CE_FEBEP WHERE SME_REASONING LIKE '%Kiting%'",
			Severity: models.LevelCritical,
			Noun:     "Kiting Events",
		},
		{
			ID:        "CE-03",
			Title:     "LAPPING / TEEMING",
			Scope:     "Receivables applied to the wrong customer account.",
			Query:     "SELECT KUKEY, ESNUM, UMSATZ, PARTN, SME_REASONING FROM CE_FEBEP WHERE SME_REASONING LIKE '%Lapping%' OR SME_REASONING LIKE '%Mismatch%'",
			Severity:  models.LevelFail,
			Noun:      "Lapping Events",
			PageBreak: true,
		},
		// R2R
		{
			ID:    "R2R-02",
			Title: "COOKIE JAR RESERVES",
			Scope: "Earnings management via manual reserve releases.",
			Query: `
				SELECT R2R_BSEG.BELNR, R2R_BSEG.WRBTR, R2R_BSEG.SME_REASONING
				FROM R2R_BSEG
				LEFT JOIN R2R_BKPF ON R2R_BSEG.BELNR = R2R_BKPF.BELNR
				WHERE R2R_BSEG.SME_REASONING LIKE '%Cookie Jar%'
				   OR R2R_BSEG.SME_REASONING LIKE '%Reserve Release%'`,
			Severity: models.LevelCritical,
			Noun:     "Reserve Releases",
		},
		{
			ID:       "R2R-04",
			Title:    "TOP-SIDE ADJUSTMENTS",
			Scope:    "Direct posting to Control Accounts bypassing sub-ledgers.",
			Query:    "SELECT BELNR, HKONT, SME_REASONING FROM R2R_BSEG WHERE SME_REASONING LIKE '%Top-Side%' OR SME_REASONING LIKE '%Reconciliation Account%'",
			Severity: models.LevelFail,
			Noun:     "Top-Side Adjs",
		},
	}
}
