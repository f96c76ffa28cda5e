package forensics

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetSpec struct {
	name string
	rows [][]any
}

// writeWorkbook saves the given sheets, in order, as an xlsx file.
func writeWorkbook(t *testing.T, path string, sheets ...sheetSpec) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &s.rows[r]))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func testOptions(t *testing.T, dir string) (Options, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return Options{
		SourceDir: dir,
		Database:  filepath.Join(dir, "snapshot.db"),
		Report:    filepath.Join(dir, "report.pdf"),
		Logger:    logger,
		Console:   io.Discard,
		RunID:     "test-run",
		Now:       func() time.Time { return time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC) },
	}, hook
}

var summarySheet = sheetSpec{name: "SUMMARY", rows: [][]any{{"Metric", "Value"}, {"Rows", 3}}}

// oracleFixture writes the Oracle workbooks. With dirty set every check has one
// planted anomaly; otherwise every check comes back clean. CE is skipped when withCE is false.
func oracleFixture(t *testing.T, dir string, dirty, withCE bool) {
	t.Helper()

	invoices := [][]any{
		{"Invoice Num", "Vendor ID", "Invoice Amount", "Source", "Created By", "Last Updated By", "Approval Status"},
		{"INV-003", "V3", 500, "PO", "amy", "tom", "PENDING"},
	}
	checks := [][]any{
		{"CHECK_NUMBER", "AMOUNT", "CHECK_DATE", "VENDOR_ID", "STATUS_LOOKUP_CODE"},
		{1002, 700, "2024-01-06", "V2", "NEGOTIABLE"},
	}
	jeLines := [][]any{
		{"JE_HEADER_ID", "JE_LINE_NUM", "ENTERED_DR", "CREATED_BY", "SOURCE", "PERIOD_NAME", "POSTED_DATE"},
		{2, 1, 1500, "gl_user", "Manual", "JAN-24", "2024-01-08"},
		{3, 1, 800000, "gl_user", "Spreadsheet", "JAN-24", "2024-01-07"},
	}
	lines := [][]any{
		{"LINE_ID", "TRX_CODE", "AMOUNT", "DESC", "GL_MATCH"},
		{2, "CHK", 100, "check", "MATCHED"},
	}
	if dirty {
		invoices = append(invoices,
			[]any{"INV-001", "V1", 75000, "MANUAL", "jdoe", "asmith", "APPROVED"},
			[]any{"INV-002 ", "V2", 1200, "PO", "bob", "bob", "APPROVED"},
		)
		checks = append(checks, []any{1001, 500, "2024-01-05", "V1", "VOIDED"})
		jeLines = append(jeLines, []any{1, 1, 2000000, "CFO_OVERRIDE", "Manual", "JAN-24", "2024-01-06"})
		lines = append(lines, []any{1, "WIRE", 900000, "KITE TRANSFER", "NO_MATCH"})
	}

	writeWorkbook(t, filepath.Join(dir, "Oracle_P2P_Platinum_Mode.xlsx"),
		summarySheet,
		sheetSpec{"AP_INVOICES_ALL", invoices},
		sheetSpec{"AP_CHECKS_ALL", checks},
	)
	writeWorkbook(t, filepath.Join(dir, "Oracle_O2C_Platinum_Mode.xlsx"),
		sheetSpec{"RA_CUSTOMER_TRX_ALL", [][]any{{"TRX_NUMBER", "AMOUNT"}, {"T-1", 10}, {"T-2", 20}}},
		sheetSpec{"CONTROL_MATRIX", [][]any{{"Control", "Owner"}, {"C-01", "AP"}}},
	)
	writeWorkbook(t, filepath.Join(dir, "Oracle_GL_Platinum_Mode.xlsx"),
		sheetSpec{"GL_JE_LINES", jeLines},
		sheetSpec{"GL_TRIAL_BALANCE", [][]any{{"ACCOUNT", "ENDING_BALANCE"}, {"11000", 1000}, {"11001", 2000}, {"20000", 5}}},
		sheetSpec{"RECONCILIATION_REPORT", [][]any{{"Check", "Result"}, {"Cash", "Gap"}}},
	)
	if withCE {
		writeWorkbook(t, filepath.Join(dir, "Oracle_CE_Platinum_Mode.xlsx"),
			sheetSpec{"CE_STATEMENT_HEADERS", [][]any{{"STATEMENT_DATE", "CLOSING_BALANCE"}, {"2024-01-31", 2500}, {"2024-01-30", 9999}}},
			sheetSpec{"CE_STATEMENT_LINES", lines},
		)
	}
}

// sapFixture writes the four SAP workbooks with one planted anomaly per check.
func sapFixture(t *testing.T, dir string) {
	t.Helper()

	writeWorkbook(t, filepath.Join(dir, "SAP_ECC_P2P_Final_Platinum.xlsx"),
		summarySheet,
		sheetSpec{"AUDIT_LEAD_SHEET", [][]any{{"Area", "Lead"}, {"P2P", "auditor"}}},
		sheetSpec{"SKA1", [][]any{{"SAKNR", "TXT50"}, {"110000", "Cash"}}},
		sheetSpec{"BKPF", [][]any{
			{"BELNR", "USNAM", "TCODE", "XBLNR", "BKTXT", "SME_REASONING"},
			{"5100000001", "JSMITH", "MIRO", "INV- 0042", "Invoice", "SOD: Self-Approval"},
			{"5100000002", "AJONES", "MIRO", "INV-0043 ", "Duplicate invoice", "Normal"},
		}},
		sheetSpec{"EKKO", [][]any{
			{"EBELN", "ERNAM", "NETWR", "SME_REASONING"},
			{"4500000001", "JSMITH", 9900, "FAIL: Split PO"},
			{"4500000002", "AJONES", 120000, "fail lowercase"},
			{"4500000003", "AJONES", 5000, "Normal"},
		}},
		sheetSpec{"PAYR", [][]any{
			{"CHECT", "ZBUKR", "RWBTR"},
			{42, "1000", 500},
			{77, "1000", 100},
		}},
	)
	writeWorkbook(t, filepath.Join(dir, "SAP_ECC_O2C_Final_Platinum.xlsx"),
		sheetSpec{"VBRK", [][]any{
			{"VBELN", "NETWR", "FKDAT", "KUNRG", "SME_REASONING"},
			{"9000001", 250000, "2024-01-31", "C1", "Channel Stuffing: forced at month end"},
			{"9000002", 1000, "2024-01-15", "C2", "OVERRIDE Phantom billing"},
			{"9000003", 10, "2024-01-10", "C3", "Normal"},
		}},
	)
	writeWorkbook(t, filepath.Join(dir, "SAP_ECC_CE_Final_Platinum.xlsx"),
		sheetSpec{"FEBEP", [][]any{
			{"KUKEY", "ESNUM", "UMSATZ", "VALUT", "PARTN", "EOWNR", "SME_REASONING"},
			{1, 1, 500, "2024-01-05", "V1", "CHK-0042", "Normal"},
			{1, 2, 1000000, "2024-01-06", "X", "WIRE", "CRITICAL Kiting"},
			{1, 3, 200, "2024-01-07", "C2", "REF", "Lapping mismatch"},
		}},
		sheetSpec{"T012", [][]any{{"HBKID", "BANKL"}, {"H1", "123"}}},
	)
	writeWorkbook(t, filepath.Join(dir, "SAP_ECC_R2R_Final_Platinum.xlsx"),
		sheetSpec{"BKPF", [][]any{
			{"BELNR", "BLART", "XBLNR"},
			{"100", "RV", "9000001"},
			{"101", "SA", "9000002"},
		}},
		sheetSpec{"BSEG", [][]any{
			{"BELNR", "HKONT", "WRBTR", "SME_REASONING"},
			{"100", "400000", 250000, "Normal"},
			{"200", "140000", 50000, "Suspicious Cookie Jar reserve release"},
			{"201", "140000", 10, "Top-Side adjustment"},
		}},
	)
}
