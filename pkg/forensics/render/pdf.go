package render

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

// Banner is printed in the page header.
const Banner = "synthetic cfo | AUTOMATED FORENSIC AUDIT BOT"

type rgb struct{ r, g, b int }

var (
	headingFill = rgb{32, 55, 100}
	scopeText   = rgb{80, 80, 80}
	contextFill = rgb{240, 240, 240}
	dumpFill    = rgb{245, 245, 245}
	black       = rgb{0, 0, 0}
	white       = rgb{255, 255, 255}
)

// StatusColor returns the traffic-light color of a level.
func StatusColor(l models.Level) (r, g, b int) {
	switch l {
	case models.LevelFail, models.LevelCritical:
		return 200, 0, 0
	case models.LevelWarn:
		return 220, 110, 0
	default:
		return 0, 128, 0
	}
}

// Cover holds the cover page details.
type Cover struct {
	// System names the simulated ERP, e.g. "SAP ECC".
	System   string
	Database string
	Executed time.Time
	RunID    string
}

// PDFOptions tunes document output.
type PDFOptions struct {
	// Uncompressed leaves page streams readable; used by tests.
	Uncompressed bool
}

// WritePDF renders the cover, the reading guide and every section to w.
func WritePDF(w io.Writer, cover Cover, sections []Section, opts PDFOptions) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!opts.Uncompressed)
	pdf.SetTitle("Forensic Audit Findings Report", false)
	pdf.SetCreator("synthetic cfo", false)
	if !cover.Executed.IsZero() {
		pdf.SetCreationDate(cover.Executed)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 10, Banner, "", 1, "R", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writeCover(pdf, tr, cover)
	pdf.AddPage()

	for i, s := range sections {
		writeSection(pdf, tr, s)
		if s.PageBreak && i < len(sections)-1 {
			pdf.AddPage()
		}
	}

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

func writeCover(pdf *fpdf.Fpdf, tr func(string) string, cover Cover) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 15, "FORENSIC AUDIT FINDINGS REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Target Database: "+cover.Database), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Execution Date: "+cover.Executed.Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	if cover.RunID != "" {
		pdf.CellFormat(0, 6, "Run ID: "+cover.RunID, "", 1, "C", false, 0, "")
	}
	pdf.Ln(10)

	setFill(pdf, contextFill)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "  HOW TO READ THIS REPORT (STRATEGIC CONTEXT)", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(ContextText(cover.System)), "", "L", false)
	pdf.Ln(10)
}

// ContextText explains the traffic-light statuses.
func ContextText(system string) string {
	name := "'Synthetic CFO' ERP Simulation"
	if system != "" {
		name = "'Synthetic CFO' " + system + " Simulation"
	}
	return "This document validates the " + name + ". Unlike a standard financial audit where findings are negative, " +
		"in this context, findings represent SUCCESSFUL DATA GENERATION.\n\n" +
		"1. STATUS: CLEAN (Green)\n" +
		"   Meaning: The control logic is functioning normally. No anomalies were generated in this batch.\n\n" +
		"2. STATUS: WARN (Orange)\n" +
		"   Meaning: Suspicious activity detected (e.g., Weekend Postings, SOD Conflicts). These are 'Red Flags' designed " +
		"to trigger alerts in AI/ML training models.\n\n" +
		"3. STATUS: FAIL / CRITICAL (Red)\n" +
		"   Meaning: Confirmed Fraud Pattern (e.g., Kiting, Lapping). The simulation successfully planted a 'Digital Virus' " +
		"for auditors to find."
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, s Section) {
	pdf.SetFont("Helvetica", "B", 12)
	setFill(pdf, headingFill)
	setText(pdf, white)
	pdf.CellFormat(0, 8, tr("  TEST: "+s.Heading), "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "I", 10)
	setText(pdf, scopeText)
	pdf.MultiCell(0, 6, tr("Scope: "+s.Scope), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(StatusColor(s.Level))
	pdf.CellFormat(0, 6, tr("STATUS: "+s.Status), "", 1, "L", false, 0, "")
	setText(pdf, black)
	pdf.Ln(2)

	if s.Body != "" {
		pdf.SetFont("Courier", "", 8)
		setFill(pdf, dumpFill)
		pdf.MultiCell(0, 4, tr(s.Body), "", "L", true)
	}
	pdf.Ln(8)
}

func setFill(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.r, c.g, c.b)
}

func setText(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}
