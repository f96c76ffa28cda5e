package forensics

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/audit"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/profile"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/render"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/store"
)

// Report runs the profile's checks against a built snapshot and writes the PDF.
// A check whose query fails (typically a table that was never loaded) stops the
// report and is returned as a *CheckError together with the findings so far.
func Report(ctx context.Context, p *profile.Profile, opts Options) ([]*models.Finding, error) {
	runID := opts.ensureRunID()
	log := opts.logger().WithFields(logrus.Fields{"flavor": p.Flavor, "run_id": runID})

	dbPath := opts.DatabasePath(p)
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	log.Infof("Initializing %s forensic audit bot (PDF engine)...", p.Title)
	findings, err := audit.RunAll(ctx, st, p.Checks)
	if err != nil {
		return findings, err
	}
	for _, f := range findings {
		log.WithField("check", f.Title).Debugf("STATUS: %s", f.Status)
	}

	reportPath := opts.ReportPath(p)
	cover := render.Cover{System: p.Title, Database: dbPath, Executed: opts.now(), RunID: runID}
	if err := writeReport(reportPath, cover, render.BuildSections(findings, p.CurrencyColumns), opts.PDF); err != nil {
		return findings, err
	}

	render.Summary(opts.console(), findings)
	log.Infof("Audit PDF generated: %s", reportPath)
	return findings, nil
}

func writeReport(path string, cover render.Cover, sections []render.Section, opts render.PDFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := render.WritePDF(f, cover, sections, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}

// Run loads the snapshot and then reports on it.
func Run(ctx context.Context, p *profile.Profile, opts Options) (*models.LoadSummary, []*models.Finding, error) {
	opts.ensureRunID()
	summary, err := Load(ctx, p, opts)
	if err != nil {
		return nil, nil, err
	}
	findings, err := Report(ctx, p, opts)
	return summary, findings, err
}
