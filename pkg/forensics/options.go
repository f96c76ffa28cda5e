// Package forensics loads synthetic ERP workbooks into a relational snapshot and
// reports the forensic anomalies planted in them.
package forensics

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/profile"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/render"
)

// Options configures a loader or reporter run.
type Options struct {
	// SourceDir holds the module workbooks. Defaults to the working directory.
	SourceDir string
	// Database overrides the profile's snapshot file.
	Database string
	// Report overrides the profile's PDF file.
	Report string
	// Logger receives progress and diagnostics. Defaults to the standard logrus logger.
	Logger *logrus.Logger
	// Console receives the colored check summary. Defaults to stdout.
	Console io.Writer
	// RunID tags log lines and the report cover. Generated when empty.
	RunID string
	// Now stamps the report. Defaults to time.Now.
	Now func() time.Time
	// PDF tunes document output.
	PDF render.PDFOptions
}

// DefaultOptions returns options that read and write in the working directory.
func DefaultOptions() Options {
	return Options{}
}

// DatabasePath returns the snapshot path for a profile.
func (o Options) DatabasePath(p *profile.Profile) string {
	if o.Database != "" {
		return o.Database
	}
	return p.Database
}

// ReportPath returns the PDF path for a profile.
func (o Options) ReportPath(p *profile.Profile) string {
	if o.Report != "" {
		return o.Report
	}
	return p.Report
}

// SourcePath returns the workbook path of a module.
func (o Options) SourcePath(m profile.Module) string {
	return filepath.Join(o.SourceDir, m.File)
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) console() io.Writer {
	if o.Console != nil {
		return o.Console
	}
	return os.Stdout
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *Options) ensureRunID() string {
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	return o.RunID
}
