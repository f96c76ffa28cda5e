// Package main provides the CLI entry point for the forensic audit suite.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/config"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/profile"
)

var (
	flavor     string
	configPath string
	sourceDir  string
	dbPath     string
	outPath    string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "forensics",
		Short: "Load synthetic ERP exports and report planted fraud patterns",
		Long: `forensics loads Oracle Cloud or SAP ECC workbook exports into a fresh SQLite
snapshot, then runs a fixed catalog of forensic checks against it and writes a PDF report.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flavor, "flavor", "f", string(profile.FlavorOracle), "ERP flavor: oracle or sap")
	pf.StringVarP(&configPath, "config", "c", "", "Path to an ini config file")
	pf.StringVar(&sourceDir, "source-dir", "", "Directory holding the module workbooks (default: working directory)")
	pf.StringVar(&dbPath, "db", "", "Snapshot database path (default: flavor database name)")
	pf.StringVarP(&outPath, "out", "o", "", "PDF report path (default: flavor report name)")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "load",
			Short: "Rebuild the snapshot database from the module workbooks",
			Args:  cobra.NoArgs,
			RunE:  runLoad,
		},
		&cobra.Command{
			Use:   "report",
			Short: "Run the forensic checks against the snapshot and write the PDF",
			Args:  cobra.NoArgs,
			RunE:  runReport,
		},
		&cobra.Command{
			Use:   "run",
			Short: "Load, then report",
			Args:  cobra.NoArgs,
			RunE:  runAll,
		},
		&cobra.Command{
			Use:   "checks",
			Short: "List the check catalog of a flavor",
			Args:  cobra.NoArgs,
			RunE:  runChecks,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup resolves the profile and run options. Flags win over the config file,
// which wins over the flavor defaults.
func setup() (*profile.Profile, forensics.Options, error) {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, forensics.Options{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyLogging(log); err != nil {
		return nil, forensics.Options{}, err
	}
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	p, err := profile.Lookup(flavor)
	if err != nil {
		return nil, forensics.Options{}, err
	}

	fc := cfg.Flavor(string(p.Flavor))
	opts := forensics.DefaultOptions()
	opts.Logger = log
	opts.SourceDir = firstNonEmpty(sourceDir, fc.SourceDir)
	opts.Database = firstNonEmpty(dbPath, fc.Database)
	opts.Report = firstNonEmpty(outPath, fc.Report)
	return p, opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func runLoad(cmd *cobra.Command, args []string) error {
	p, opts, err := setup()
	if err != nil {
		return err
	}

	summary, err := forensics.Load(cmd.Context(), p, opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if len(summary.Errors) > 0 {
		opts.Logger.Warnf("%d sheets or modules were skipped; see the log above", len(summary.Errors))
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	p, opts, err := setup()
	if err != nil {
		return err
	}

	if _, err := forensics.Report(cmd.Context(), p, opts); err != nil {
		if errors.Is(err, forensics.ErrDatabaseNotFound) {
			return fmt.Errorf("%w: %s (run 'forensics load --flavor %s' first)", err, opts.DatabasePath(p), p.Flavor)
		}
		return fmt.Errorf("report failed: %w", err)
	}
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	p, opts, err := setup()
	if err != nil {
		return err
	}

	if _, _, err := forensics.Run(cmd.Context(), p, opts); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}

func runChecks(cmd *cobra.Command, args []string) error {
	p, err := profile.Lookup(flavor)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s checks\n", p.Title)
	for _, c := range p.Checks {
		id := c.ID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, c.Severity, c.Title, c.Scope)
	}
	return w.Flush()
}
