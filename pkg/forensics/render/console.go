package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

var levelStyles = map[models.Level]lipgloss.Style{
	models.LevelClean:    lipgloss.NewStyle().Foreground(lipgloss.Color("#008000")),
	models.LevelWarn:     lipgloss.NewStyle().Foreground(lipgloss.Color("#DC6E00")),
	models.LevelFail:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C80000")),
	models.LevelCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("#C80000")).Bold(true),
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// Summary prints one colored status line per finding.
func Summary(w io.Writer, findings []*models.Finding) {
	fmt.Fprintln(w, headingStyle.Render("FORENSIC CHECK SUMMARY"))
	for _, f := range findings {
		fmt.Fprintf(w, "  %-48s %s\n", f.Title, levelStyles[f.Level].Render(f.Status))
	}
}
