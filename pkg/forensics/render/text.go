package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/parser"
)

// MaxRows is the number of result rows printed per section.
const MaxRows = 15

// Dump renders at most limit rows of rs as right-aligned fixed-width text,
// followed by a truncation notice when rows were left out.
func Dump(rs *models.ResultSet, limit int) string {
	if rs.Empty() {
		return ""
	}

	head := rs.Head(limit)
	cells := make([][]string, 0, head.Len()+1)
	cells = append(cells, head.Columns)
	for _, row := range head.Rows {
		line := make([]string, len(row))
		for i, v := range row {
			line[i] = cellText(v)
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(head.Columns))
	for _, line := range cells {
		for i, c := range line {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for n, line := range cells {
		if n > 0 {
			b.WriteByte('\n')
		}
		for i, c := range line {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
			b.WriteString(c)
		}
	}

	if rest := rs.Len() - head.Len(); rest > 0 {
		fmt.Fprintf(&b, "\n\n... (%d more records truncated)", rest)
	}
	return b.String()
}

func cellText(v any) string {
	if v == nil {
		return "None"
	}
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(parser.FormatValue(v))
}
