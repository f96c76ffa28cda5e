package store

import (
	"fmt"
	"strings"
)

// ViewSource is one branch of a union view over annotated rows.
type ViewSource struct {
	// Module is the tag written to the MODULE column.
	Module string
	// Source is the tag written to the SOURCE column.
	Source string
	// Table is the snapshot table the rows come from.
	Table string
	// DocID is the SQL expression producing the document identifier.
	DocID string
	// Column is the annotation column searched for keywords.
	Column string
	// Keywords are matched as case-sensitive substrings; any match selects the row.
	Keywords []string
	// Severity is the constant written to the RISK_LEVEL column.
	Severity string
}

// BuildUnionView renders the UNION ALL body of a risk view.
func BuildUnionView(sources []ViewSource) string {
	branches := make([]string, 0, len(sources))
	for _, src := range sources {
		col := QuoteIdent(src.Column)
		preds := make([]string, len(src.Keywords))
		for i, kw := range src.Keywords {
			preds[i] = fmt.Sprintf("instr(%s, %s) > 0", col, quoteLiteral(kw))
		}
		branches = append(branches, fmt.Sprintf(
			"SELECT %s AS MODULE, %s AS SOURCE, %s AS DOC_ID, %s AS FORENSIC_LOG, %s AS RISK_LEVEL\nFROM %s\nWHERE %s",
			quoteLiteral(src.Module), quoteLiteral(src.Source), src.DocID, col, quoteLiteral(src.Severity),
			QuoteIdent(src.Table), strings.Join(preds, " OR "),
		))
	}
	return strings.Join(branches, "\nUNION ALL\n")
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
