package parser

import (
	"strings"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

// CleanReference strips every non-digit character from a text reference so that
// keys match across modules ("INV- 0042" and "CHK-0042" both become "0042").
// Non-text values keep their plain textual form and nil stays nil.
func CleanReference(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, x)
	default:
		return FormatValue(x)
	}
}

// AddCleanColumn sets dst to CleanReference of src, appending dst unless the
// sheet already has it. It reports false when the sheet has no src column.
func AddCleanColumn(sheet *models.SheetData, src, dst string) bool {
	idx := sheet.ColumnIndex(src)
	if idx < 0 {
		return false
	}
	if j := sheet.ColumnIndex(dst); j >= 0 {
		sheet.Columns[j].Type = models.TypeText
		for _, row := range sheet.Rows {
			row[j] = CleanReference(row[idx])
		}
		return true
	}
	sheet.AddColumn(models.Column{Name: dst, Type: models.TypeText}, func(row []any) any {
		return CleanReference(row[idx])
	})
	return true
}
