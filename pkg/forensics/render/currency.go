// Package render turns findings into the audit document and console output.
package render

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

var printer = message.NewPrinter(language.English)

// Amount formats v with two decimals and comma grouping, e.g. "1,234.50".
func Amount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatCurrencyColumns returns a copy of rs where each listed column is
// rewritten with Amount. NULL cells stay NULL; a column holding any other
// non-numeric value is left as is.
func FormatCurrencyColumns(rs *models.ResultSet, columns []string) *models.ResultSet {
	out := &models.ResultSet{Columns: rs.Columns, Rows: make([][]any, len(rs.Rows))}
	for i, row := range rs.Rows {
		out.Rows[i] = append([]any(nil), row...)
	}

	for _, name := range columns {
		idx := rs.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		formatted := make([]any, len(rs.Rows))
		ok := true
		for i, row := range rs.Rows {
			if row[idx] == nil {
				continue
			}
			f, isNum := numeric(row[idx])
			if !isNum {
				ok = false
				break
			}
			formatted[i] = Amount(f)
		}
		if !ok {
			continue
		}
		for i := range out.Rows {
			out.Rows[i][idx] = formatted[i]
		}
	}
	return out
}

func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}
