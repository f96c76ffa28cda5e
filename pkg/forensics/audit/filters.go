package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/parser"
)

// DateLayout is how filtered dates are shown.
const DateLayout = "2006-01-02"

// WeekendOver keeps rows whose dateCol falls on Saturday or Sunday and whose
// amountCol exceeds threshold. Matching dates are rewritten as YYYY-MM-DD.
// Rows with a NULL date or amount are dropped; any other date that does not
// parse, or amount that is not numeric, is an error.
func WeekendOver(dateCol, amountCol string, threshold float64) Filter {
	return func(rs *models.ResultSet) (*models.ResultSet, error) {
		di, ai := rs.ColumnIndex(dateCol), rs.ColumnIndex(amountCol)
		if di < 0 || ai < 0 {
			return nil, fmt.Errorf("weekend filter needs columns %s and %s", dateCol, amountCol)
		}

		out := &models.ResultSet{Columns: rs.Columns}
		for n, row := range rs.Rows {
			if row[di] == nil || row[ai] == nil {
				continue
			}
			posted, ok := parser.ParseDate(row[di])
			if !ok {
				return nil, fmt.Errorf("row %d: %s %q is not a date", n+1, dateCol, parser.FormatValue(row[di]))
			}
			amount, ok := toFloat(row[ai])
			if !ok {
				return nil, fmt.Errorf("row %d: %s %q is not numeric", n+1, amountCol, parser.FormatValue(row[ai]))
			}
			if wd := posted.Weekday(); wd != time.Saturday && wd != time.Sunday {
				continue
			}
			if amount <= threshold {
				continue
			}
			kept := append([]any(nil), row...)
			kept[di] = posted.Format(DateLayout)
			out.Rows = append(out.Rows, kept)
		}
		return out, nil
	}
}

// toFloat accepts numbers and numeric text, as a TEXT-typed column hands them back.
func toFloat(v any) (float64, bool) {
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
