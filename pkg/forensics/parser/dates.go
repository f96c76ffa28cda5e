package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// TimestampLayout is the textual form datetime cells are stored in.
const TimestampLayout = "2006-01-02 15:04:05"

// builtInDateFormats lists the built-in number format ids that render dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

var formatLiterals = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)

// dateStyles caches the date classification of style ids for one workbook.
type dateStyles struct {
	f     *excelize.File
	cache map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	return &dateStyles{f: f, cache: make(map[int]bool)}
}

func (d *dateStyles) isDate(sheetName, cellName string) bool {
	styleID, err := d.f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if v, ok := d.cache[styleID]; ok {
		return v
	}
	v := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		v = builtInDateFormats[style.NumFmt]
		if !v && style.CustomNumFmt != nil {
			v = IsDateFormatCode(*style.CustomNumFmt)
		}
	}
	d.cache[styleID] = v
	return v
}

// IsDateFormatCode reports whether a custom number format renders a date.
// Quoted literals, bracketed sections and escaped characters are ignored.
func IsDateFormatCode(code string) bool {
	code = strings.ToLower(formatLiterals.ReplaceAllString(code, ""))
	return strings.ContainsAny(code, "yd")
}

// dateLayouts are tried in order when a date arrives as text.
var dateLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"01/02/2006",
	"02-Jan-2006",
	"2-Jan-06",
}

// ParseDate converts a stored date value (time, Excel serial or text) to a time.
func ParseDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case int64:
		t, err := excelize.ExcelDateToTime(float64(x), false)
		return t, err == nil
	case float64:
		t, err := excelize.ExcelDateToTime(x, false)
		return t, err == nil
	case []byte:
		return ParseDate(string(x))
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		// SQLite may hand back fractional seconds
		if len(s) > len(TimestampLayout) {
			if t, err := time.Parse(TimestampLayout, s[:len(TimestampLayout)]); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
