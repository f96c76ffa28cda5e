package render

import "github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"

// Section is one rendered check.
type Section struct {
	Heading   string
	Scope     string
	Status    string
	Level     models.Level
	Body      string
	PageBreak bool
}

// BuildSections converts findings into document sections. Currency columns are
// reformatted before the rows are dumped.
func BuildSections(findings []*models.Finding, currencyColumns []string) []Section {
	sections := make([]Section, 0, len(findings))
	for _, f := range findings {
		rs := f.Result
		if rs == nil {
			rs = &models.ResultSet{}
		}
		if len(currencyColumns) > 0 {
			rs = FormatCurrencyColumns(rs, currencyColumns)
		}
		sections = append(sections, Section{
			Heading:   f.Title,
			Scope:     f.Scope,
			Status:    f.Status,
			Level:     f.Level,
			Body:      Dump(rs, MaxRows),
			PageBreak: f.PageBreak,
		})
	}
	return sections
}
