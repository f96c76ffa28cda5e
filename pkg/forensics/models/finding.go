package models

// Level is the traffic-light outcome of a check.
type Level int

const (
	// LevelClean means the check returned no rows.
	LevelClean Level = iota
	// LevelWarn marks suspicious activity.
	LevelWarn
	// LevelFail marks a confirmed pattern.
	LevelFail
	// LevelCritical marks a confirmed high-severity pattern.
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelFail:
		return "FAIL"
	case LevelCritical:
		return "CRITICAL FAIL"
	default:
		return "CLEAN"
	}
}

// Finding is the outcome of one forensic check.
type Finding struct {
	// ID is the control reference, e.g. "C-08".
	ID string `json:"id"`
	// Title is the section heading.
	Title string `json:"title"`
	// Scope describes what the check looks for.
	Scope string `json:"scope"`
	// Status is the rendered status line, e.g. "FAIL (3 Conflicts)".
	Status string `json:"status"`
	// Level is derived from Status.
	Level Level `json:"level"`
	// Result holds the matching rows.
	Result *ResultSet `json:"-"`
	// PageBreak starts a new page after this section.
	PageBreak bool `json:"-"`
}
