package risk

import "strings"

// Level is the closed ordinal classification used for severity, probability
// and impact throughout the scorer.
type Level int

const (
	Low Level = iota + 1
	Medium
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "Low"
	case High:
		return "High"
	default:
		return "Medium"
	}
}

// Score returns the numeric value of the level: Low=1, Medium=2, High=3.
func (l Level) Score() int {
	return int(l)
}

// MarshalText emits the level name so JSON outputs carry "Low"/"Medium"/"High"
// instead of raw integers.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	*l = ParseLevel(string(text))
	return nil
}

// ParseLevel coerces free text to a Level. Matching is case-insensitive and
// accepts the single-letter and abbreviated forms found in older snapshots.
//
// Unrecognized text coerces to Medium instead of failing. This fallback is
// deliberate and load-bearing: downstream scores silently assume it, so it is
// isolated here where it can be seen and tested rather than buried in the
// arithmetic.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return High
	case "low", "l":
		return Low
	case "medium", "med", "m":
		return Medium
	default:
		return Medium
	}
}
