package calendar

import (
	"fmt"
	"time"
)

// NextOccurrence returns the start of the next day, strictly after today, that falls on
// month/day in loc. A birthday that is today resolves to next year.
func NextOccurrence(month, day int, today time.Time, loc *time.Location) time.Time {
	today = today.In(loc)
	candidate := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, loc)
	start := StartOfDay(today)
	if !candidate.After(start) {
		candidate = time.Date(today.Year()+1, time.Month(month), day, 0, 0, 0, 0, loc)
	}
	return candidate
}

// StartOfDay returns midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Relative describes target compared to now in days: "tomorrow", "in 12 days".
func Relative(target, now time.Time) string {
	from := StartOfDay(now.In(target.Location()))
	to := StartOfDay(target)
	// calendar days, DST-safe
	days := int(time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).
		Sub(time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24)

	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days > 0:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// Ordinal returns n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if mod := abs % 100; mod >= 11 && mod <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch abs % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}
