package calendar

import (
	"time"
)

// DateLayout is the canonical textual form of a calendar day, used as the
// bucket key everywhere: ledger filtering, itinerary days, calendar selection.
const DateLayout = "2006-01-02"

// DateKey formats t as the canonical YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// StartOfWeek returns the preceding (or same) Sunday at midnight.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthGrid describes the calendar widget cells for the month containing a
// date: the number of leading blank cells before day 1 (the weekday index of
// the first of the month, Sunday = 0) and the number of days in the month.
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          int
}

// MonthGridFor builds the month grid for the month containing t.
func MonthGridFor(t time.Time) MonthGrid {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	return MonthGrid{
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: int(first.Weekday()),
		Days:          lastDay,
	}
}
