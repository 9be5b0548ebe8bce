// Package timeweek computes ISO-8601 week identifiers and boundaries.
// Weeks start on Monday; a week belongs to the year that owns its Thursday.
package timeweek

import (
	"fmt"
	"time"
)

// ID returns the ISO week identifier for t, formatted "YYYY-Www".
func ID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Start returns Monday 00:00:00 of t's ISO week, in t's location.
func Start(t time.Time) time.Time {
	daysSinceMonday := int(t.Weekday()) - int(time.Monday)
	if daysSinceMonday < 0 {
		daysSinceMonday += 7
	}
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// End returns Sunday 23:59:59.999999999 of t's ISO week, in t's location.
func End(t time.Time) time.Time {
	sunday := Start(t).AddDate(0, 0, 6)
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// ParseID turns a "YYYY-Www" identifier back into the week's Monday.
// January 4th is always inside ISO week 1 of its year.
func ParseID(id string) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(id, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("week id must look like 2026-W03, got %q", id)
	}
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("week number out of range in %q", id)
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local)
	return Start(jan4).AddDate(0, 0, (week-1)*7), nil
}

// Span bundles the week coordinates for t.
type SpanInfo struct {
	Year  int
	Week  int
	Start time.Time
	End   time.Time
}

func Span(t time.Time) SpanInfo {
	year, week := t.ISOWeek()
	return SpanInfo{Year: year, Week: week, Start: Start(t), End: End(t)}
}
