package dateutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-date form used across stored collections.
	DateLayout = "2006-01-02"
	// ClockLayout is the zero-padded time-of-day form.
	ClockLayout = "15:04"
)

// StartOfWeek returns midnight of the Monday on or before t, in t's location.
// ISO weeks start Monday; a Sunday therefore maps six days back.
func StartOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7 // Sunday -> 7
	}
	d := t.AddDate(0, 0, -offset+1)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Combine parses a date and clock string into a sortable instant in the
// given location. An empty clock defaults to "00:00".
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine %q %q: %w", date, clock, err)
	}
	return t, nil
}

// SortKey returns a lexicographically sortable key for a (date, clock) pair.
// An empty clock sorts as midnight.
func SortKey(date, clock string) string {
	if clock == "" {
		clock = "00:00"
	}
	return date + "T" + clock
}

// FormatDate renders t as a stored calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthRange returns the first and last calendar dates of a month, both
// inclusive, as stored date strings.
func MonthRange(year int, month time.Month) (first, last string) {
	f := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	l := f.AddDate(0, 1, -1)
	return f.Format(DateLayout), l.Format(DateLayout)
}
