package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutDay is the persisted and printed form of a day key.
	LayoutDay      = "2006-01-02"
	layoutDayLoose = "2006-1-2"
	layoutDayShort = "1/2"
	layoutMonth    = "January 2006"
	layoutDayUS    = "Monday, January 2, 2006"
)

// Day truncates t to the start of its calendar day in loc. Every day-keyed
// lookup in the module goes through here so submission, lookup, monthly
// grouping and retention agree on what "a day" is.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// Month truncates t to the first day of its calendar month in loc.
func Month(t time.Time, loc *time.Location) time.Time {
	d := Day(t, loc)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// AddMonths moves t by n calendar months keeping the wall clock. A day of
// month past the end of the target month is clamped to its last day, so
// 2025-06-30 minus four months is 2025-02-28.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(d, last)-1)
}

// FormatDay renders a day key.
func FormatDay(day time.Time) string {
	return day.Format(LayoutDay)
}

// FormatMonth renders a month key, e.g. "March 2025".
func FormatMonth(month time.Time) string {
	return month.Format(layoutMonth)
}

// FormatDayLong renders a day for headings, e.g. "Saturday, March 1, 2025".
func FormatDayLong(day time.Time) string {
	return day.Format(layoutDayUS)
}

// ParseDayKey parses a persisted day key. Plain dates are read in loc; full
// RFC 3339 timestamps (older files) are converted to loc and truncated.
func ParseDayKey(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(LayoutDay, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q", s)
	}
	return Day(t, loc), nil
}

// ParseOn parses a user supplied day such as "2025-3-1" or "3/1". A short
// form without a year resolves to the most recent such day on or before now.
func ParseOn(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "today":
		return Day(now, loc), nil
	case "yesterday":
		return Day(now, loc).AddDate(0, 0, -1), nil
	}
	if t, err := time.ParseInLocation(layoutDayLoose, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutDayShort, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-M-D or M/D", s)
	}
	today := Day(now, loc)
	t = time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	// History only looks backwards, so 12/30 asked on 1/3 means last year.
	if t.After(today) {
		t = t.AddDate(-1, 0, 0)
	}
	return t, nil
}
