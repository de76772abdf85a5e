package dateutil

import "time"

// AddDays returns t shifted by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMonths returns t shifted by the given number of months. Overflowing
// days roll into the next month (Jan 31 + 1 month lands in March); they
// are never clamped.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// AddYears returns t shifted by the given number of years, with the same
// rollover semantics as AddMonths (Feb 29 + 1 year lands on Mar 1).
func AddYears(t time.Time, years int) time.Time {
	return t.AddDate(years, 0, 0)
}

// StartOfDay returns t with the time fields cleared, keeping the location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last representable instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(y, m+1, 0, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
