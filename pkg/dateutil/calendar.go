package dateutil

import "time"

// sameDay reports whether a and b share a calendar day in their own
// locations.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	return sameDay(t, time.Now())
}

// IsYesterday reports whether t falls on the previous calendar day.
func IsYesterday(t time.Time) bool {
	return sameDay(t, time.Now().AddDate(0, 0, -1))
}

// IsTomorrow reports whether t falls on the next calendar day.
func IsTomorrow(t time.Time) bool {
	return sameDay(t, time.Now().AddDate(0, 0, 1))
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4
// and not by 100, or divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
