package dateutil

import (
	"math"
	"time"
)

// utcMidnight maps t's calendar day onto midnight UTC, eliminating
// time-of-day and DST effects from day arithmetic.
func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DiffInDays returns the whole-day difference a minus b, computed on
// UTC-midnight-normalized calendar days. It is antisymmetric:
// DiffInDays(a, b) == -DiffInDays(b, a).
func DiffInDays(a, b time.Time) int {
	return int(utcMidnight(a).Sub(utcMidnight(b)).Hours() / 24)
}

// DiffInHours returns the raw hour difference a minus b, floored. Unlike
// DiffInDays there is no calendar normalization; the result can be
// negative.
func DiffInHours(a, b time.Time) int {
	return int(math.Floor(a.Sub(b).Hours()))
}

// DiffInMinutes returns the raw minute difference a minus b, floored.
func DiffInMinutes(a, b time.Time) int {
	return int(math.Floor(a.Sub(b).Minutes()))
}

// IsBetween reports whether t falls between start and end. With inclusive
// set, the boundaries themselves count as inside.
func IsBetween(t, start, end time.Time, inclusive bool) bool {
	if inclusive {
		return !t.Before(start) && !t.After(end)
	}
	return t.After(start) && t.Before(end)
}
