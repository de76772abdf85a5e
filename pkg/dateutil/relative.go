package dateutil

import (
	"fmt"
	"time"
)

// Fixed unit lengths in seconds. Deliberately not calendar-aware: a month
// is 30 days and a year 365 for bucketing purposes.
var relativeUnits = []struct {
	name    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// RelativeTime describes t relative to the current moment, e.g.
// "3 days ago", "in 2 hours", or "just now" for differences under a
// minute.
func RelativeTime(t time.Time) string {
	return RelativeTimeFrom(t, time.Now())
}

// RelativeTimeFrom describes t relative to the reference instant now.
func RelativeTimeFrom(t, now time.Time) string {
	diff := int64(now.Sub(t).Seconds())

	abs := diff
	if abs < 0 {
		abs = -abs
	}
	if abs < 60 {
		return "just now"
	}

	for _, unit := range relativeUnits {
		if abs < unit.seconds {
			continue
		}

		count := abs / unit.seconds
		label := unit.name
		if count > 1 {
			label += "s"
		}

		if diff > 0 {
			return fmt.Sprintf("%d %s ago", count, label)
		}
		return fmt.Sprintf("in %d %s", count, label)
	}

	return "just now"
}
