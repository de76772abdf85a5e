// Package dateutil provides calendar arithmetic, comparison and
// relative-time formatting over time.Time values.
//
// The helpers operate on local calendar fields and deliberately avoid any
// timezone normalization beyond what each function documents. Calendar
// arithmetic inherits Go's rollover behavior: adding a month to January 31
// lands in early March rather than being clamped to the end of February.
//
// Day differences are computed on UTC-midnight-normalized days, which makes
// DiffInDays immune to time-of-day and DST effects; DiffInHours and
// DiffInMinutes work on the raw duration instead and can be negative.
//
//	import "github.com/dmitrymomot/utilkit/pkg/dateutil"
//
//	dateutil.AddMonths(t, 3)
//	dateutil.DiffInDays(a, b)      // antisymmetric whole-day difference
//	dateutil.RelativeTime(t)       // "3 days ago", "in 2 hours", "just now"
//
// RelativeTime buckets by fixed unit lengths (a month is 30 days, a year
// 365) rather than calendar-aware arithmetic; the output is meant for
// humans, not for computation.
//
// All functions are pure and safe for concurrent use.
package dateutil
