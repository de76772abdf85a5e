package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/dateutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, date(2024, 1, 20), dateutil.AddDays(date(2024, 1, 15), 5))
	assert.Equal(t, date(2024, 1, 10), dateutil.AddDays(date(2024, 1, 15), -5))
	assert.Equal(t, date(2024, 2, 1), dateutil.AddDays(date(2024, 1, 31), 1))
	assert.Equal(t, date(2024, 3, 1), dateutil.AddDays(date(2024, 2, 29), 1), "leap day rolls into march")
}

func TestAddMonths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, date(2024, 4, 15), dateutil.AddMonths(date(2024, 1, 15), 3))

	t.Run("overflow rolls over instead of clamping", func(t *testing.T) {
		t.Parallel()
		// January 31 + 1 month: February 31 normalizes to March 2 in a leap year.
		assert.Equal(t, date(2024, 3, 2), dateutil.AddMonths(date(2024, 1, 31), 1))
		// Non-leap year: February 31 normalizes to March 3.
		assert.Equal(t, date(2023, 3, 3), dateutil.AddMonths(date(2023, 1, 31), 1))
	})

	t.Run("crosses year boundary", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, date(2025, 1, 15), dateutil.AddMonths(date(2024, 11, 15), 2))
	})
}

func TestAddYears(t *testing.T) {
	t.Parallel()

	assert.Equal(t, date(2026, 6, 15), dateutil.AddYears(date(2024, 6, 15), 2))
	// Feb 29 + 1 year rolls into March 1 of a non-leap year.
	assert.Equal(t, date(2025, 3, 1), dateutil.AddYears(date(2024, 2, 29), 1))
}

func TestStartAndEndOfDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*3600)
	ts := time.Date(2024, 6, 15, 14, 30, 45, 123456789, loc)

	start := dateutil.StartOfDay(ts)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())

	end := dateutil.EndOfDay(ts)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, 15, end.Day())
}

func TestStartAndEndOfMonth(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, date(2024, 2, 1), dateutil.StartOfMonth(ts))

	end := dateutil.EndOfMonth(ts)
	assert.Equal(t, 29, end.Day(), "february 2024 has 29 days")
	assert.Equal(t, time.February, end.Month())

	end2023 := dateutil.EndOfMonth(time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 28, end2023.Day())
}
