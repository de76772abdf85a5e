package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/dateutil"
)

func TestDiffInDays(t *testing.T) {
	t.Parallel()

	t.Run("whole day difference", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 5, dateutil.DiffInDays(date(2024, 1, 20), date(2024, 1, 15)))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		t.Parallel()
		late := time.Date(2024, 1, 16, 23, 59, 0, 0, time.UTC)
		early := time.Date(2024, 1, 15, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 1, dateutil.DiffInDays(late, early))
	})

	t.Run("antisymmetric", func(t *testing.T) {
		t.Parallel()
		a := date(2024, 3, 10)
		b := date(2024, 2, 1)
		assert.Equal(t, dateutil.DiffInDays(a, b), -dateutil.DiffInDays(b, a))
	})

	t.Run("same day is zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, dateutil.DiffInDays(date(2024, 1, 15), date(2024, 1, 15)))
	})
}

func TestDiffInHours(t *testing.T) {
	t.Parallel()

	a := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, 2, dateutil.DiffInHours(a, b), "partial hours floor")
	assert.Equal(t, -3, dateutil.DiffInHours(b, a), "negative difference floors downward")
}

func TestDiffInMinutes(t *testing.T) {
	t.Parallel()

	a := time.Date(2024, 1, 15, 12, 5, 30, 0, time.UTC)
	b := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, dateutil.DiffInMinutes(a, b))
	assert.Equal(t, -6, dateutil.DiffInMinutes(b, a))
}

func TestIsBetween(t *testing.T) {
	t.Parallel()

	start := date(2024, 1, 10)
	end := date(2024, 1, 20)

	t.Run("inside the range", func(t *testing.T) {
		t.Parallel()
		assert.True(t, dateutil.IsBetween(date(2024, 1, 15), start, end, false))
		assert.True(t, dateutil.IsBetween(date(2024, 1, 15), start, end, true))
	})

	t.Run("boundary depends on inclusivity", func(t *testing.T) {
		t.Parallel()
		assert.True(t, dateutil.IsBetween(start, start, end, true))
		assert.False(t, dateutil.IsBetween(start, start, end, false))
		assert.True(t, dateutil.IsBetween(end, start, end, true))
		assert.False(t, dateutil.IsBetween(end, start, end, false))
	})

	t.Run("outside the range", func(t *testing.T) {
		t.Parallel()
		assert.False(t, dateutil.IsBetween(date(2024, 1, 5), start, end, true))
		assert.False(t, dateutil.IsBetween(date(2024, 1, 25), start, end, true))
	})
}
