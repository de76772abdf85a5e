package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/collection"
)

func TestIntersection(t *testing.T) {
	t.Parallel()

	t.Run("deduplicated common elements in first slice order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []int{2, 3}, collection.Intersection([]int{1, 2, 2, 3}, []int{3, 2, 4}))
	})

	t.Run("disjoint slices", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, collection.Intersection([]int{1, 2}, []int{3, 4}))
	})
}

func TestDifference(t *testing.T) {
	t.Parallel()

	t.Run("keeps duplicates from first slice", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []int{1, 1, 4}, collection.Difference([]int{1, 1, 2, 3, 4}, []int{2, 3}))
	})

	t.Run("is asymmetric", func(t *testing.T) {
		t.Parallel()
		a := []int{1, 2}
		b := []int{2, 3}
		assert.Equal(t, []int{1}, collection.Difference(a, b))
		assert.Equal(t, []int{3}, collection.Difference(b, a))
	})

	t.Run("empty second slice returns all of first", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []int{1, 2}, collection.Difference([]int{1, 2}, []int{}))
	})
}

func TestUnion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3, 4}, collection.Union([]int{1, 2, 2}, []int{2, 3, 4, 1}))
	assert.Empty(t, collection.Union([]int{}, []int{}))
}
