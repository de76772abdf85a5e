package collection

import (
	"cmp"
	"slices"

	"github.com/dmitrymomot/utilkit/pkg/random"
)

// Unique removes duplicate values, preserving first-seen order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]bool, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// UniqueBy removes elements whose key has already been seen, preserving
// first-seen order.
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]bool, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if !seen[k] {
			seen[k] = true
			result = append(result, item)
		}
	}
	return result
}

// GroupBy buckets elements by key. Within each bucket the original order
// is preserved; map key iteration order follows Go map semantics.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// SortBy returns a stably sorted copy ordered ascending by key.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	result := make([]T, len(items))
	copy(result, items)
	slices.SortStableFunc(result, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return result
}

// SortByDesc returns a stably sorted copy ordered descending by key.
func SortByDesc[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	result := make([]T, len(items))
	copy(result, items)
	slices.SortStableFunc(result, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
	return result
}

// Chunk partitions items into windows of the given size; the final window
// may be shorter. A non-positive size returns nil.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Flatten concatenates the inner slices of a two-level nesting.
func Flatten[T any](nested [][]T) []T {
	total := 0
	for _, inner := range nested {
		total += len(inner)
	}

	result := make([]T, 0, total)
	for _, inner := range nested {
		result = append(result, inner...)
	}
	return result
}

// FlattenDepth flattens arbitrarily nested []any values up to depth
// levels. Depth 0 returns the input unchanged.
func FlattenDepth(items []any, depth int) []any {
	if depth <= 0 {
		return items
	}

	result := make([]any, 0, len(items))
	for _, item := range items {
		if inner, ok := item.([]any); ok {
			result = append(result, FlattenDepth(inner, depth-1)...)
			continue
		}
		result = append(result, item)
	}
	return result
}

// Rotate cyclically rotates items left by positions. Negative positions
// rotate right; the shift is normalized modulo the length.
func Rotate[T any](items []T, positions int) []T {
	n := len(items)
	result := make([]T, n)
	if n == 0 {
		return result
	}

	k := ((positions % n) + n) % n
	copy(result, items[k:])
	copy(result[n-k:], items[:k])
	return result
}

// Shuffle returns a uniformly random permutation of items using the
// default random source.
func Shuffle[T any](items []T) []T {
	return random.Shuffle(items)
}

// Sample returns up to count elements chosen without replacement from a
// shuffled copy.
func Sample[T any](items []T, count int) []T {
	return random.Elements(items, count)
}
