package collection

import "strings"

// Find returns the first element satisfying pred. The second return value
// is false when nothing matches.
func Find[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindAll returns every element satisfying pred, in order.
func FindAll[T any](items []T, pred func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[T any](items []T, pred func(T) bool) int {
	for i, item := range items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// Search returns the elements whose projected fields contain query as a
// case-insensitive substring. The fields accessor decides which string
// representations of T participate in the match.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(query)

	result := make([]T, 0)
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				result = append(result, item)
				break
			}
		}
	}
	return result
}
