package collection

import "cmp"

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the total of all elements; 0 for an empty slice.
func Sum[T Numeric](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// Average returns the arithmetic mean. An empty slice yields 0 by
// convention rather than NaN.
func Average[T Numeric](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Sum(items)) / float64(len(items))
}

// Min returns the smallest element. The second return value is false for
// an empty slice.
func Min[T cmp.Ordered](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}

	min := items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return min, true
}

// Max returns the largest element. The second return value is false for an
// empty slice.
func Max[T cmp.Ordered](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}

	max := items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return max, true
}

// Range returns the spread between the largest and smallest element; 0 for
// an empty slice.
func Range[T Numeric](items []T) T {
	min, ok := Min(items)
	if !ok {
		return 0
	}
	max, _ := Max(items)
	return max - min
}

// CountOccurrences returns a frequency map of the elements.
func CountOccurrences[T comparable](items []T) map[T]int {
	counts := make(map[T]int, len(items))
	for _, item := range items {
		counts[item]++
	}
	return counts
}
