package collection

// Intersection returns the deduplicated elements of a that also appear in b,
// in a's order.
func Intersection[T comparable](a, b []T) []T {
	inB := make(map[T]bool, len(b))
	for _, item := range b {
		inB[item] = true
	}

	seen := make(map[T]bool)
	result := make([]T, 0)
	for _, item := range a {
		if inB[item] && !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// Difference returns the elements of a that do not appear in b. Unlike
// Intersection and Union this keeps duplicates from a.
func Difference[T comparable](a, b []T) []T {
	inB := make(map[T]bool, len(b))
	for _, item := range b {
		inB[item] = true
	}

	result := make([]T, 0)
	for _, item := range a {
		if !inB[item] {
			result = append(result, item)
		}
	}
	return result
}

// Union returns the deduplicated concatenation of a and b, preserving
// first-seen order.
func Union[T comparable](a, b []T) []T {
	seen := make(map[T]bool, len(a)+len(b))
	result := make([]T, 0, len(a)+len(b))

	for _, item := range a {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	for _, item := range b {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
