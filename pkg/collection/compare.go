package collection

// IsEqual reports whether a and b have the same length and equal elements
// at every position.
func IsEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
