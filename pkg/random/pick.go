package random

import "time"

// ShuffleWith returns a uniformly random permutation of items as a new
// slice, using the Fisher-Yates algorithm. The input is never mutated.
func ShuffleWith[T any](r *Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ElementWith returns a uniformly chosen element of items. The second
// return value is false for an empty slice.
func ElementWith[T any](r *Rand, items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[r.intn(len(items))], true
}

// ElementsWith returns up to count distinct elements of items, chosen
// without replacement via a shuffled copy.
func ElementsWith[T any](r *Rand, items []T, count int) []T {
	if count <= 0 {
		return []T{}
	}
	if count > len(items) {
		count = len(items)
	}
	return ShuffleWith(r, items)[:count]
}

// Date returns a uniform instant in [start, end) at millisecond
// granularity. If end is not after start, start is returned.
func (r *Rand) Date(start, end time.Time) time.Time {
	delta := end.UnixMilli() - start.UnixMilli()
	if delta <= 0 {
		return start
	}
	return start.Add(time.Duration(r.int63n(delta)) * time.Millisecond)
}

// Element returns a uniformly chosen element using the default source.
func Element[T any](items []T) (T, bool) { return ElementWith(Default(), items) }

// Elements returns up to count distinct elements using the default source.
func Elements[T any](items []T, count int) []T { return ElementsWith(Default(), items, count) }

// Shuffle returns a random permutation of items using the default source.
func Shuffle[T any](items []T) []T { return ShuffleWith(Default(), items) }

// Date returns a uniform instant in [start, end) from the default source.
func Date(start, end time.Time) time.Time { return Default().Date(start, end) }
