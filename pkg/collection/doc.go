// Package collection provides generic helpers for ordered slices: search,
// deduplication, grouping, sorting, set algebra, numeric reductions,
// pagination, and randomized selection.
//
// Every function returns a new slice or value and never mutates its input.
// Helpers that need a comparison or grouping key take an accessor function
// (T -> K) instead of relying on reflection, keeping everything type-safe:
//
//	import "github.com/dmitrymomot/utilkit/pkg/collection"
//
//	adults := collection.FindAll(users, func(u User) bool { return u.Age >= 18 })
//	byCity := collection.GroupBy(users, func(u User) string { return u.City })
//	page := collection.Paginate(users, 1, 20)
//
// Set-algebra contracts worth knowing: Intersection and Union deduplicate
// their results, while Difference intentionally does not: it preserves
// every occurrence from the first slice that is absent from the second.
// Average of an empty slice returns 0 rather than NaN.
//
// Shuffle and Sample draw from pkg/random's default source; use the random
// package directly when a seeded source is needed.
//
// All functions are stateless and safe for concurrent use.
package collection
