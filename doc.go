// Package utilkit is a collection of small, stateless helper packages for
// everyday application code: validation, formatting, slice operations, date
// arithmetic, random value generation, and file-metadata inspection.
//
// Each concern lives in its own package under pkg/ and has no dependency on
// the others beyond shared primitive types. Nothing here holds state between
// calls, performs I/O, or spawns goroutines; every helper is a pure
// transformation over its inputs and is safe for concurrent use.
//
// Packages:
//
//   - pkg/validate: boolean predicates and structured password validation
//   - pkg/format: display formatting for numbers, strings and identifiers
//   - pkg/collection: generic slice helpers (search, set algebra, paging)
//   - pkg/dateutil: calendar arithmetic and relative-time formatting
//   - pkg/random: seeded pseudo-random values, strings and identifiers
//   - pkg/fileutil: MIME classification, size formatting, extensions
//   - pkg/config: env-based configuration loading for library defaults
//
// Basic usage:
//
//	if validate.IsEmail(input) {
//		slug := format.Slugify(title)
//		page := collection.Paginate(items, 1, 20)
//		// ...
//	}
//
// The library follows these principles:
//   - Expected-invalid input returns false or a result value, never an error
//   - Inputs are never mutated; transformations return new values
//   - Explicit over implicit: random sources and comparison keys are passed in
package utilkit
