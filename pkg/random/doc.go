// Package random generates pseudo-random numbers, strings, identifiers and
// selections from an explicit, seedable source.
//
// Instead of relying on ambient global randomness, every helper is backed by
// a *Rand. A process-wide default instance (seeded once from the clock, or
// from configuration when UTILKIT_RANDOM_SEED is set) keeps call sites terse:
//
//	import "github.com/dmitrymomot/utilkit/pkg/random"
//
//	n := random.Number(1, 6)            // inclusive range, default source
//	s := random.Alphanumeric(12)
//	id := random.UUID()                 // version-4 layout
//
// For reproducible output, construct a dedicated source:
//
//	r := random.New(42)
//	r.Number(1, 6) // same sequence on every run
//
// Generic helpers that cannot be methods (Element, Elements, Shuffle) come
// in pairs: a package-level function using the default source, and a *With
// variant taking an explicit one.
//
// # Error handling
//
// Generation never fails for value inputs. The one exception is Password:
// requesting a password with every character class disabled is a
// configuration mistake and returns ErrEmptyCharset.
//
// # Thread safety
//
// A *Rand serializes access to its underlying source with a mutex, so the
// default instance and any explicitly created one are safe for concurrent
// use. This is not cryptographic randomness; do not use it for secrets.
package random
