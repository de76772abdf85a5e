// Package format provides display-formatting helpers for numbers, strings,
// dates-adjacent identifiers and sensitive values.
//
// The functions are grouped conceptually into several areas:
//
//   - Numbers – thousands grouping, fixed-point decimals, percentages, and
//     locale-aware number/currency rendering backed by golang.org/x/text.
//
//   - Casing – conversion between Title Case, camelCase, snake_case,
//     kebab-case and simple capitalization.
//
//   - Text – truncation with suffix, padding, masking of sensitive middles,
//     and HTML entity escaping for the five reserved characters.
//
//   - Identifiers – phone-number templating and credit-card grouping over
//     digit-stripped input.
//
//   - Slugs – accent removal via Unicode NFD decomposition and URL-safe
//     slug generation.
//
// All helpers are pure: they never mutate their input and never return an
// error for malformed data, falling back to the original value or an empty
// string instead. The only error-returning function is Currency, where an
// unknown ISO 4217 code is a caller mistake rather than bad data.
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/format"
//
//	format.Thousands(1234567.89, ",") // "1,234,567.89"
//	format.Slugify("Café & Bar")      // "cafe-bar"
//	format.Mask("4532015112830366", 4, 4, "*") // "4532********0366"
//
// Locale-dependent output (separator characters, symbol placement) is
// delegated to golang.org/x/text and follows CLDR data; it is an external
// contract, not something this package reimplements.
//
// All functions are stateless and safe for concurrent use.
package format
