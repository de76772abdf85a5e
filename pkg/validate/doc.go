// Package validate provides boolean predicates for common input formats and a
// structured password policy check.
//
// Every predicate takes the value under test and returns true or false.
// Malformed input is an expected condition, not an error: parse failures from
// the underlying stdlib parsers are converted into a false result, and no
// function in this package panics or returns an error.
//
// # Usage
//
//	import "github.com/dmitrymomot/utilkit/pkg/validate"
//
//	validate.IsEmail("user@example.com") // true
//	validate.IsIPv4("192.168.0.1")       // true
//	validate.IsCreditCard("4532 0151 1283 0366") // true (Luhn)
//
// Password validation returns a result value rather than a bare boolean so
// callers can surface every failed requirement at once:
//
//	res := validate.CheckPassword("hunter2", validate.DefaultPasswordConfig())
//	if !res.Valid {
//		for _, msg := range res.Errors {
//			fmt.Println(msg)
//		}
//	}
//
// # Limitations
//
// IsEmail uses a deliberately permissive pattern (single "@" with a dot in
// the domain part) suited to web form validation, not the full RFC 5322
// grammar. IsPhone only checks that the digit count is plausible (10-15)
// and makes no attempt at country-specific formats.
//
// All functions are stateless and safe for concurrent use.
package validate
