package random

import "strings"

// Character classes used by the string generators.
const (
	CharsetNumeric   = "0123456789"
	CharsetLowercase = "abcdefghijklmnopqrstuvwxyz"
	CharsetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlpha     = CharsetLowercase + CharsetUppercase
	CharsetSpecial   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// String returns length independent uniform draws from charset. An empty
// charset or non-positive length yields an empty string.
func (r *Rand) String(length int, charset string) string {
	if length <= 0 || charset == "" {
		return ""
	}

	chars := []rune(charset)
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteRune(chars[r.intn(len(chars))])
	}
	return b.String()
}

// Numeric returns a string of random digits.
func (r *Rand) Numeric(length int) string {
	return r.String(length, CharsetNumeric)
}

// Alpha returns a string of random ASCII letters, mixed case.
func (r *Rand) Alpha(length int) string {
	return r.String(length, CharsetAlpha)
}

// Alphanumeric returns a string of random letters and digits.
func (r *Rand) Alphanumeric(length int) string {
	return r.String(length, CharsetAlpha+CharsetNumeric)
}

// PasswordCharset toggles the character classes available to Password.
type PasswordCharset struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Special   bool
}

// DefaultPasswordCharset enables every character class.
func DefaultPasswordCharset() PasswordCharset {
	return PasswordCharset{
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Special:   true,
	}
}

// Password generates a password of the given length from the enabled
// character classes. Disabling every class is a configuration error and
// returns ErrEmptyCharset.
func (r *Rand) Password(length int, cfg PasswordCharset) (string, error) {
	var charset string
	if cfg.Uppercase {
		charset += CharsetUppercase
	}
	if cfg.Lowercase {
		charset += CharsetLowercase
	}
	if cfg.Numbers {
		charset += CharsetNumeric
	}
	if cfg.Special {
		charset += CharsetSpecial
	}

	if charset == "" {
		return "", ErrEmptyCharset
	}

	return r.String(length, charset), nil
}

// String returns random draws from charset using the default source.
func String(length int, charset string) string { return Default().String(length, charset) }

// Numeric returns a random digit string from the default source.
func Numeric(length int) string { return Default().Numeric(length) }

// Alpha returns a random letter string from the default source.
func Alpha(length int) string { return Default().Alpha(length) }

// Alphanumeric returns a random letter-and-digit string from the default source.
func Alphanumeric(length int) string { return Default().Alphanumeric(length) }

// Password generates a password from the default source.
func Password(length int, cfg PasswordCharset) (string, error) {
	return Default().Password(length, cfg)
}
