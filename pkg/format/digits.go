package format

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// Phone substitutes the digits of s one-by-one into the "X" placeholders
// of template. Formatting characters in s are stripped first. If the digit
// count does not match the placeholder count, s is returned unchanged to
// avoid data loss.
//
//	Phone("5551234567", "(XXX) XXX-XXXX") // "(555) 123-4567"
func Phone(s, template string) string {
	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) != strings.Count(template, "X") {
		return s
	}

	var b strings.Builder
	b.Grow(len(template))

	next := 0
	for _, r := range template {
		if r == 'X' {
			b.WriteByte(digits[next])
			next++
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// CreditCard groups the digits of s in blocks of four separated by sep.
// Input is digit-stripped first; anything outside the common 13-19 digit
// card lengths is returned unchanged.
func CreditCard(s, sep string) string {
	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) < 13 || len(digits) > 19 {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteString(sep)
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}

	return b.String()
}
