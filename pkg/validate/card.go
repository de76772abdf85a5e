package validate

import "strings"

// IsCreditCard reports whether s is a plausible payment card number.
// Embedded spaces are stripped before checking; any other non-digit
// character invalidates the input. The digit count must be 13-19 and the
// number must satisfy the Luhn checksum.
func IsCreditCard(s string) bool {
	digits := strings.ReplaceAll(s, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false

	// Iterate from the least significant digit, doubling every second one.
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}

		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}
