package validate

import (
	"net"
	"strconv"
	"strings"
)

// IsPhone reports whether s contains a plausible phone number. All
// non-digit characters are stripped; the remaining digit count must be in
// [10, 15]. This is deliberately loose and country-agnostic.
func IsPhone(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 15
}

// IsIPv4 reports whether s is a canonical dotted-decimal IPv4 address.
// Each of the four segments must be an integer 0-255 written without
// leading zeros, so "192.168.01.1" is rejected.
func IsIPv4(s string) bool {
	segments := strings.Split(s, ".")
	if len(segments) != 4 {
		return false
	}

	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		// Reject non-canonical forms like "01" or "+1".
		if strconv.Itoa(n) != seg {
			return false
		}
	}

	return true
}

// IsMAC reports whether s is a valid MAC address in any of the formats
// accepted by net.ParseMAC (colon, hyphen, or dot separated).
func IsMAC(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := net.ParseMAC(s)
	return err == nil
}
