package validate

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// Permissive email pattern: single "@" with a dot in the domain part.
	// Suitable for web forms, not full RFC 5322.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// dateLayouts are tried in order by IsDate.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// IsEmail reports whether s looks like an email address. The check is a
// permissive single-"@" pattern; see the package documentation for the
// limitations.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsURL reports whether s is a parseable absolute URL with a scheme and
// host.
func IsURL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsHexColor reports whether s is a "#" followed by 3 or 6 hex digits,
// case-insensitive.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// IsUsername reports whether s is 3-20 characters of letters, digits,
// underscore or hyphen.
func IsUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsDate reports whether s parses as a date in any of the supported
// layouts (RFC 3339, ISO date/datetime, US slash format).
func IsDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsJSON reports whether s is syntactically valid JSON.
func IsJSON(s string) bool {
	return json.Valid([]byte(s))
}

// IsUUID reports whether s is a valid UUID in any format accepted by
// github.com/google/uuid (canonical, braced, or URN).
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IsAlphanumeric reports whether s is non-empty and contains only ASCII
// letters and digits.
func IsAlphanumeric(s string) bool {
	return alphanumericRegex.MatchString(s)
}

// IsNumericString reports whether s is non-empty and contains only ASCII
// digits.
func IsNumericString(s string) bool {
	return numericStringRegex.MatchString(s)
}
