package format

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// accentStripper decomposes to NFD, drops combining marks, and
	// recomposes to NFC.
	accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonSlugCharRegex = regexp.MustCompile(`[^\w\s-]`)
	slugSepRegex     = regexp.MustCompile(`[\s_-]+`)
)

// RemoveAccents strips diacritical marks from s, so "Café" becomes "Cafe".
// If normalization fails the input is returned unchanged.
func RemoveAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts s into a URL-safe slug: accents are removed, the string
// is lowercased and trimmed, characters other than word characters, spaces
// and hyphens are stripped, and runs of spaces, underscores and hyphens
// collapse into a single hyphen.
//
//	Slugify("Café & Bar") // "cafe-bar"
func Slugify(s string) string {
	s = RemoveAccents(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugCharRegex.ReplaceAllString(s, "")
	s = slugSepRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
