package format

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	upperCharRegex   = regexp.MustCompile(`([A-Z])`)
	separatorsRegex  = regexp.MustCompile(`[\s_-]+`)
	leadingSepRegex  = regexp.MustCompile(`^[_-]+`)
	trailingSepRegex = regexp.MustCompile(`[_-]+$`)
)

// splitWords segments s on whitespace, hyphens, underscores and
// lower-to-upper case transitions.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	var prev rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()

	return words
}

// Capitalize uppercases the first character of s and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// TitleCase capitalizes every word of s, joining words with single spaces.
func TitleCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// CamelCase lowercases the first word of s and capitalizes the rest,
// joining them without separators.
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// SnakeCase converts s to snake_case: a separator is inserted before each
// uppercase letter, the whole string is lowercased, separator runs collapse
// to a single underscore, and leading/trailing separators are stripped.
func SnakeCase(s string) string {
	return toSeparated(s, "_")
}

// KebabCase converts s to kebab-case using the same segmentation rules as
// SnakeCase.
func KebabCase(s string) string {
	return toSeparated(s, "-")
}

func toSeparated(s, sep string) string {
	s = upperCharRegex.ReplaceAllString(s, sep+"$1")
	s = strings.ToLower(s)
	s = separatorsRegex.ReplaceAllString(s, sep)
	s = leadingSepRegex.ReplaceAllString(s, "")
	s = trailingSepRegex.ReplaceAllString(s, "")
	return s
}
