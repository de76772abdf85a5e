package format

import "strings"

// PadSide selects which side of the string Pad fills.
type PadSide int

const (
	PadLeft PadSide = iota
	PadRight
	PadBoth
)

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// Single-pass replacement: "&amp;lt;" unescapes to "&lt;", not "<".
	htmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// Truncate shortens s to at most maxLength characters, appending suffix
// when truncation happens. If maxLength is not larger than the suffix
// itself, the result is the first maxLength characters of the suffix.
func Truncate(s string, maxLength int, suffix string) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	suffixRunes := []rune(suffix)
	if maxLength <= len(suffixRunes) {
		return string(suffixRunes[:maxLength])
	}

	return string(runes[:maxLength-len(suffixRunes)]) + suffix
}

// Pad extends s to length characters using the fill string on the chosen
// side. With PadBoth the deficit is split evenly and the extra character
// goes to the right. A string already at or beyond length is returned
// unchanged.
func Pad(s string, length int, fill string, side PadSide) string {
	runes := []rune(s)
	deficit := length - len(runes)
	if deficit <= 0 || fill == "" {
		return s
	}

	switch side {
	case PadLeft:
		return repeatTo(fill, deficit) + s
	case PadRight:
		return s + repeatTo(fill, deficit)
	case PadBoth:
		left := deficit / 2
		return repeatTo(fill, left) + s + repeatTo(fill, deficit-left)
	default:
		return s
	}
}

// repeatTo repeats fill until it covers n characters, then cuts it to
// exactly n.
func repeatTo(fill string, n int) string {
	fillRunes := []rune(fill)
	out := make([]rune, n)
	for i := range out {
		out[i] = fillRunes[i%len(fillRunes)]
	}
	return string(out)
}

// Mask keeps visibleStart leading and visibleEnd trailing characters of s
// and replaces everything between with the mask character. Strings not
// longer than visibleStart+visibleEnd are returned unchanged.
func Mask(s string, visibleStart, visibleEnd int, maskChar string) string {
	if visibleStart < 0 {
		visibleStart = 0
	}
	if visibleEnd < 0 {
		visibleEnd = 0
	}

	runes := []rune(s)
	if len(runes) <= visibleStart+visibleEnd {
		return s
	}

	masked := strings.Repeat(maskChar, len(runes)-visibleStart-visibleEnd)
	return string(runes[:visibleStart]) + masked + string(runes[len(runes)-visibleEnd:])
}

// EscapeHTML replaces the five HTML-reserved characters (& < > " ') with
// their entities in a single pass.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML replaces the five known entities back into characters.
// Unknown entities pass through unchanged; this is not a general SGML
// unescaper.
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
