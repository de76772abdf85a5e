package format

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidCurrencyCode is returned by Currency for unknown ISO 4217 codes.
var ErrInvalidCurrencyCode = errors.New("invalid ISO 4217 currency code")

// Thousands formats n with sep inserted at every third digit left of the
// decimal point. The sign and fractional part pass through unsegmented.
// Non-finite values are returned in their strconv representation.
func Thousands(n float64, sep string) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	s := strconv.FormatFloat(n, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	if len(intPart) <= 3 || sep == "" {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	b.Grow(len(intPart) + (len(intPart)/3)*len(sep))

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + fracPart
}

// Number renders n for the given locale with a fixed number of fraction
// digits. Grouping and decimal separators follow CLDR data for the tag.
func Number(n float64, tag language.Tag, decimals int) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Currency renders amount with the symbol of the given ISO 4217 code for
// the locale identified by tag. Symbol placement and separators are
// locale-defined. An unknown code returns ErrInvalidCurrencyCode.
func Currency(amount float64, code string, tag language.Tag) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", errors.Join(ErrInvalidCurrencyCode, err)
	}

	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount))), nil
}

// Percentage multiplies v by 100 and renders it with the given number of
// decimal places followed by a percent sign.
func Percentage(v float64, decimals int) string {
	return strconv.FormatFloat(v*100, 'f', decimals, 64) + "%"
}

// Decimal renders v with a fixed number of decimal places using standard
// fixed-point rounding.
func Decimal(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
