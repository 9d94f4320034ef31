// Package money provides parsing and formatting of monetary amounts.
//
// Amounts are handled as int64 cents throughout the application; strings only
// appear at the API boundary. The display convention is fixed: dot as
// thousands separator, comma as decimal separator ("1.234,56").
package money

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned when a string cannot be parsed as a
// non-negative monetary amount.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// ParseCents converts a decimal string to cents with half-up rounding on the
// third decimal place. It accepts both decimal separators ("12.34" and
// "12,34") as well as the full display convention ("1.234,56"). Negative
// values are rejected; zero is allowed.
//
// Examples:
//
//	ParseCents("12.34")    -> 1234, nil
//	ParseCents("1.234,56") -> 123456, nil
//	ParseCents("12,345")   -> 1234, nil (rounds down)
//	ParseCents("12,346")   -> 1235, nil (rounds up)
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	// "1.234,56" carries both separators: dots are grouping, comma is the
	// decimal mark. With a comma present, every dot is grouping.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// Take the first two fractional digits, then half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	return iv*100 + fracCents, nil
}

// FormatCents renders cents in the fixed display convention: "1.234,56".
// Negative amounts carry a leading minus sign.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	b.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}
