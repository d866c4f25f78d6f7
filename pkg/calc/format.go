package calc

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber formats v with two decimal places and thousand separators,
// e.g. 1234.5 is "1,234.50".
func FormatNumber(v float64) string {
	rounded := Round2(v)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	whole := math.Trunc(rounded)
	cents := int64(math.Round((rounded - whole) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	return sign + printer.Sprintf("%d", int64(whole)) + fmt.Sprintf(".%02d", cents)
}

// FormatCurrency formats v as US dollars, e.g. -5 is "-$5.00".
func FormatCurrency(v float64) string {
	s := FormatNumber(v)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// FormatApplianceName converts a camelCase catalog key into Title Case, so
// "washingMachine" becomes "Washing Machine".
func FormatApplianceName(name string) string {
	var b strings.Builder
	upperNext := true
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteRune(' ')
			upperNext = true
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
