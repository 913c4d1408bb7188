package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount as a US dollar string with thousands
// separators and two decimal places, e.g. 1234.5 -> "$1,234.50".
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
