package view

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the Paraguayan guaraní sign.
const CurrencySymbol = "₲"

// FormatCurrency renders an amount as whole guaraníes with dot grouping, e.g. "₲ 1.234.567".
// Negative amounts keep their sign after the symbol: "₲ -1.234".
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).RoundBank(0)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	return CurrencySymbol + " " + sign + groupThousands(d.String())
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
