package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

var currencyPrecision = map[string]int32{
	"JPY": 0,
	"KRW": 0,
}

// FormatMoney formats an amount for display in operator-facing messages.
// Example: 1234.5 USD returns "$1,234.50"
// Example: 50 CHF returns "CHF 50.00"
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	code := strings.ToUpper(currencyCode)
	precision, ok := currencyPrecision[code]
	if !ok {
		precision = 2
	}

	negative := amount.IsNegative()
	formatted := groupThousands(amount.Abs().StringFixed(precision))
	if negative {
		formatted = "-" + formatted
	}

	if symbol, ok := currencySymbols[code]; ok {
		return symbol + formatted
	}
	if code == "" {
		return formatted
	}
	return code + " " + formatted
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
