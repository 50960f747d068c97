package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{name: "usd", amount: decimal.NewFromInt(100), currency: "USD", want: "$100.00"},
		{name: "usd thousands", amount: decimal.NewFromFloat(1234.5), currency: "USD", want: "$1,234.50"},
		{name: "eur lowercase code", amount: decimal.NewFromInt(50), currency: "eur", want: "€50.00"},
		{name: "jpy no decimals", amount: decimal.NewFromInt(1500000), currency: "JPY", want: "¥1,500,000"},
		{name: "unknown code", amount: decimal.NewFromInt(50), currency: "CHF", want: "CHF 50.00"},
		{name: "no code", amount: decimal.NewFromFloat(7.125), currency: "", want: "7.13"},
		{name: "negative", amount: decimal.NewFromInt(-2500), currency: "USD", want: "$-2,500.00"},
		{name: "exact group boundary", amount: decimal.NewFromInt(100000), currency: "GBP", want: "£100,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.currency))
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.NewFromFloat(12.3456), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.NewFromFloat(12.3456), 0))
}
