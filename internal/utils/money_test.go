package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "$0.00"},
		{"cents rounding", decimal.RequireFromString("12.5"), "$12.50"},
		{"thousands", decimal.RequireFromString("1234.5"), "$1,234.50"},
		{"millions", decimal.RequireFromString("1234567.89"), "$1,234,567.89"},
		{"exactly one thousand", decimal.RequireFromString("1000"), "$1,000.00"},
		{"negative", decimal.RequireFromString("-42.1"), "-$42.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(tt.amount))
		})
	}
}
