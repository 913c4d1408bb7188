package domain_test

import (
	"testing"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  decimal.Decimal
	}{
		{name: "integer", input: "10", want: decimal.NewFromInt(10)},
		{name: "fractional", input: "12.5", want: decimal.RequireFromString("12.5")},
		{name: "negative", input: "-3.25", want: decimal.RequireFromString("-3.25")},
		{name: "surrounding whitespace", input: "  7 ", want: decimal.NewFromInt(7)},
		{name: "empty coerces to zero", input: "", want: decimal.Zero},
		{name: "non-numeric coerces to zero", input: "abc", want: decimal.Zero},
		{name: "partially numeric coerces to zero", input: "12x", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CoerceAmount(tt.input)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestLineItem_LineTotal(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
		want string
	}{
		{
			name: "qty times price",
			item: domain.LineItem{Qty: "10", UnitPrice: "12.5"},
			want: "125",
		},
		{
			name: "malformed qty counts as zero",
			item: domain.LineItem{Qty: "ten", UnitPrice: "12.5"},
			want: "0",
		},
		{
			name: "malformed price counts as zero",
			item: domain.LineItem{Qty: "10", UnitPrice: "$12.50"},
			want: "0",
		},
		{
			name: "negative qty allowed",
			item: domain.LineItem{Qty: "-2", UnitPrice: "3"},
			want: "-6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.item.LineTotal()
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	macros := []domain.MacroLine{
		{
			MacroLineID: "m1",
			Items: []domain.LineItem{
				{LineItemID: "i1", Qty: "10", UnitPrice: "12.5"},
				{LineItemID: "i2", Qty: "2", UnitPrice: "5"},
			},
		},
		{
			MacroLineID: "m2",
			Items: []domain.LineItem{
				{LineItemID: "i3", Qty: "not a number", UnitPrice: "100"},
			},
		},
	}

	totals := domain.ComputeTotals(macros)

	assert.True(t, decimal.RequireFromString("125").Equal(totals.PerItem["i1"]))
	assert.True(t, decimal.RequireFromString("10").Equal(totals.PerItem["i2"]))
	assert.True(t, decimal.Zero.Equal(totals.PerItem["i3"]))
	assert.True(t, decimal.RequireFromString("135").Equal(totals.PerMacro["m1"]))
	assert.True(t, decimal.Zero.Equal(totals.PerMacro["m2"]))
	assert.True(t, decimal.RequireFromString("135").Equal(totals.Grand))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := domain.ComputeTotals(nil)
	assert.True(t, decimal.Zero.Equal(totals.Grand))
	assert.Empty(t, totals.PerMacro)
	assert.Empty(t, totals.PerItem)
}
