package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "zero", amount: decimal.Zero, expected: "0.00"},
		{name: "grouping", amount: decimal.RequireFromString("1234.5"), expected: "1,234.50"},
		{name: "negative", amount: decimal.NewFromInt(-50), expected: "-50.00"},
		{name: "rounds to cents", amount: decimal.RequireFromString("0.125"), expected: "0.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Money(tt.amount))
		})
	}
}

func TestSignClass(t *testing.T) {
	assert.Equal(t, "positive", SignClass(decimal.NewFromInt(10)))
	assert.Equal(t, "positive", SignClass(decimal.Zero))
	assert.Equal(t, "negative", SignClass(decimal.NewFromInt(-1)))
}

func TestRateBadge(t *testing.T) {
	assert.Equal(t, "35", RateBadge("35%"))
	assert.Equal(t, "0", RateBadge("0%"))
}
