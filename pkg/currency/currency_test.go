package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToHomeString(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency Currency
		want     string
	}{
		{
			name:     "home currency is identity",
			amount:   "150",
			currency: TWD,
			want:     "150",
		},
		{
			name:     "JPY converts with fixed rate",
			amount:   "1000",
			currency: JPY,
			want:     "220",
		},
		{
			name:     "result is rounded to two decimal places",
			amount:   "123",
			currency: KRW,
			want:     "2.83",
		},
		{
			name:     "fractional input amount",
			amount:   "12.5",
			currency: USD,
			want:     "393.75",
		},
		{
			name:     "non-numeric amount yields zero",
			amount:   "abc",
			currency: USD,
			want:     "0",
		},
		{
			name:     "empty amount yields zero",
			amount:   "",
			currency: JPY,
			want:     "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHomeString(tt.amount, tt.currency)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ToHomeString(%q, %s) = %s, want %s", tt.amount, tt.currency, got, tt.want)
		})
	}
}

func TestToHomeMatchesRate(t *testing.T) {
	for _, c := range Supported() {
		amount := decimal.RequireFromString("42.42")
		want := amount.Mul(Rate(c)).Round(2)
		assert.True(t, ToHome(amount, c).Equal(want), "currency %s", c)
	}
}

func TestParseAmount(t *testing.T) {
	_, ok := ParseAmount(" 2.50 ")
	assert.True(t, ok)

	_, ok = ParseAmount("1.2.3")
	assert.False(t, ok)

	_, ok = ParseAmount("   ")
	assert.False(t, ok)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(JPY))
	assert.False(t, IsValid(Currency("XXX")))
}
