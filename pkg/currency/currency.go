package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is one of the fixed set of currencies an expense can be entered in.
type Currency string

const (
	TWD Currency = "TWD"
	JPY Currency = "JPY"
	USD Currency = "USD"
	EUR Currency = "EUR"
	KRW Currency = "KRW"
	CNY Currency = "CNY"
)

// Home is the currency all amounts are normalized to for totals and comparisons.
const Home = TWD

// rates maps a currency to its fixed exchange rate against the home currency.
var rates = map[Currency]decimal.Decimal{
	TWD: decimal.NewFromInt(1),
	JPY: decimal.RequireFromString("0.22"),
	USD: decimal.RequireFromString("31.5"),
	EUR: decimal.RequireFromString("34.2"),
	KRW: decimal.RequireFromString("0.023"),
	CNY: decimal.RequireFromString("4.35"),
}

// Supported returns the fixed currency set in a stable order, home currency first.
func Supported() []Currency {
	return []Currency{TWD, JPY, USD, EUR, KRW, CNY}
}

// Rate returns the fixed exchange rate for c against the home currency.
// Unknown currencies have a zero rate.
func Rate(c Currency) decimal.Decimal {
	return rates[c]
}

// IsValid reports whether c belongs to the fixed currency set.
func IsValid(c Currency) bool {
	_, ok := rates[c]
	return ok
}

// ToHome converts an amount in the given currency to the home currency,
// rounded to two decimal places.
func ToHome(amount decimal.Decimal, c Currency) decimal.Decimal {
	return amount.Mul(rates[c]).Round(2)
}

// ParseAmount parses a user-entered amount string. The second return value is
// false when the input is empty or not a number.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ToHomeString converts a user-entered amount string to the home currency.
// Invalid or non-numeric input yields zero; no error is signaled and the
// caller is responsible for input validation.
func ToHomeString(amount string, c Currency) decimal.Decimal {
	d, ok := ParseAmount(amount)
	if !ok {
		return decimal.Zero
	}
	return ToHome(d, c)
}
