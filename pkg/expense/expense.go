package expense

import (
	"github.com/Minpi-0/traveler-app/pkg/currency"
	"github.com/shopspring/decimal"
)

// Category is the fixed expense category set.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryLodging   Category = "lodging"
	CategoryShopping  Category = "shopping"
	CategoryOther     Category = "other"
)

// Expense is a single ledger record. HomeAmount is derived from InputAmount
// and InputCurrency at creation/update time and never recomputed afterwards.
// Payer references the payer registry by name at entry time only; it is not
// kept in sync with later registry changes.
type Expense struct {
	ID            string
	Date          string // canonical YYYY-MM-DD key
	Category      Category
	Description   string
	HomeAmount    decimal.Decimal
	HomeCurrency  currency.Currency
	InputAmount   decimal.Decimal
	InputCurrency currency.Currency
	Payer         string
}

// PayerWildcard matches every payer when filtering.
const PayerWildcard = "all"
