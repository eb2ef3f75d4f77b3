package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetKind identifies one of the three asset ledgers feeding the zakat
// calculation. Debts are stored as positive balances and subtracted later.
type AssetKind string

const (
	AssetStocks AssetKind = "stocks"
	AssetCash   AssetKind = "cash"
	AssetDebts  AssetKind = "debts"
)

// ParseAssetKind maps a path/query parameter onto an AssetKind.
func ParseAssetKind(s string) (AssetKind, bool) {
	switch AssetKind(s) {
	case AssetStocks, AssetCash, AssetDebts:
		return AssetKind(s), true
	}
	return "", false
}

// MaxAssetSnapshots caps how many dated snapshots each ledger kind holds.
const MaxAssetSnapshots = 10

// AssetSnapshot is the balance of every named account of one ledger kind on
// a single date. Total is derived as the sum of the balances.
type AssetSnapshot struct {
	Kind     AssetKind                  `json:"kind"`
	Date     time.Time                  `json:"date"`
	Balances map[string]decimal.Decimal `json:"balances"`
	Total    decimal.Decimal            `json:"total"`
}

// AssetAccounts returns the fixed account names of each ledger kind.
func AssetAccounts() map[AssetKind][]string {
	return map[AssetKind][]string{
		AssetStocks: {"TD Ameritrade", "Charles Schwab", "Fidelity", "Vanguard", "Robinhood", "Other Account"},
		AssetCash:   {"Chase Checking", "Chase Savings", "Bank of America", "Money Market", "Cash on Hand", "Other Liquid"},
		AssetDebts:  {"Chase Credit Card", "Citi Credit Card", "Amex Credit Card", "Car Loan", "Personal Loan", "Other Debt"},
	}
}
