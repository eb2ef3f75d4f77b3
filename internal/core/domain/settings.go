package domain

import "github.com/shopspring/decimal"

// MaxSettingsSlots is the number of slots each reference list offers.
// Blank slots are simply absent entries; order is user-facing and preserved.
const MaxSettingsSlots = 30

// Settings holds the ordered reference lists and the nisab parameters that
// every other table reads from.
type Settings struct {
	Types         []string        `json:"types"`      // payment types (e.g. "Zakat", "Sadaqah")
	Services      []string        `json:"services"`   // transfer services (e.g. "Wise")
	Recipients    []string        `json:"recipients"` // known recipients / "given to" names
	GoldNisabOz   decimal.Decimal `json:"goldNisabOz"`   // 85g gold in troy oz
	SilverNisabOz decimal.Decimal `json:"silverNisabOz"` // 595g silver in troy oz
}

// NisabQuote is the result of the live nisab calculator: thresholds for a
// given spot price, without touching any stored record.
type NisabQuote struct {
	GoldPricePerOz   decimal.Decimal `json:"goldPricePerOz"`
	GoldThreshold    decimal.Decimal `json:"goldThreshold"`
	SilverPricePerOz decimal.Decimal `json:"silverPricePerOz"`
	SilverThreshold  decimal.Decimal `json:"silverThreshold"`
}

// DefaultSettings returns the seed configuration: the preset reference lists
// and the scholarly-default nisab weights (85g gold, 595g silver).
func DefaultSettings() Settings {
	return Settings{
		Types:    []string{"Zakat", "Sadaqah", "Fitrana", "Qurbani"},
		Services: []string{"Remitly", "Wise", "Bank Transfer", "Cash", "Zelle"},
		Recipients: []string{
			"Islamic Relief USA", "Zakat Foundation", "LaunchGood",
			"Local Mosque", "Family Member",
		},
		GoldNisabOz:   decimal.NewFromFloat(2.7315),
		SilverNisabOz: decimal.NewFromFloat(19.1358),
	}
}
