package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxZakatYearRecords caps the annual summary table. Records live at fixed
// positions; position order, not date order, drives the balance recurrence.
const MaxZakatYearRecords = 10

// ZakatRate is the fixed 2.5% levy applied to net zakatable assets.
var ZakatRate = decimal.NewFromFloat(0.025)

// PaymentStatus summarises how far a year's obligation has been settled.
type PaymentStatus string

const (
	// StatusNotApplicable wins over everything else whenever no zakat is due.
	StatusNotApplicable PaymentStatus = "N/A"
	StatusPaidInFull    PaymentStatus = "PAID_IN_FULL"
	StatusNotStarted    PaymentStatus = "NOT_STARTED"
	StatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
)

// ZakatYearInput is what the user actually stores for a summary row: the
// calculation date and the two manual gold figures. Everything else on a
// ZakatYearRecord is recomputed from canonical tables on every read.
type ZakatYearInput struct {
	Date           time.Time       `json:"date"`
	GoldPricePerOz decimal.Decimal `json:"goldPricePerOz"`
	GoldOz         decimal.Decimal `json:"goldOz"`
}

// Blank reports whether the row is unused. A row without a date carries no
// derived values and is skipped by the balance recurrence.
func (in ZakatYearInput) Blank() bool {
	return in.Date.IsZero()
}

// ZakatYearRecord is one fully derived row of the annual summary.
// RunningBalance is deliberately unclamped: overpayment drives it negative
// and reduces future obligation pressure. BroughtForward is the clamped
// (never negative) carry shown for the following year.
type ZakatYearRecord struct {
	Position       int             `json:"position"`
	Date           time.Time       `json:"date"`
	StockTotal     decimal.Decimal `json:"stockTotal"`
	CashTotal      decimal.Decimal `json:"cashTotal"`
	DebtTotal      decimal.Decimal `json:"debtTotal"`
	GoldPricePerOz decimal.Decimal `json:"goldPricePerOz"`
	GoldOz         decimal.Decimal `json:"goldOz"`
	GoldValue      decimal.Decimal `json:"goldValue"`
	NetAssets      decimal.Decimal `json:"netAssets"`
	NisabThreshold decimal.Decimal `json:"nisabThreshold"`
	ZakatDue       decimal.Decimal `json:"zakatDue"`
	PaidThisPeriod decimal.Decimal `json:"paidThisPeriod"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Status         PaymentStatus   `json:"status"`
	BroughtForward decimal.Decimal `json:"broughtForward"`
	DuplicateDate  bool            `json:"duplicateDate"`
}

// TypeAmount pairs a payment type with a summed amount.
type TypeAmount struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// ZakatDashboard aggregates the whole register and ledger: total obligation
// across all years (positive dues only), what has been paid under each
// configured type, and the outstanding gap between owed and zakat paid.
type ZakatDashboard struct {
	TotalOwed          decimal.Decimal `json:"totalOwed"`
	PaidByType         []TypeAmount    `json:"paidByType"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
}
