package domain

import "github.com/shopspring/decimal"

// AllYears is the year-filter sentinel meaning "do not restrict by year".
const AllYears = 0

// ReportDetailWindow is the fixed size of the detail view. Matches beyond it
// are cut off; rows beyond the match count stay blank.
const ReportDetailWindow = 100

// TypeBreakdownRow is one row of the per-type breakdown, in settings slot
// order.
type TypeBreakdownRow struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// ReportDetailRow is one row of the capped detail view. Blank rows pad the
// window beyond the match count; filled rows expose the ledger entry
// unmodified.
type ReportDetailRow struct {
	Blank bool         `json:"blank"`
	Rank  int          `json:"rank"` // 1-based row number within the report
	Entry PaymentEntry `json:"entry"`
}

// RecipientReport aggregates the payment ledger for one recipient under an
// optional year filter. HasRecipient is false when no recipient was selected,
// in which case every aggregate renders as a placeholder downstream.
type RecipientReport struct {
	Recipient        string             `json:"recipient"`
	Year             int                `json:"year"` // AllYears or a specific year
	HasRecipient     bool               `json:"hasRecipient"`
	TotalGiven       decimal.Decimal    `json:"totalGiven"`
	TransactionCount int                `json:"transactionCount"`
	Breakdown        []TypeBreakdownRow `json:"breakdown"`
	AllTypesTotal    decimal.Decimal    `json:"allTypesTotal"`
	Detail           []ReportDetailRow  `json:"detail"`
}

// ServiceFeeRow sums amounts, fees and payment counts for one transfer
// service across the entire ledger, ignoring the report's person/year filter.
type ServiceFeeRow struct {
	Service      string          `json:"service"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TotalFees    decimal.Decimal `json:"totalFees"`
	PaymentCount int             `json:"paymentCount"`
}
