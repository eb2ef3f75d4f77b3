package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxLedgerEntries caps the payment ledger.
const MaxLedgerEntries = 200

// ZakatPaymentType is the type name whose ledger entries count against the
// annual obligation window.
const ZakatPaymentType = "Zakat"

// PaymentEntry is a single charitable payment. Type/Service/Recipient are
// stored as free text even when they do not appear in Settings; the
// Unknown* flags surface that mismatch without rejecting the entry.
// TotalPaid, RunningTotal and Position are derived on read.
type PaymentEntry struct {
	EntryID   string          `json:"entryID"`
	Date      time.Time       `json:"date"`
	Type      string          `json:"type"`
	Service   string          `json:"service"`
	Recipient string          `json:"recipient"`
	Notes     string          `json:"notes"`
	Amount    decimal.Decimal `json:"amount"`
	Fees      decimal.Decimal `json:"fees"`

	UnknownType      bool `json:"unknownType"`
	UnknownService   bool `json:"unknownService"`
	UnknownRecipient bool `json:"unknownRecipient"`

	Position     int             `json:"position"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`    // Amount + Fees
	RunningTotal decimal.Decimal `json:"runningTotal"` // positional prefix sum of TotalPaid
}

// SearchResult carries the outcome of a ledger substring search: which table
// positions matched (for row highlighting) and how many rows that is.
type SearchResult struct {
	Needle    string `json:"needle"`
	Positions []int  `json:"positions"`
	Count     int    `json:"count"`
}
