package dto

import (
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AppendPaymentRequest records one charitable payment. Amount and fees must
// be non-negative; the service rejects negatives before anything is stored.
type AppendPaymentRequest struct {
	Date      string          `json:"date" binding:"required,dateformat"`
	Type      string          `json:"type" binding:"required"`
	Service   string          `json:"service"`
	Recipient string          `json:"recipient" binding:"required"`
	Notes     string          `json:"notes"`
	Amount    decimal.Decimal `json:"amount"`
	Fees      decimal.Decimal `json:"fees"`
}

// PaymentEntryResponse is one ledger row with its derived totals.
type PaymentEntryResponse struct {
	EntryID          string          `json:"entryID"`
	Position         int             `json:"position"`
	Date             *string         `json:"date"`
	Type             string          `json:"type"`
	Service          string          `json:"service"`
	Recipient        string          `json:"recipient"`
	Notes            string          `json:"notes"`
	Amount           decimal.Decimal `json:"amount"`
	Fees             decimal.Decimal `json:"fees"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	RunningTotal     decimal.Decimal `json:"runningTotal"`
	UnknownType      bool            `json:"unknownType"`
	UnknownService   bool            `json:"unknownService"`
	UnknownRecipient bool            `json:"unknownRecipient"`
}

// SearchResponse is the ledger search outcome: match count plus the matching
// table positions for highlighting.
type SearchResponse struct {
	Needle    string `json:"needle"`
	Count     int    `json:"count"`
	Positions []int  `json:"positions"`
}

// ToPaymentEntryResponse converts a ledger entry to a DTO response.
func ToPaymentEntryResponse(e *domain.PaymentEntry) PaymentEntryResponse {
	return PaymentEntryResponse{
		EntryID:          e.EntryID,
		Position:         e.Position,
		Date:             FormatDate(e.Date),
		Type:             e.Type,
		Service:          e.Service,
		Recipient:        e.Recipient,
		Notes:            e.Notes,
		Amount:           e.Amount,
		Fees:             e.Fees,
		TotalPaid:        e.TotalPaid,
		RunningTotal:     e.RunningTotal,
		UnknownType:      e.UnknownType,
		UnknownService:   e.UnknownService,
		UnknownRecipient: e.UnknownRecipient,
	}
}

// ToPaymentEntryListResponse converts the ledger in table order.
func ToPaymentEntryListResponse(entries []domain.PaymentEntry) []PaymentEntryResponse {
	out := make([]PaymentEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToPaymentEntryResponse(&entries[i])
	}
	return out
}

// ToSearchResponse converts a domain search result.
func ToSearchResponse(r *domain.SearchResult) SearchResponse {
	return SearchResponse{Needle: r.Needle, Count: r.Count, Positions: r.Positions}
}
