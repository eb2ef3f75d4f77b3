package dto

import (
	"strconv"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Placeholder renders wherever the workbook shows "—": aggregates of a report
// with no recipient selected.
const Placeholder = "—"

// AllYearsLabel is the wire value of the disabled year filter.
const AllYearsLabel = "All Years"

// ReportBreakdownRowResponse is one per-type breakdown row.
type ReportBreakdownRowResponse struct {
	Type  string `json:"type"`
	Total string `json:"total"` // amount, or the placeholder when no recipient is selected
}

// ReportDetailRowResponse is one row of the fixed 100-row detail window.
// Blank rows pad the window beyond the match count.
type ReportDetailRowResponse struct {
	Rank  int                   `json:"rank"`
	Blank bool                  `json:"blank"`
	Entry *PaymentEntryResponse `json:"entry,omitempty"`
}

// RecipientReportResponse is the person report: header aggregates, per-type
// breakdown in settings order, and the capped detail view.
type RecipientReportResponse struct {
	Recipient        string                       `json:"recipient"`
	YearFilter       string                       `json:"yearFilter"`
	TotalGiven       string                       `json:"totalGiven"`
	TransactionCount string                       `json:"transactionCount"`
	Breakdown        []ReportBreakdownRowResponse `json:"breakdown"`
	AllTypesTotal    string                       `json:"allTypesTotal"`
	Detail           []ReportDetailRowResponse    `json:"detail"`
}

// ServiceFeeRowResponse is one row of the all-time fee summary.
type ServiceFeeRowResponse struct {
	Service      string          `json:"service"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TotalFees    decimal.Decimal `json:"totalFees"`
	PaymentCount int             `json:"paymentCount"`
}

// ToRecipientReportResponse converts a domain report, substituting the
// placeholder for every aggregate when no recipient was selected.
func ToRecipientReportResponse(r *domain.RecipientReport) RecipientReportResponse {
	yearFilter := AllYearsLabel
	if r.Year != domain.AllYears {
		yearFilter = strconv.Itoa(r.Year)
	}

	breakdown := make([]ReportBreakdownRowResponse, len(r.Breakdown))
	for i, row := range r.Breakdown {
		breakdown[i] = ReportBreakdownRowResponse{
			Type:  row.Type,
			Total: amountOrPlaceholder(row.Total, r.HasRecipient),
		}
	}

	detail := make([]ReportDetailRowResponse, len(r.Detail))
	for i, row := range r.Detail {
		detail[i] = ReportDetailRowResponse{Rank: row.Rank, Blank: row.Blank}
		if !row.Blank {
			entry := ToPaymentEntryResponse(&row.Entry)
			detail[i].Entry = &entry
		}
	}

	count := Placeholder
	if r.HasRecipient {
		count = strconv.Itoa(r.TransactionCount)
	}

	return RecipientReportResponse{
		Recipient:        r.Recipient,
		YearFilter:       yearFilter,
		TotalGiven:       amountOrPlaceholder(r.TotalGiven, r.HasRecipient),
		TransactionCount: count,
		Breakdown:        breakdown,
		AllTypesTotal:    amountOrPlaceholder(r.AllTypesTotal, r.HasRecipient),
		Detail:           detail,
	}
}

// ToServiceFeeSummaryResponse converts the all-time fee summary rows.
func ToServiceFeeSummaryResponse(rows []domain.ServiceFeeRow) []ServiceFeeRowResponse {
	out := make([]ServiceFeeRowResponse, len(rows))
	for i, row := range rows {
		out[i] = ServiceFeeRowResponse{
			Service:      row.Service,
			TotalAmount:  row.TotalAmount,
			TotalFees:    row.TotalFees,
			PaymentCount: row.PaymentCount,
		}
	}
	return out
}

func amountOrPlaceholder(d decimal.Decimal, hasRecipient bool) string {
	if !hasRecipient {
		return Placeholder
	}
	return d.StringFixed(2)
}
