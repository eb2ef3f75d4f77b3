package dto

import (
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertZakatRecordRequest stores the manual inputs of one summary position.
// An empty date blanks the row.
type UpsertZakatRecordRequest struct {
	Date           string          `json:"date" binding:"omitempty,dateformat"`
	GoldPricePerOz decimal.Decimal `json:"goldPricePerOz"`
	GoldOz         decimal.Decimal `json:"goldOz"`
}

// ZakatYearRecordResponse is one fully derived summary row. Rows without a
// date carry a null date and an empty status; their derived amounts are zero.
type ZakatYearRecordResponse struct {
	Position       int             `json:"position"`
	Date           *string         `json:"date"`
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
	Status         string          `json:"status"`
	BroughtForward decimal.Decimal `json:"broughtForward"`
	DuplicateDate  bool            `json:"duplicateDate"`
}

// ZakatDashboardResponse is the register-wide aggregate block.
type ZakatDashboardResponse struct {
	TotalOwed          decimal.Decimal      `json:"totalOwed"`
	PaidByType         []TypeAmountResponse `json:"paidByType"`
	OutstandingBalance decimal.Decimal      `json:"outstandingBalance"`
}

// TypeAmountResponse pairs a payment type with a summed amount.
type TypeAmountResponse struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// ToZakatYearRecordResponse converts a derived record to a DTO response.
func ToZakatYearRecordResponse(r *domain.ZakatYearRecord) ZakatYearRecordResponse {
	return ZakatYearRecordResponse{
		Position:       r.Position,
		Date:           FormatDate(r.Date),
		StockTotal:     r.StockTotal,
		CashTotal:      r.CashTotal,
		DebtTotal:      r.DebtTotal,
		GoldPricePerOz: r.GoldPricePerOz,
		GoldOz:         r.GoldOz,
		GoldValue:      r.GoldValue,
		NetAssets:      r.NetAssets,
		NisabThreshold: r.NisabThreshold,
		ZakatDue:       r.ZakatDue,
		PaidThisPeriod: r.PaidThisPeriod,
		RunningBalance: r.RunningBalance,
		Status:         string(r.Status),
		BroughtForward: r.BroughtForward,
		DuplicateDate:  r.DuplicateDate,
	}
}

// ToZakatYearRecordListResponse converts all derived records.
func ToZakatYearRecordListResponse(records []domain.ZakatYearRecord) []ZakatYearRecordResponse {
	out := make([]ZakatYearRecordResponse, len(records))
	for i := range records {
		out[i] = ToZakatYearRecordResponse(&records[i])
	}
	return out
}

// ToZakatDashboardResponse converts the dashboard aggregate.
func ToZakatDashboardResponse(d *domain.ZakatDashboard) ZakatDashboardResponse {
	rows := make([]TypeAmountResponse, len(d.PaidByType))
	for i, row := range d.PaidByType {
		rows[i] = TypeAmountResponse{Type: row.Type, Total: row.Total}
	}
	return ZakatDashboardResponse{
		TotalOwed:          d.TotalOwed,
		PaidByType:         rows,
		OutstandingBalance: d.OutstandingBalance,
	}
}
