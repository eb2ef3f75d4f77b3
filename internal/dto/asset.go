package dto

import (
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetSnapshotRequest stores the balances of every named account on one date.
type SetSnapshotRequest struct {
	Date     string                     `json:"date" binding:"required,dateformat"`
	Balances map[string]decimal.Decimal `json:"balances" binding:"required"`
}

// AssetSnapshotResponse is one dated snapshot with its derived total.
type AssetSnapshotResponse struct {
	Kind     string                     `json:"kind"`
	Date     *string                    `json:"date"`
	Balances map[string]decimal.Decimal `json:"balances"`
	Total    decimal.Decimal            `json:"total"`
}

// AssetTotalResponse is the exact-date total lookup result. Missing dates
// resolve to a zero total, not an error.
type AssetTotalResponse struct {
	Kind  string          `json:"kind"`
	Date  *string         `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// ToAssetSnapshotResponse converts a domain snapshot to a DTO response.
func ToAssetSnapshotResponse(s *domain.AssetSnapshot) AssetSnapshotResponse {
	return AssetSnapshotResponse{
		Kind:     string(s.Kind),
		Date:     FormatDate(s.Date),
		Balances: s.Balances,
		Total:    s.Total,
	}
}

// ToAssetSnapshotListResponse converts a snapshot list to DTO responses.
func ToAssetSnapshotListResponse(snapshots []domain.AssetSnapshot) []AssetSnapshotResponse {
	out := make([]AssetSnapshotResponse, len(snapshots))
	for i := range snapshots {
		out[i] = ToAssetSnapshotResponse(&snapshots[i])
	}
	return out
}
