package services

import (
	"context"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// ReportSvcFacade aggregates the payment ledger into per-person reports.
type ReportSvcFacade interface {
	// Query aggregates entries for one recipient under an optional year
	// filter (domain.AllYears disables it). An empty recipient yields
	// placeholder aggregates; an unknown one yields zeros, never an error.
	Query(ctx context.Context, recipient string, year int) (*domain.RecipientReport, error)

	// ServiceFeeSummary sums amounts, fees and counts per configured service
	// over the whole ledger, independent of any report filter.
	ServiceFeeSummary(ctx context.Context) ([]domain.ServiceFeeRow, error)

	// Recipients lists distinct ledger recipients in first-appearance order.
	Recipients(ctx context.Context) ([]string, error)

	// Years lists distinct ledger years in ascending order.
	Years(ctx context.Context) ([]int, error)
}
