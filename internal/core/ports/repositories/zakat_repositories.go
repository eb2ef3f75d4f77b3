package repositories

import (
	"context"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// ZakatYearReader defines read operations for the annual summary inputs.
type ZakatYearReader interface {
	// ListInputs returns the stored inputs of all positions, 0 through
	// domain.MaxZakatYearRecords-1. Unused positions come back blank.
	ListInputs(ctx context.Context) ([]domain.ZakatYearInput, error)
}

// ZakatYearWriter defines write operations for the annual summary inputs.
type ZakatYearWriter interface {
	// UpsertInput stores the raw inputs for one table position. Returns
	// apperrors.ErrValidation when the position is out of range.
	UpsertInput(ctx context.Context, position int, input domain.ZakatYearInput) error
}

// ZakatYearRepositoryFacade combines all zakat register repository interfaces.
type ZakatYearRepositoryFacade interface {
	ZakatYearReader
	ZakatYearWriter
}
