package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// ZakatYearRepository stores the raw inputs of the annual summary table.
// Positions are fixed; unused positions stay blank.
type ZakatYearRepository struct {
	mu     sync.RWMutex
	inputs [domain.MaxZakatYearRecords]domain.ZakatYearInput
}

// NewZakatYearRepository creates an empty annual summary table.
func NewZakatYearRepository() *ZakatYearRepository {
	return &ZakatYearRepository{}
}

// UpsertInput stores the raw inputs for one table position.
func (r *ZakatYearRepository) UpsertInput(ctx context.Context, position int, input domain.ZakatYearInput) error {
	if position < 0 || position >= domain.MaxZakatYearRecords {
		return fmt.Errorf("%w: position %d outside [0,%d)", apperrors.ErrValidation, position, domain.MaxZakatYearRecords)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs[position] = input
	return nil
}

// ListInputs returns every position's inputs in table order.
func (r *ZakatYearRepository) ListInputs(ctx context.Context) ([]domain.ZakatYearInput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ZakatYearInput, len(r.inputs))
	copy(out, r.inputs[:])
	return out, nil
}
