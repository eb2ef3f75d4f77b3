package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// PaymentRepository is the in-memory payment ledger. Append order is table
// order; nothing is ever reordered or removed.
type PaymentRepository struct {
	mu      sync.RWMutex
	entries []domain.PaymentEntry
}

// NewPaymentRepository creates an empty ledger.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// AppendEntry appends an entry at the next table position.
func (r *PaymentRepository) AppendEntry(ctx context.Context, entry domain.PaymentEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) >= domain.MaxLedgerEntries {
		return fmt.Errorf("%w: ledger holds %d entries", apperrors.ErrTableFull, domain.MaxLedgerEntries)
	}
	r.entries = append(r.entries, entry)
	return nil
}

// ListEntries returns every entry in table order.
func (r *PaymentRepository) ListEntries(ctx context.Context) ([]domain.PaymentEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
