package repositories

import (
	"context"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// PaymentReader defines read operations for the payment ledger.
type PaymentReader interface {
	// ListEntries returns every ledger entry in table (insertion) order.
	ListEntries(ctx context.Context) ([]domain.PaymentEntry, error)
}

// PaymentWriter defines write operations for the payment ledger.
type PaymentWriter interface {
	// AppendEntry appends an entry at the next table position. Returns
	// apperrors.ErrTableFull when the ledger already holds
	// domain.MaxLedgerEntries entries.
	AppendEntry(ctx context.Context, entry domain.PaymentEntry) error
}

// PaymentRepositoryFacade combines all payment ledger repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
