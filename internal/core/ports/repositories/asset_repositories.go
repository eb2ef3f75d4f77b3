package repositories

import (
	"context"
	"time"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// AssetLedgerReader defines read operations for the asset snapshot tables.
type AssetLedgerReader interface {
	// ListSnapshots returns all snapshots of one ledger kind in insertion order.
	ListSnapshots(ctx context.Context, kind domain.AssetKind) ([]domain.AssetSnapshot, error)

	// FindSnapshotByDate returns the snapshot stored for an exact date, or
	// nil when none exists. A miss is not an error.
	FindSnapshotByDate(ctx context.Context, kind domain.AssetKind, date time.Time) (*domain.AssetSnapshot, error)
}

// AssetLedgerWriter defines write operations for the asset snapshot tables.
type AssetLedgerWriter interface {
	// SaveSnapshot inserts a snapshot, replacing any snapshot already stored
	// for the same date. Returns apperrors.ErrTableFull when the kind's table
	// has no free slot for a new date.
	SaveSnapshot(ctx context.Context, snapshot domain.AssetSnapshot) error
}

// AssetLedgerRepositoryFacade combines all asset ledger repository interfaces.
type AssetLedgerRepositoryFacade interface {
	AssetLedgerReader
	AssetLedgerWriter
}
