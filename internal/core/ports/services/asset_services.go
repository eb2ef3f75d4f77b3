package services

import (
	"context"
	"time"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetReaderSvc defines read operations for the asset ledgers.
type AssetReaderSvc interface {
	// TotalFor returns the snapshot total for an exact date, or zero when no
	// snapshot exists for that date. A miss is never an error.
	TotalFor(ctx context.Context, kind domain.AssetKind, date time.Time) (decimal.Decimal, error)

	// ListSnapshots returns one kind's snapshots in insertion order.
	ListSnapshots(ctx context.Context, kind domain.AssetKind) ([]domain.AssetSnapshot, error)
}

// AssetWriterSvc defines write operations for the asset ledgers.
type AssetWriterSvc interface {
	// SetSnapshot stores the named account balances for one date, replacing
	// any snapshot already held for that date.
	SetSnapshot(ctx context.Context, kind domain.AssetKind, date time.Time, balances map[string]decimal.Decimal) (*domain.AssetSnapshot, error)
}

// AssetSvcFacade combines all asset ledger service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
