package services

import (
	"context"
	"time"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ZakatReaderSvc defines read operations for the annual summary register.
type ZakatReaderSvc interface {
	// Recompute derives one record from the canonical tables. The whole
	// recurrence chain is evaluated so the record's carry fields are correct.
	Recompute(ctx context.Context, position int) (*domain.ZakatYearRecord, error)

	// AllRecords derives every record in position order.
	AllRecords(ctx context.Context) ([]domain.ZakatYearRecord, error)

	// Dashboard aggregates total owed, per-type paid totals and the
	// outstanding balance across the register and the whole ledger.
	Dashboard(ctx context.Context) (*domain.ZakatDashboard, error)
}

// ZakatWriterSvc defines write operations for the annual summary register.
type ZakatWriterSvc interface {
	// UpsertRecord stores the manual inputs of one table position.
	UpsertRecord(ctx context.Context, position int, date time.Time, goldPrice, goldOz decimal.Decimal) error
}

// ZakatSvcFacade combines all zakat register service interfaces.
type ZakatSvcFacade interface {
	ZakatReaderSvc
	ZakatWriterSvc
}
