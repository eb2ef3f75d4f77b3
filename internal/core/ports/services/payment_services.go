package services

import (
	"context"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// PaymentReaderSvc defines read operations for the payment ledger.
type PaymentReaderSvc interface {
	// ListEntries returns every entry in table order with derived totals.
	ListEntries(ctx context.Context) ([]domain.PaymentEntry, error)

	// RunningTotal returns the positional prefix sum at one table position.
	RunningTotal(ctx context.Context, position int) (decimal.Decimal, error)

	// Search matches the needle case-insensitively against recipient, notes
	// and type. An empty needle matches every entry.
	Search(ctx context.Context, needle string) (*domain.SearchResult, error)
}

// PaymentWriterSvc defines write operations for the payment ledger.
type PaymentWriterSvc interface {
	// AppendEntry validates and appends a payment at the next table position.
	AppendEntry(ctx context.Context, req dto.AppendPaymentRequest) (*domain.PaymentEntry, error)
}

// PaymentSvcFacade combines all payment ledger service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
