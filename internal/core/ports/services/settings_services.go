package services

import (
	"context"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingsReaderSvc defines read operations for the settings registry.
type SettingsReaderSvc interface {
	// GetSettings retrieves the current settings registry.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// NisabQuote computes today's nisab thresholds for the given spot prices
	// without storing anything. A zero price yields a zero threshold.
	NisabQuote(ctx context.Context, goldPrice, silverPrice decimal.Decimal) (*domain.NisabQuote, error)
}

// SettingsWriterSvc defines write operations for the settings registry.
type SettingsWriterSvc interface {
	// SetTypes replaces the payment type list, preserving order.
	SetTypes(ctx context.Context, types []string) (*domain.Settings, error)

	// SetServices replaces the transfer service list, preserving order.
	SetServices(ctx context.Context, services []string) (*domain.Settings, error)

	// SetRecipients replaces the recipient list, preserving order.
	SetRecipients(ctx context.Context, recipients []string) (*domain.Settings, error)

	// SetNisabOz replaces the gold and silver nisab weights (troy ounces).
	SetNisabOz(ctx context.Context, goldOz, silverOz decimal.Decimal) (*domain.Settings, error)
}

// SettingsSvcFacade combines all settings-related service interfaces.
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
