package memory

import (
	portsrepo "github.com/mzafran/zakat_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires a complete set of in-memory table stores.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SettingsRepo: NewSettingsRepository(),
		AssetRepo:    NewAssetLedgerRepository(),
		ZakatRepo:    NewZakatYearRepository(),
		PaymentRepo:  NewPaymentRepository(),
	}
}
