package repositories

// RepositoryProvider bundles every table store so wiring code can pass one
// value around instead of four.
type RepositoryProvider struct {
	SettingsRepo SettingsRepositoryFacade
	AssetRepo    AssetLedgerRepositoryFacade
	ZakatRepo    ZakatYearRepositoryFacade
	PaymentRepo  PaymentRepositoryFacade
}
