package services

import (
	portsrepo "github.com/mzafran/zakat_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, hawlOpts ...HawlServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings, assets and payments have no service dependencies; the zakat
	// register reads through all three.
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Asset = NewAssetService(repos.AssetRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.SettingsRepo)

	container.Zakat = NewZakatService(repos.ZakatRepo, repos.SettingsRepo, container.Asset, container.Payment)
	container.Hawl = NewHawlService(repos.ZakatRepo, hawlOpts...)
	container.Report = NewReportService(repos.SettingsRepo, container.Payment)

	return container
}
