package repositories

import (
	"context"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// SettingsReader defines read operations for the settings registry.
type SettingsReader interface {
	// GetSettings returns the current settings registry.
	GetSettings(ctx context.Context) (domain.Settings, error)
}

// SettingsWriter defines write operations for the settings registry.
type SettingsWriter interface {
	// SaveSettings replaces the stored settings registry.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines all settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
