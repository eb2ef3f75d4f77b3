package memory

import (
	"context"
	"sync"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// SettingsRepository is the in-memory settings registry. It starts seeded
// with the preset lists and default nisab weights.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsRepository creates a settings store seeded with defaults.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{settings: domain.DefaultSettings()}
}

// GetSettings returns a copy of the stored settings.
func (r *SettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySettings(r.settings), nil
}

// SaveSettings replaces the stored settings.
func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = copySettings(settings)
	return nil
}

func copySettings(s domain.Settings) domain.Settings {
	out := s
	out.Types = append([]string(nil), s.Types...)
	out.Services = append([]string(nil), s.Services...)
	out.Recipients = append([]string(nil), s.Recipients...)
	return out
}
