package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portsrepo "github.com/mzafran/zakat_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// settingsService implements the settings registry on top of a settings store.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// NewSettingsService creates the settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

func (s *settingsService) NisabQuote(ctx context.Context, goldPrice, silverPrice decimal.Decimal) (*domain.NisabQuote, error) {
	if goldPrice.IsNegative() || silverPrice.IsNegative() {
		return nil, fmt.Errorf("%w: spot prices must not be negative", apperrors.ErrValidation)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for nisab quote: %w", err)
	}
	return &domain.NisabQuote{
		GoldPricePerOz:   goldPrice,
		GoldThreshold:    goldPrice.Mul(settings.GoldNisabOz),
		SilverPricePerOz: silverPrice,
		SilverThreshold:  silverPrice.Mul(settings.SilverNisabOz),
	}, nil
}

func (s *settingsService) SetTypes(ctx context.Context, types []string) (*domain.Settings, error) {
	return s.replaceList(ctx, types, func(settings *domain.Settings, list []string) {
		settings.Types = list
	})
}

func (s *settingsService) SetServices(ctx context.Context, services []string) (*domain.Settings, error) {
	return s.replaceList(ctx, services, func(settings *domain.Settings, list []string) {
		settings.Services = list
	})
}

func (s *settingsService) SetRecipients(ctx context.Context, recipients []string) (*domain.Settings, error) {
	return s.replaceList(ctx, recipients, func(settings *domain.Settings, list []string) {
		settings.Recipients = list
	})
}

func (s *settingsService) SetNisabOz(ctx context.Context, goldOz, silverOz decimal.Decimal) (*domain.Settings, error) {
	if goldOz.Sign() <= 0 || silverOz.Sign() <= 0 {
		return nil, fmt.Errorf("%w: nisab weights must be positive", apperrors.ErrValidation)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	settings.GoldNisabOz = goldOz
	settings.SilverNisabOz = silverOz
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save nisab weights: %w", err)
	}
	s.LogInfo(ctx, "nisab weights updated", "gold_oz", goldOz.String(), "silver_oz", silverOz.String())
	return &settings, nil
}

// replaceList trims, drops blank slots, enforces the slot cap and stores the
// modified settings.
func (s *settingsService) replaceList(ctx context.Context, items []string, assign func(*domain.Settings, []string)) (*domain.Settings, error) {
	list := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		list = append(list, item)
	}
	if len(list) > domain.MaxSettingsSlots {
		return nil, fmt.Errorf("%w: at most %d entries allowed", apperrors.ErrTableFull, domain.MaxSettingsSlots)
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	assign(&settings, list)
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}
