package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portsrepo "github.com/mzafran/zakat_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// assetService manages the three dated snapshot ledgers (stocks, cash, debts).
type assetService struct {
	BaseService
	assetRepo portsrepo.AssetLedgerRepositoryFacade
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// NewAssetService creates the asset ledger service.
func NewAssetService(assetRepo portsrepo.AssetLedgerRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

func (s *assetService) TotalFor(ctx context.Context, kind domain.AssetKind, date time.Time) (decimal.Decimal, error) {
	if date.IsZero() {
		return decimal.Zero, nil
	}
	snapshot, err := s.assetRepo.FindSnapshotByDate(ctx, kind, date)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to look up %s snapshot: %w", kind, err)
	}
	if snapshot == nil {
		return decimal.Zero, nil
	}
	return snapshot.Total, nil
}

func (s *assetService) ListSnapshots(ctx context.Context, kind domain.AssetKind) ([]domain.AssetSnapshot, error) {
	snapshots, err := s.assetRepo.ListSnapshots(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s snapshots: %w", kind, err)
	}
	if snapshots == nil {
		return []domain.AssetSnapshot{}, nil
	}
	return snapshots, nil
}

func (s *assetService) SetSnapshot(ctx context.Context, kind domain.AssetKind, date time.Time, balances map[string]decimal.Decimal) (*domain.AssetSnapshot, error) {
	accounts, ok := domain.AssetAccounts()[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown asset kind %q", apperrors.ErrValidation, kind)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: snapshot date is required", apperrors.ErrValidation)
	}

	total := decimal.Zero
	stored := make(map[string]decimal.Decimal, len(balances))
	for name, balance := range balances {
		if !containsString(accounts, name) {
			return nil, fmt.Errorf("%w: %q is not a %s account", apperrors.ErrValidation, name, kind)
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("%w: balance for %q must not be negative", apperrors.ErrValidation, name)
		}
		stored[name] = balance
		total = total.Add(balance)
	}

	snapshot := domain.AssetSnapshot{
		Kind:     kind,
		Date:     date,
		Balances: stored,
		Total:    total,
	}
	if err := s.assetRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save %s snapshot: %w", kind, err)
	}
	s.LogInfo(ctx, "asset snapshot saved", "kind", string(kind), "date", date.Format(time.DateOnly), "total", total.String())
	return &snapshot, nil
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
