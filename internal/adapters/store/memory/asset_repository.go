package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetLedgerRepository holds the three asset snapshot tables. Each kind
// keeps at most domain.MaxAssetSnapshots dated snapshots; lookups by date go
// through a per-kind index instead of scanning.
type AssetLedgerRepository struct {
	mu     sync.RWMutex
	tables map[domain.AssetKind]*assetTable
}

type assetTable struct {
	snapshots []domain.AssetSnapshot
	byDate    map[string]int // date key -> snapshots index
}

// NewAssetLedgerRepository creates empty tables for all three ledger kinds.
func NewAssetLedgerRepository() *AssetLedgerRepository {
	return &AssetLedgerRepository{
		tables: map[domain.AssetKind]*assetTable{
			domain.AssetStocks: {byDate: map[string]int{}},
			domain.AssetCash:   {byDate: map[string]int{}},
			domain.AssetDebts:  {byDate: map[string]int{}},
		},
	}
}

// SaveSnapshot inserts or replaces the snapshot for the given date.
func (r *AssetLedgerRepository) SaveSnapshot(ctx context.Context, snapshot domain.AssetSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.tables[snapshot.Kind]
	if !ok {
		return fmt.Errorf("%w: unknown asset kind %q", apperrors.ErrValidation, snapshot.Kind)
	}

	key := dateKey(snapshot.Date)
	if idx, exists := table.byDate[key]; exists {
		table.snapshots[idx] = copySnapshot(snapshot)
		return nil
	}
	if len(table.snapshots) >= domain.MaxAssetSnapshots {
		return fmt.Errorf("%w: %s ledger holds %d snapshots", apperrors.ErrTableFull, snapshot.Kind, domain.MaxAssetSnapshots)
	}
	table.byDate[key] = len(table.snapshots)
	table.snapshots = append(table.snapshots, copySnapshot(snapshot))
	return nil
}

// ListSnapshots returns one kind's snapshots in insertion order.
func (r *AssetLedgerRepository) ListSnapshots(ctx context.Context, kind domain.AssetKind) ([]domain.AssetSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown asset kind %q", apperrors.ErrValidation, kind)
	}
	out := make([]domain.AssetSnapshot, len(table.snapshots))
	for i, s := range table.snapshots {
		out[i] = copySnapshot(s)
	}
	return out, nil
}

// FindSnapshotByDate returns the exact-date snapshot or nil on a miss.
func (r *AssetLedgerRepository) FindSnapshotByDate(ctx context.Context, kind domain.AssetKind, date time.Time) (*domain.AssetSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown asset kind %q", apperrors.ErrValidation, kind)
	}
	idx, exists := table.byDate[dateKey(date)]
	if !exists {
		return nil, nil
	}
	s := copySnapshot(table.snapshots[idx])
	return &s, nil
}

func copySnapshot(s domain.AssetSnapshot) domain.AssetSnapshot {
	out := s
	out.Balances = make(map[string]decimal.Decimal, len(s.Balances))
	for name, bal := range s.Balances {
		out.Balances[name] = bal
	}
	return out
}

func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
