package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portsrepo "github.com/mzafran/zakat_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// paymentService manages the payment ledger. Entries are stored raw; the
// positional derived columns and the unknown-reference flags are computed
// against the current settings on every read.
type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// NewPaymentService creates the payment ledger service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, settingsRepo: settingsRepo}
}

func (s *paymentService) ListEntries(ctx context.Context) ([]domain.PaymentEntry, error) {
	entries, err := s.paymentRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for ledger decoration: %w", err)
	}
	s.decorate(entries, settings)
	return entries, nil
}

func (s *paymentService) RunningTotal(ctx context.Context, position int) (decimal.Decimal, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if position < 0 || position >= len(entries) {
		return decimal.Zero, fmt.Errorf("%w: no ledger entry at position %d", apperrors.ErrNotFound, position)
	}
	return entries[position].RunningTotal, nil
}

func (s *paymentService) Search(ctx context.Context, needle string) (*domain.SearchResult, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	lowered := strings.ToLower(needle)
	positions := make([]int, 0, len(entries))
	for i := range entries {
		if lowered == "" || entryMatches(&entries[i], lowered) {
			positions = append(positions, i)
		}
	}
	return &domain.SearchResult{
		Needle:    needle,
		Positions: positions,
		Count:     len(positions),
	}, nil
}

func (s *paymentService) AppendEntry(ctx context.Context, req dto.AppendPaymentRequest) (*domain.PaymentEntry, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: payment date is required", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if req.Fees.IsNegative() {
		return nil, fmt.Errorf("%w: fees must not be negative", apperrors.ErrValidation)
	}

	entry := domain.PaymentEntry{
		EntryID:   uuid.NewString(),
		Date:      date,
		Type:      strings.TrimSpace(req.Type),
		Service:   strings.TrimSpace(req.Service),
		Recipient: strings.TrimSpace(req.Recipient),
		Notes:     req.Notes,
		Amount:    req.Amount,
		Fees:      req.Fees,
	}
	if entry.Type == "" || entry.Recipient == "" {
		return nil, fmt.Errorf("%w: type and recipient are required", apperrors.ErrValidation)
	}
	if err := s.paymentRepo.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	stored := entries[len(entries)-1]
	s.LogInfo(ctx, "payment recorded",
		"entry_id", stored.EntryID,
		"type", stored.Type,
		"recipient", stored.Recipient,
		"total_paid", stored.TotalPaid.String())
	return &stored, nil
}

// decorate fills the read-derived columns in place: table position, the
// amount+fees total, the positional prefix sum and the unknown-reference
// flags against the current settings lists.
func (s *paymentService) decorate(entries []domain.PaymentEntry, settings domain.Settings) {
	running := decimal.Zero
	for i := range entries {
		e := &entries[i]
		e.Position = i
		e.TotalPaid = e.Amount.Add(e.Fees)
		running = running.Add(e.TotalPaid)
		e.RunningTotal = running
		e.UnknownType = e.Type != "" && !containsString(settings.Types, e.Type)
		e.UnknownService = e.Service != "" && !containsString(settings.Services, e.Service)
		e.UnknownRecipient = e.Recipient != "" && !containsString(settings.Recipients, e.Recipient)
	}
}

func entryMatches(e *domain.PaymentEntry, lowered string) bool {
	return strings.Contains(strings.ToLower(e.Recipient), lowered) ||
		strings.Contains(strings.ToLower(e.Notes), lowered) ||
		strings.Contains(strings.ToLower(e.Type), lowered)
}
