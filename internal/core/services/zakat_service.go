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

// zakatService derives the annual summary register. Only the per-row date and
// gold inputs are stored; every other column is recomputed from the asset
// ledgers, the payment ledger and the settings on each read, so the register
// can never drift out of sync with its sources.
type zakatService struct {
	BaseService
	zakatRepo    portsrepo.ZakatYearRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	assetSvc     portssvc.AssetReaderSvc
	paymentSvc   portssvc.PaymentReaderSvc
}

var _ portssvc.ZakatSvcFacade = (*zakatService)(nil)

// NewZakatService creates the annual summary service.
func NewZakatService(
	zakatRepo portsrepo.ZakatYearRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	assetSvc portssvc.AssetReaderSvc,
	paymentSvc portssvc.PaymentReaderSvc,
) portssvc.ZakatSvcFacade {
	return &zakatService{
		zakatRepo:    zakatRepo,
		settingsRepo: settingsRepo,
		assetSvc:     assetSvc,
		paymentSvc:   paymentSvc,
	}
}

func (s *zakatService) UpsertRecord(ctx context.Context, position int, date time.Time, goldPrice, goldOz decimal.Decimal) error {
	if goldPrice.IsNegative() || goldOz.IsNegative() {
		return fmt.Errorf("%w: gold price and weight must not be negative", apperrors.ErrValidation)
	}
	input := domain.ZakatYearInput{Date: date, GoldPricePerOz: goldPrice, GoldOz: goldOz}
	if err := s.zakatRepo.UpsertInput(ctx, position, input); err != nil {
		return fmt.Errorf("failed to store summary inputs: %w", err)
	}
	s.LogInfo(ctx, "zakat year inputs stored", "position", position, "date", date.Format(time.DateOnly))
	return nil
}

func (s *zakatService) Recompute(ctx context.Context, position int) (*domain.ZakatYearRecord, error) {
	if position < 0 || position >= domain.MaxZakatYearRecords {
		return nil, fmt.Errorf("%w: position %d out of range", apperrors.ErrValidation, position)
	}
	records, err := s.deriveAll(ctx)
	if err != nil {
		return nil, err
	}
	return &records[position], nil
}

func (s *zakatService) AllRecords(ctx context.Context) ([]domain.ZakatYearRecord, error) {
	return s.deriveAll(ctx)
}

func (s *zakatService) Dashboard(ctx context.Context) (*domain.ZakatDashboard, error) {
	records, err := s.deriveAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for dashboard: %w", err)
	}
	entries, err := s.paymentSvc.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for dashboard: %w", err)
	}

	totalOwed := decimal.Zero
	for i := range records {
		if records[i].ZakatDue.Sign() > 0 {
			totalOwed = totalOwed.Add(records[i].ZakatDue)
		}
	}

	zakatPaid := decimal.Zero
	paidByType := make([]domain.TypeAmount, 0, len(settings.Types))
	for _, typeName := range settings.Types {
		total := decimal.Zero
		for i := range entries {
			if entries[i].Type == typeName {
				total = total.Add(entries[i].TotalPaid)
			}
		}
		if typeName == domain.ZakatPaymentType {
			zakatPaid = total
		}
		paidByType = append(paidByType, domain.TypeAmount{Type: typeName, Total: total})
	}

	return &domain.ZakatDashboard{
		TotalOwed:          totalOwed,
		PaidByType:         paidByType,
		OutstandingBalance: totalOwed.Sub(zakatPaid),
	}, nil
}

// deriveAll evaluates the full recurrence chain in position order. Each dated
// row pulls its asset totals by exact date, sums the Zakat-type payments that
// fall inside its period window and folds the immediately previous row's
// running balance into its own. A blank row breaks the chain: the next dated
// row starts from zero and its payment window loses its lower bound.
func (s *zakatService) deriveAll(ctx context.Context) ([]domain.ZakatYearRecord, error) {
	inputs, err := s.zakatRepo.ListInputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list summary inputs: %w", err)
	}
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for summary: %w", err)
	}
	entries, err := s.paymentSvc.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for summary: %w", err)
	}

	records := make([]domain.ZakatYearRecord, len(inputs))

	for i, input := range inputs {
		rec := &records[i]
		rec.Position = i
		if input.Blank() {
			continue
		}

		rec.Date = input.Date
		rec.GoldPricePerOz = input.GoldPricePerOz
		rec.GoldOz = input.GoldOz
		rec.DuplicateDate = dateCount(inputs, input.Date) > 1

		if rec.StockTotal, err = s.assetSvc.TotalFor(ctx, domain.AssetStocks, input.Date); err != nil {
			return nil, err
		}
		if rec.CashTotal, err = s.assetSvc.TotalFor(ctx, domain.AssetCash, input.Date); err != nil {
			return nil, err
		}
		if rec.DebtTotal, err = s.assetSvc.TotalFor(ctx, domain.AssetDebts, input.Date); err != nil {
			return nil, err
		}

		rec.GoldValue = input.GoldPricePerOz.Mul(input.GoldOz)
		rec.NetAssets = rec.StockTotal.Add(rec.CashTotal).Add(rec.GoldValue).Sub(rec.DebtTotal)
		rec.NisabThreshold = input.GoldPricePerOz.Mul(settings.GoldNisabOz)
		if rec.NetAssets.GreaterThanOrEqual(rec.NisabThreshold) {
			rec.ZakatDue = rec.NetAssets.Mul(domain.ZakatRate)
		} else {
			rec.ZakatDue = decimal.Zero
		}

		hasPrev := i > 0 && !inputs[i-1].Blank()
		prevRunning := decimal.Zero
		var prevDate time.Time
		if hasPrev {
			prevRunning = records[i-1].RunningBalance
			prevDate = inputs[i-1].Date
		}

		rec.PaidThisPeriod = sumZakatPaidInWindow(entries, prevDate, input.Date, hasPrev)
		rec.RunningBalance = prevRunning.Add(rec.ZakatDue).Sub(rec.PaidThisPeriod)
		if hasPrev && prevRunning.Sign() > 0 {
			rec.BroughtForward = prevRunning
		} else {
			rec.BroughtForward = decimal.Zero
		}

		switch {
		case rec.ZakatDue.Sign() <= 0:
			rec.Status = domain.StatusNotApplicable
		case rec.RunningBalance.Sign() <= 0:
			rec.Status = domain.StatusPaidInFull
		case rec.PaidThisPeriod.Sign() == 0:
			rec.Status = domain.StatusNotStarted
		default:
			rec.Status = domain.StatusPartiallyPaid
		}
	}
	return records, nil
}

// sumZakatPaidInWindow totals Zakat-type payments with a date in
// (prevDate, thisDate]. When the row directly above is blank the lower bound
// opens up and every payment on or before thisDate counts.
func sumZakatPaidInWindow(entries []domain.PaymentEntry, prevDate, thisDate time.Time, hasPrev bool) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		e := &entries[i]
		if e.Type != domain.ZakatPaymentType || e.Date.IsZero() || e.Date.After(thisDate) {
			continue
		}
		if hasPrev && !e.Date.After(prevDate) {
			continue
		}
		total = total.Add(e.TotalPaid)
	}
	return total
}

func dateCount(inputs []domain.ZakatYearInput, date time.Time) int {
	n := 0
	for i := range inputs {
		if !inputs[i].Blank() && inputs[i].Date.Equal(date) {
			n++
		}
	}
	return n
}
