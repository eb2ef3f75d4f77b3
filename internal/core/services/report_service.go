package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portsrepo "github.com/mzafran/zakat_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportService aggregates the payment ledger into per-recipient reports and
// the ledger-wide service fee summary.
type reportService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	paymentSvc   portssvc.PaymentReaderSvc
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// NewReportService creates the reporting service.
func NewReportService(settingsRepo portsrepo.SettingsRepositoryFacade, paymentSvc portssvc.PaymentReaderSvc) portssvc.ReportSvcFacade {
	return &reportService{settingsRepo: settingsRepo, paymentSvc: paymentSvc}
}

func (s *reportService) Query(ctx context.Context, recipient string, year int) (*domain.RecipientReport, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for report: %w", err)
	}
	entries, err := s.paymentSvc.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for report: %w", err)
	}

	report := &domain.RecipientReport{
		Recipient:    recipient,
		Year:         year,
		HasRecipient: recipient != "",
		TotalGiven:   decimal.Zero,
		Detail:       make([]domain.ReportDetailRow, domain.ReportDetailWindow),
	}
	for i := range report.Detail {
		report.Detail[i].Blank = true
		report.Detail[i].Rank = i + 1
	}

	var matches []domain.PaymentEntry
	if report.HasRecipient {
		for i := range entries {
			e := entries[i]
			if e.Recipient != recipient {
				continue
			}
			if year != domain.AllYears && e.Date.Year() != year {
				continue
			}
			matches = append(matches, e)
		}
	}

	allTypesTotal := decimal.Zero
	report.Breakdown = make([]domain.TypeBreakdownRow, 0, len(settings.Types))
	for _, typeName := range settings.Types {
		total := decimal.Zero
		for i := range matches {
			if matches[i].Type == typeName {
				total = total.Add(matches[i].TotalPaid)
			}
		}
		allTypesTotal = allTypesTotal.Add(total)
		report.Breakdown = append(report.Breakdown, domain.TypeBreakdownRow{Type: typeName, Total: total})
	}
	report.AllTypesTotal = allTypesTotal

	for i := range matches {
		report.TotalGiven = report.TotalGiven.Add(matches[i].TotalPaid)
	}
	report.TransactionCount = len(matches)

	for i := 0; i < len(matches) && i < domain.ReportDetailWindow; i++ {
		report.Detail[i].Blank = false
		report.Detail[i].Entry = matches[i]
	}
	return report, nil
}

func (s *reportService) ServiceFeeSummary(ctx context.Context) ([]domain.ServiceFeeRow, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for fee summary: %w", err)
	}
	entries, err := s.paymentSvc.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for fee summary: %w", err)
	}

	rows := make([]domain.ServiceFeeRow, 0, len(settings.Services))
	for _, serviceName := range settings.Services {
		row := domain.ServiceFeeRow{
			Service:     serviceName,
			TotalAmount: decimal.Zero,
			TotalFees:   decimal.Zero,
		}
		for i := range entries {
			if entries[i].Service != serviceName {
				continue
			}
			row.TotalAmount = row.TotalAmount.Add(entries[i].Amount)
			row.TotalFees = row.TotalFees.Add(entries[i].Fees)
			row.PaymentCount++
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *reportService) Recipients(ctx context.Context) ([]string, error) {
	entries, err := s.paymentSvc.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for recipients: %w", err)
	}
	seen := make(map[string]bool, len(entries))
	recipients := make([]string, 0, len(entries))
	for i := range entries {
		name := entries[i].Recipient
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		recipients = append(recipients, name)
	}
	return recipients, nil
}

func (s *reportService) Years(ctx context.Context) ([]int, error) {
	entries, err := s.paymentSvc.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for years: %w", err)
	}
	seen := make(map[int]bool, len(entries))
	years := make([]int, 0, len(entries))
	for i := range entries {
		if entries[i].Date.IsZero() {
			continue
		}
		y := entries[i].Date.Year()
		if seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}
