package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portsrepo "github.com/mzafran/zakat_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
)

// hawlService counts down to the next zakat anniversary from the register's
// most recent calculation date.
type hawlService struct {
	BaseService
	zakatRepo portsrepo.ZakatYearReader
	now       func() time.Time
}

var _ portssvc.HawlSvcFacade = (*hawlService)(nil)

// HawlServiceOption configures the hawl service.
type HawlServiceOption func(*hawlService)

// WithHawlClock overrides the clock, mainly for tests.
func WithHawlClock(now func() time.Time) HawlServiceOption {
	return func(s *hawlService) {
		s.now = now
	}
}

// NewHawlService creates the hawl tracking service.
func NewHawlService(zakatRepo portsrepo.ZakatYearReader, opts ...HawlServiceOption) portssvc.HawlSvcFacade {
	s := &hawlService{zakatRepo: zakatRepo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *hawlService) Status(ctx context.Context) (*domain.HawlStatus, error) {
	inputs, err := s.zakatRepo.ListInputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list summary inputs for hawl: %w", err)
	}

	today := truncateToDay(s.now())
	var last time.Time
	for i := range inputs {
		if !inputs[i].Blank() && inputs[i].Date.After(last) {
			last = inputs[i].Date
		}
	}
	if last.IsZero() {
		return &domain.HawlStatus{Phase: domain.HawlNoDates, Today: today}, nil
	}

	nextDue := last.AddDate(0, 0, domain.HawlDays)
	remaining := int(nextDue.Sub(today).Hours() / 24)

	// Due only once the anniversary has passed; the due date itself still
	// counts as due soon. The countdown never goes negative.
	phase := domain.HawlInProgress
	switch {
	case today.After(nextDue):
		phase = domain.HawlDueNow
	case remaining <= domain.DueSoonWindowDays:
		phase = domain.HawlDueSoon
	}
	if remaining < 0 {
		remaining = 0
	}

	return &domain.HawlStatus{
		LastDate:      last,
		NextDue:       nextDue,
		DaysRemaining: remaining,
		Phase:         phase,
		Today:         today,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
