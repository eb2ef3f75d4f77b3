package services

import (
	"context"

	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// HawlSvcFacade derives the countdown to the next zakat anniversary.
type HawlSvcFacade interface {
	// Status derives the hawl countdown from the register's dates and today.
	Status(ctx context.Context) (*domain.HawlStatus, error)
}
