package dto

import (
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
)

// HawlStatusResponse is the anniversary countdown. Dates are null until the
// register holds at least one dated record.
type HawlStatusResponse struct {
	LastDate      *string `json:"lastDate"`
	NextDue       *string `json:"nextDue"`
	DaysRemaining int     `json:"daysRemaining"`
	Phase         string  `json:"phase"`
	Today         *string `json:"today"`
}

// ToHawlStatusResponse converts a domain hawl status.
func ToHawlStatusResponse(s *domain.HawlStatus) HawlStatusResponse {
	return HawlStatusResponse{
		LastDate:      FormatDate(s.LastDate),
		NextDue:       FormatDate(s.NextDue),
		DaysRemaining: s.DaysRemaining,
		Phase:         string(s.Phase),
		Today:         FormatDate(s.Today),
	}
}
