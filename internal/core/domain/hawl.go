package domain

import "time"

// HawlDays is the length of one lunar year, the qualifying period between
// zakat anniversaries.
const HawlDays = 354

// DueSoonWindowDays is how close the anniversary must be before the tracker
// switches to DUE_SOON.
const DueSoonWindowDays = 30

// HawlPhase is the countdown state toward the next zakat anniversary.
type HawlPhase string

const (
	HawlNoDates    HawlPhase = "NO_DATES" // register has no dated records yet
	HawlDueNow     HawlPhase = "DUE_NOW"
	HawlDueSoon    HawlPhase = "DUE_SOON"
	HawlInProgress HawlPhase = "IN_PROGRESS"
)

// HawlStatus is derived entirely from the zakat register's dates and the
// current day. All fields except Phase and Today are zero when no dates exist.
type HawlStatus struct {
	LastDate      time.Time `json:"lastDate"`
	NextDue       time.Time `json:"nextDue"` // LastDate + 354 days
	DaysRemaining int       `json:"daysRemaining"`
	Phase         HawlPhase `json:"phase"`
	Today         time.Time `json:"today"`
}
