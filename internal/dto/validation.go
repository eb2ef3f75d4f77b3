package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateFormat is the wire format for all dates.
const DateFormat = "2006-01-02"

// ValidateDateFormat backs the "dateformat" binding tag: the field must be
// empty or a parseable DateFormat date.
func ValidateDateFormat(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// ParseDate parses a wire date, mapping the empty string to the zero time
// ("blank" in record-table terms).
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateFormat, s)
}

// FormatDate renders a date in wire format; the zero time renders as nil so
// blank table cells stay blank in responses.
func FormatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(DateFormat)
	return &s
}
