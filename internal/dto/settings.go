package dto

import (
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetListRequest replaces one of the three reference lists.
type SetListRequest struct {
	Values []string `json:"values" binding:"required,max=30"`
}

// SetNisabRequest replaces the nisab weights in troy ounces.
type SetNisabRequest struct {
	GoldOz   decimal.Decimal `json:"goldOz" binding:"required"`
	SilverOz decimal.Decimal `json:"silverOz" binding:"required"`
}

// SettingsResponse is the full settings registry.
type SettingsResponse struct {
	Types         []string        `json:"types"`
	Services      []string        `json:"services"`
	Recipients    []string        `json:"recipients"`
	GoldNisabOz   decimal.Decimal `json:"goldNisabOz"`
	SilverNisabOz decimal.Decimal `json:"silverNisabOz"`
}

// NisabQuoteResponse is the live calculator result.
type NisabQuoteResponse struct {
	GoldPricePerOz   decimal.Decimal `json:"goldPricePerOz"`
	GoldThreshold    decimal.Decimal `json:"goldThreshold"`
	SilverPricePerOz decimal.Decimal `json:"silverPricePerOz"`
	SilverThreshold  decimal.Decimal `json:"silverThreshold"`
}

// ToSettingsResponse converts domain settings to a DTO response.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		Types:         s.Types,
		Services:      s.Services,
		Recipients:    s.Recipients,
		GoldNisabOz:   s.GoldNisabOz,
		SilverNisabOz: s.SilverNisabOz,
	}
}

// ToNisabQuoteResponse converts a domain nisab quote to a DTO response.
func ToNisabQuoteResponse(q *domain.NisabQuote) NisabQuoteResponse {
	return NisabQuoteResponse{
		GoldPricePerOz:   q.GoldPricePerOz,
		GoldThreshold:    q.GoldThreshold,
		SilverPricePerOz: q.SilverPricePerOz,
		SilverThreshold:  q.SilverThreshold,
	}
}
