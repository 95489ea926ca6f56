package dto

import (
	"time"

	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResponse defines the data returned for a single currency quote.
type RateResponse struct {
	ID        string          `json:"id"`
	NumCode   string          `json:"numCode"`
	CharCode  string          `json:"charCode"`
	Nominal   int             `json:"nominal"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	VUnitRate decimal.Decimal `json:"vunitRate"`
	Date      string          `json:"date"` // YYYY-MM-DD
}

// TriggerSyncRequest defines the optional body of a manual sync trigger.
// Date defaults to today when omitted.
type TriggerSyncRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// TriggerSyncResponse reports the outcome of a manual sync trigger.
type TriggerSyncResponse struct {
	Date string `json:"date"`
}

// ToRateResponse converts a domain.Rate to its API representation.
func ToRateResponse(r *domain.Rate) RateResponse {
	return RateResponse{
		ID:        r.ID,
		NumCode:   r.NumCode,
		CharCode:  r.CharCode,
		Nominal:   r.Nominal,
		Name:      r.Name,
		Value:     r.Value,
		VUnitRate: r.VUnitRate,
		Date:      r.Date.Format(time.DateOnly),
	}
}

// ToListRateResponse converts a slice of domain.Rate to API representations.
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	res := make([]RateResponse, len(rates))
	for i := range rates {
		res[i] = ToRateResponse(&rates[i])
	}
	return res
}
