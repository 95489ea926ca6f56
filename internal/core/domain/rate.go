package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate represents one currency's quoted value for a date, as published by the
// central bank feed.
type Rate struct {
	ID        string          `json:"id"`        // Stable feed identifier, e.g. "R01235"
	NumCode   string          `json:"numCode"`   // ISO numeric code, e.g. "840"
	CharCode  string          `json:"charCode"`  // ISO alpha code, e.g. "USD"; may be empty
	Nominal   int             `json:"nominal"`   // Unit count the quote applies to
	Name      string          `json:"name"`      // Display name from the feed
	Value     decimal.Decimal `json:"value"`     // Quoted price for Nominal units
	VUnitRate decimal.Decimal `json:"vunitRate"` // Price per single unit, as supplied by the feed
	Date      time.Time       `json:"date"`      // Calendar date the quote is valid for
}
