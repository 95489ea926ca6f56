package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the database representation of a single currency quote.
// The rates table holds at most one row per ID: sync cycles overwrite
// value, vunit_rate and date in place, they never append history.
type Rate struct {
	ID        string          `json:"id"`
	NumCode   string          `json:"numCode"`
	CharCode  string          `json:"charCode"`
	Nominal   int             `json:"nominal"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	VUnitRate decimal.Decimal `json:"vunitRate"`
	Date      time.Time       `json:"date"`
}
