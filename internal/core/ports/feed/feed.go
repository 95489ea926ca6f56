package feed

import (
	"context"
	"time"

	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
)

// Fetcher retrieves the raw daily feed for a target date, already decoded
// from the source's legacy byte encoding into UTF-8 text.
type Fetcher interface {
	Fetch(ctx context.Context, date time.Time) (string, error)
}

// Parser turns decoded feed text into rate records, in feed order.
type Parser interface {
	Parse(data string) ([]domain.Rate, error)
}
