package services

import (
	"context"
	"time"

	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
)

// RateSvcFacade exposes the read-only query surface over the rate snapshot.
type RateSvcFacade interface {
	// ListRates returns every rate for the most recent date in the store.
	ListRates(ctx context.Context) ([]domain.Rate, error)

	// GetRateByNumCode returns a rate by its ISO numeric code.
	GetRateByNumCode(ctx context.Context, numCode string) (*domain.Rate, error)

	// GetRateByCharCode returns a rate by its 3-letter ISO alpha code,
	// case-insensitively. Inputs that are not 3 letters are rejected with a
	// validation error before the store is queried.
	GetRateByCharCode(ctx context.Context, charCode string) (*domain.Rate, error)
}

// SyncSvcFacade runs one full fetch-parse-persist cycle for a target date.
type SyncSvcFacade interface {
	RunSync(ctx context.Context, date time.Time) error
}
