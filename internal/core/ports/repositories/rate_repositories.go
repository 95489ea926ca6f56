package repositories

import (
	"context"

	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
)

// RateReader defines read operations over the rate snapshot.
type RateReader interface {
	// GetAll retrieves every rate carrying the newest date present in the store.
	GetAll(ctx context.Context) ([]domain.Rate, error)

	// GetByNumCode retrieves the rate with the given ISO numeric code,
	// preferring the most recent date when more than one row matches.
	GetByNumCode(ctx context.Context, numCode string) (*domain.Rate, error)

	// GetByCharCode retrieves the rate with the given upper-cased ISO alpha code,
	// preferring the most recent date when more than one row matches.
	GetByCharCode(ctx context.Context, charCode string) (*domain.Rate, error)
}

// RateWriter defines write operations over the rate snapshot.
type RateWriter interface {
	// SaveBatch upserts every record in a single transaction. Either the whole
	// batch is committed or none of it is.
	SaveBatch(ctx context.Context, rates []domain.Rate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
