package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsfeed "github.com/kmalkov/cbr_rates_app/internal/core/ports/feed"
	portsrepo "github.com/kmalkov/cbr_rates_app/internal/core/ports/repositories"
)

// SyncService composes the feed fetcher, the parser and the snapshot store
// into one sync cycle. Re-running a cycle for the same date leaves the store
// unchanged because persistence is upsert-based.
type SyncService struct {
	fetcher  portsfeed.Fetcher
	parser   portsfeed.Parser
	rateRepo portsrepo.RateRepositoryWithTx
	logger   *slog.Logger
}

// NewSyncService creates a new SyncService. The repository is declared with
// its transaction capabilities so callers wire the same store the query side
// reads from; SaveBatch manages its own transaction internally.
func NewSyncService(fetcher portsfeed.Fetcher, parser portsfeed.Parser, rateRepo portsrepo.RateRepositoryWithTx, logger *slog.Logger) *SyncService {
	return &SyncService{
		fetcher:  fetcher,
		parser:   parser,
		rateRepo: rateRepo,
		logger:   logger,
	}
}

// RunSync runs one full fetch-parse-persist cycle for the target date.
// Failures from any stage propagate unchanged; callers decide whether to
// retry.
func (s *SyncService) RunSync(ctx context.Context, date time.Time) error {
	data, err := s.fetcher.Fetch(ctx, date)
	if err != nil {
		return fmt.Errorf("sync fetch stage: %w", err)
	}

	rates, err := s.parser.Parse(data)
	if err != nil {
		return fmt.Errorf("sync parse stage: %w", err)
	}

	s.logger.Info("Persisting parsed rates",
		slog.Int("count", len(rates)),
		slog.Time("date", date),
	)

	if err := s.rateRepo.SaveBatch(ctx, rates); err != nil {
		return fmt.Errorf("sync persist stage: %w", err)
	}

	return nil
}
