package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	portssvc "github.com/kmalkov/cbr_rates_app/internal/core/ports/services"
)

// Scheduler drives the sync service on a cadence decided by its TriggerPolicy.
// One instance runs per process. Cycle failures are logged and swallowed here
// so a transient feed outage never takes the loop down; every other layer
// propagates errors to its caller. Manual triggers go straight to the sync
// service and are not serialized against this loop.
type Scheduler struct {
	syncService portssvc.SyncSvcFacade
	policy      TriggerPolicy
	logger      *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Scheduler.
func New(syncService portssvc.SyncSvcFacade, policy TriggerPolicy, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncService: syncService,
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

// Run blocks until ctx is canceled, running one sync cycle per deadline.
// Cancellation observed at a wait point aborts cleanly without starting a
// partial cycle.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Starting sync scheduler")

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		deadline := s.policy.Next(s.now())
		timer.Reset(time.Until(deadline))
		s.logger.Info("Waiting for next sync deadline", slog.Time("deadline", deadline))

		select {
		case <-ctx.Done():
			s.logger.Info("Stopping sync scheduler")
			return
		case <-timer.C:
		}

		s.runCycle(ctx)
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	runID := uuid.NewString()
	date := s.now()
	logger := s.logger.With(slog.String("run_id", runID), slog.Time("date", date))

	logger.Info("Running scheduled sync cycle")
	if err := s.syncService.RunSync(ctx, date); err != nil {
		// Swallowed on purpose: the loop continues to the next deadline.
		logger.Error("Scheduled sync cycle failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("Scheduled sync cycle completed")
}
