package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Job is one periodically-triggered pipeline pass (ingestion or scheduling).
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler triggers a job on a fixed interval with a per-run timeout.
// Pipelines share no in-memory state; the store is the synchronization
// point, so overlapping schedulers for different jobs are safe.
type Scheduler struct {
	job        Job
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func New(job Job, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		job:        job,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("job", job.Name()),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if err := s.job.Run(runCtx); err != nil {
		s.logger.Error("job run failed", "error", err)
	}
}
