package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type expiredSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Scheduler periodically reclaims expired holds. It is the only
// cleanup mechanism abandoned checkouts rely on; sweep errors are
// logged and retried next tick, never surfaced.
type Scheduler struct {
	sweeper  expiredSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper expiredSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweep scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweep scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	count, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired holds",
			logger.String("error", err.Error()),
		)
		return
	}

	if count > 0 {
		s.logger.Info("expired holds reclaimed",
			logger.Int("count", count),
		)
	}
}
