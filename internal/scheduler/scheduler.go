package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type directoryRefresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler keeps the municipality directory warm so booking validation
// rarely waits on the upstream reference API.
type Scheduler struct {
	directory directoryRefresher
	interval  time.Duration
	logger    logger.Logger
}

func New(
	directory directoryRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		directory: directory,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.directory.Refresh(ctx); err != nil {
		s.logger.Error("failed to refresh municipality directory",
			logger.String("error", err.Error()),
		)
	}
}
