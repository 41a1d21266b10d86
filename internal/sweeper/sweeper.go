// Package sweeper runs the lifecycle sweep on a fixed interval.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/reviewhub/reviewcycles/internal/config"
	cycleService "github.com/reviewhub/reviewcycles/internal/cycle/service"
)

// Sweeper periodically triggers the cycle lifecycle sweep. The sweep itself
// never returns an error; per-cycle failures are counted in its result and
// retried on the next tick.
type Sweeper struct {
	service cycleService.Service
	cfg     config.SweepConfig
	logger  *zap.SugaredLogger
}

// New creates a new sweeper instance.
func New(svc cycleService.Service, cfg config.SweepConfig, logger *zap.SugaredLogger) *Sweeper {
	return &Sweeper{
		service: svc,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run ticks until the context is cancelled. It blocks; callers start it in
// its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	if !s.cfg.Enabled {
		s.logger.Infow("sweeper disabled")
		return
	}

	s.logger.Infow("sweeper started", "interval", s.cfg.Interval.String())

	if s.cfg.RunOnStart {
		s.tick(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	result := s.service.Sweep(ctx)
	if result.Errors > 0 {
		s.logger.Warnw("sweep tick finished with errors",
			"to_closing", result.ToClosing,
			"to_completed", result.ToCompleted,
			"errors", result.Errors,
		)
	}
}
