package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joshua-takyi/cinema/internal/services"
	"go.uber.org/zap"
)

const runTimeout = 2 * time.Minute

type Runner interface {
	RunOnce(ctx context.Context) (services.ReconcileResult, error)
}

type Scheduler struct {
	scheduler gocron.Scheduler
	log       *zap.Logger
}

// Start schedules runner every interval. Overlapping runs are skipped.
func Start(runner Runner, interval time.Duration, log *zap.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
			defer cancel()
			if _, err := runner.RunOnce(ctx); err != nil {
				log.Warn("reservation event reconcile failed", zap.Error(err))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("reservation-events-reconcile"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to schedule reconcile job: %w", err)
	}

	s.Start()
	log.Info("reservation event reconciler started", zap.Duration("interval", interval))
	return &Scheduler{scheduler: s, log: log}, nil
}

func (s *Scheduler) Stop() {
	if s == nil {
		return
	}
	if err := s.scheduler.Shutdown(); err != nil {
		s.log.Warn("reconciler shutdown failed", zap.Error(err))
	}
}
