package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type pendingReminder interface {
	RemindPending(ctx context.Context) (int, error)
}

// Scheduler periodically reminds store owners about bookings still waiting
// for a decision.
type Scheduler struct {
	bookingService pendingReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService pendingReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
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
	reminded, err := s.bookingService.RemindPending(ctx)
	if err != nil {
		s.logger.Error("failed to remind about pending bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	if reminded > 0 {
		s.logger.Info("pending reminders sent",
			logger.Int("stores", reminded),
		)
	}
}
