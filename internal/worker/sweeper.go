package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
)

// Sweeper periodically drains the due slice of the message queue. It is the
// only component that sends notifications; everything else just enqueues.
type Sweeper struct {
	notifications commands.NotificationCommands
	clock         clock.Clock
	interval      time.Duration
	logger        *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(
	notifications commands.NotificationCommands,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		notifications: notifications,
		clock:         clk,
		interval:      cfg.Sweep.Interval,
		logger:        logger,
		done:          make(chan struct{}),
	}
}

// Start launches the sweep loop. The first sweep runs immediately so
// messages that came due while the process was down go out on boot.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		defer close(s.done)

		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to finish. A sweep
// cut short mid-batch is harmless; unsent messages stay pending.
func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	stats, err := s.notifications.RunDueSweep(ctx, s.clock.Now())
	if err != nil {
		s.logger.Error("message sweep failed", "error", err.Error())
		return
	}
	if stats.Due > 0 {
		s.logger.Info("message sweep finished",
			"due", stats.Due, "sent", stats.Sent, "failed", stats.Failed)
	}
}
