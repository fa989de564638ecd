package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/telemetry"
)

type SweepStats struct {
	Due    int
	Sent   int
	Failed int
}

type NotificationCommands interface {
	Enqueue(ctx context.Context, p notification.EnqueueParams) (bool, error)
	RunDueSweep(ctx context.Context, now time.Time) (SweepStats, error)
}

type notificationUseCase struct {
	messageRepo MessageRepository
	sender      MessageSender
	metrics     *telemetry.Metrics
	db          repository.DB
	clock       clock.Clock
	sweepCfg    config.SweepConfig
}

func NewNotificationCommands(
	messageRepo MessageRepository,
	sender MessageSender,
	metrics *telemetry.Metrics,
	db repository.DB,
	clk clock.Clock,
	cfg config.Config,
) NotificationCommands {
	return &notificationUseCase{
		messageRepo: messageRepo,
		sender:      sender,
		metrics:     metrics,
		db:          db,
		clock:       clk,
		sweepCfg:    cfg.Sweep,
	}
}

// Enqueue schedules one message. Re-enqueuing the same logical notification
// while a pending row exists is a silent no-op.
func (u *notificationUseCase) Enqueue(ctx context.Context, p notification.EnqueueParams) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, errs.Mark(err, ErrValidation)
	}
	if p.DedupeKey == "" {
		return false, errs.Mark(errs.New("dedupe key is required"), ErrValidation)
	}

	inserted, err := u.messageRepo.Enqueue(ctx, u.db, p)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperation)
	}
	return inserted, nil
}

// RunDueSweep sends every pending message whose scheduled time has passed.
// Per-message progress is persisted immediately, so a sweep interrupted by a
// crash or shutdown can simply be abandoned; the next one picks up whatever
// is still pending. Concurrent sweeps are safe: the pending→sent flip is a
// compare-and-set, and the channel sender tolerates duplicate deliveries.
func (u *notificationUseCase) RunDueSweep(ctx context.Context, now time.Time) (SweepStats, error) {
	u.metrics.SweepRun()

	due, err := u.messageRepo.Due(ctx, now, int32(u.sweepCfg.BatchSize))
	if err != nil {
		return SweepStats{}, errs.Mark(err, ErrDatabaseOperation)
	}

	stats := SweepStats{Due: len(due)}
	for _, msg := range due {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		if err := u.sender.Send(ctx, msg); err != nil {
			slog.Warn("message send failed",
				"message_id", msg.ID, "type", string(msg.Type), "error", err.Error())
			if markErr := u.messageRepo.MarkFailedAttempt(ctx, msg.ID, int32(u.sweepCfg.MaxAttempts)); markErr != nil {
				slog.Error("failed to record send failure", "message_id", msg.ID, "error", markErr.Error())
			}
			stats.Failed++
			u.metrics.MessageProcessed(string(msg.Type), "failed")
			continue
		}

		won, err := u.messageRepo.MarkSent(ctx, msg.ID, u.clock.Now())
		if err != nil {
			slog.Error("failed to mark message sent", "message_id", msg.ID, "error", err.Error())
			continue
		}
		if won {
			stats.Sent++
			u.metrics.MessageProcessed(string(msg.Type), "sent")
		}
	}

	return stats, nil
}
