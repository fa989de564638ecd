//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/telemetry"
	"storefront/internal/usecase/commands"
	commandsmock "storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notificationFixture struct {
	messages *commandsmock.MockMessageRepository
	sender   *commandsmock.MockMessageSender
	clock    *clock.MockClock
	uc       commands.NotificationCommands
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &notificationFixture{
		messages: commandsmock.NewMockMessageRepository(ctrl),
		sender:   commandsmock.NewMockMessageSender(ctrl),
		clock:    clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
	cfg := config.Config{
		Sweep: config.SweepConfig{BatchSize: 100, MaxAttempts: 3},
	}
	f.uc = commands.NewNotificationCommands(
		f.messages, f.sender, telemetry.NewMetrics(), nil, f.clock, cfg,
	)
	return f
}

func pendingMessage(id int64, typ notification.Type) *notification.Message {
	return &notification.Message{
		ID:          id,
		Phone:       "5511999990000",
		Content:     "hello",
		Type:        typ,
		Status:      notification.StatusPending,
		ScheduledAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestEnqueue(t *testing.T) {
	validParams := notification.EnqueueParams{
		Phone:       "5511999990000",
		Content:     "hello",
		Type:        notification.TypeRecovery,
		ScheduledAt: time.Now(),
		DedupeKey:   "recovery:5511999990000:order:1",
	}

	t.Run("inserts a new message", func(t *testing.T) {
		f := newNotificationFixture(t)
		f.messages.EXPECT().Enqueue(gomock.Any(), gomock.Any(), validParams).Return(true, nil)

		inserted, err := f.uc.Enqueue(context.Background(), validParams)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("duplicate pending key is a quiet no-op", func(t *testing.T) {
		f := newNotificationFixture(t)
		f.messages.EXPECT().Enqueue(gomock.Any(), gomock.Any(), validParams).Return(false, nil)

		inserted, err := f.uc.Enqueue(context.Background(), validParams)
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("missing dedupe key is rejected", func(t *testing.T) {
		f := newNotificationFixture(t)

		p := validParams
		p.DedupeKey = ""
		_, err := f.uc.Enqueue(context.Background(), p)
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("domain validation failures are rejected", func(t *testing.T) {
		f := newNotificationFixture(t)

		p := validParams
		p.Phone = ""
		_, err := f.uc.Enqueue(context.Background(), p)
		assert.ErrorIs(t, err, commands.ErrValidation)
	})
}

func TestRunDueSweep(t *testing.T) {
	t.Run("sends every due message", func(t *testing.T) {
		f := newNotificationFixture(t)
		now := f.clock.Now()
		due := []*notification.Message{
			pendingMessage(1, notification.TypeRecovery),
			pendingMessage(2, notification.TypeRestock),
		}
		f.messages.EXPECT().Due(gomock.Any(), now, int32(100)).Return(due, nil)
		f.sender.EXPECT().Send(gomock.Any(), due[0]).Return(nil)
		f.sender.EXPECT().Send(gomock.Any(), due[1]).Return(nil)
		f.messages.EXPECT().MarkSent(gomock.Any(), int64(1), now).Return(true, nil)
		f.messages.EXPECT().MarkSent(gomock.Any(), int64(2), now).Return(true, nil)

		stats, err := f.uc.RunDueSweep(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, commands.SweepStats{Due: 2, Sent: 2}, stats)
	})

	t.Run("a failed send is recorded and does not stop the sweep", func(t *testing.T) {
		f := newNotificationFixture(t)
		now := f.clock.Now()
		due := []*notification.Message{
			pendingMessage(1, notification.TypeRecovery),
			pendingMessage(2, notification.TypeWinback15),
		}
		f.messages.EXPECT().Due(gomock.Any(), now, int32(100)).Return(due, nil)
		f.sender.EXPECT().Send(gomock.Any(), due[0]).Return(errors.New("provider down"))
		f.messages.EXPECT().MarkFailedAttempt(gomock.Any(), int64(1), int32(3)).Return(nil)
		f.sender.EXPECT().Send(gomock.Any(), due[1]).Return(nil)
		f.messages.EXPECT().MarkSent(gomock.Any(), int64(2), now).Return(true, nil)

		stats, err := f.uc.RunDueSweep(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, commands.SweepStats{Due: 2, Sent: 1, Failed: 1}, stats)
	})

	t.Run("losing the sent race does not count the message", func(t *testing.T) {
		f := newNotificationFixture(t)
		now := f.clock.Now()
		due := []*notification.Message{pendingMessage(1, notification.TypeRecovery)}
		f.messages.EXPECT().Due(gomock.Any(), now, int32(100)).Return(due, nil)
		f.sender.EXPECT().Send(gomock.Any(), due[0]).Return(nil)
		f.messages.EXPECT().MarkSent(gomock.Any(), int64(1), now).Return(false, nil)

		stats, err := f.uc.RunDueSweep(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, commands.SweepStats{Due: 1}, stats)
	})

	t.Run("query failure aborts the sweep", func(t *testing.T) {
		f := newNotificationFixture(t)
		now := f.clock.Now()
		f.messages.EXPECT().Due(gomock.Any(), now, int32(100)).Return(nil, errors.New("db down"))

		_, err := f.uc.RunDueSweep(context.Background(), now)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperation)
	})

	t.Run("cancelled context stops mid-batch", func(t *testing.T) {
		f := newNotificationFixture(t)
		now := f.clock.Now()
		due := []*notification.Message{
			pendingMessage(1, notification.TypeRecovery),
			pendingMessage(2, notification.TypeRecovery),
		}
		ctx, cancel := context.WithCancel(context.Background())
		f.messages.EXPECT().Due(gomock.Any(), now, int32(100)).Return(due, nil)
		f.sender.EXPECT().Send(gomock.Any(), due[0]).
			DoAndReturn(func(context.Context, *notification.Message) error {
				cancel()
				return nil
			})
		f.messages.EXPECT().MarkSent(gomock.Any(), int64(1), now).Return(true, nil)

		stats, err := f.uc.RunDueSweep(ctx, now)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, commands.SweepStats{Due: 2, Sent: 1}, stats)
	})
}
