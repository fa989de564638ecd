//go:build unit

package notification_test

import (
	"testing"
	"time"

	"storefront/internal/domain/notification"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestWinbackSchedule(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	want := []notification.ScheduledStep{
		{Type: notification.TypeRecovery, SendAt: now.Add(time.Hour)},
		{Type: notification.TypeWinback15, SendAt: now.Add(15 * 24 * time.Hour)},
		{Type: notification.TypeWinback30, SendAt: now.Add(30 * 24 * time.Hour)},
		{Type: notification.TypeWinback45, SendAt: now.Add(45 * 24 * time.Hour)},
	}

	if diff := cmp.Diff(want, notification.WinbackSchedule(now)); diff != "" {
		t.Errorf("WinbackSchedule() mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupeKey(t *testing.T) {
	key := notification.DedupeKey("5511999990000", notification.TypeRecovery, "order:42")
	assert.Equal(t, "recovery:5511999990000:order:42", key)

	other := notification.DedupeKey("5511999990000", notification.TypeWinback15, "order:42")
	assert.NotEqual(t, key, other)
}

func TestEnqueueParamsValidate(t *testing.T) {
	valid := notification.EnqueueParams{
		Phone:       "5511999990000",
		Content:     "hello",
		Type:        notification.TypeRecovery,
		ScheduledAt: time.Now(),
		DedupeKey:   "recovery:5511999990000:order:1",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("email-only recipient is fine", func(t *testing.T) {
		p := valid
		p.Phone = ""
		p.Email = "user@example.com"
		assert.NoError(t, p.Validate())
	})

	t.Run("no recipient", func(t *testing.T) {
		p := valid
		p.Phone = ""
		assert.ErrorIs(t, p.Validate(), notification.ErrNoRecipient)
	})

	t.Run("empty content", func(t *testing.T) {
		p := valid
		p.Content = ""
		assert.ErrorIs(t, p.Validate(), notification.ErrEmptyContent)
	})

	t.Run("unknown type", func(t *testing.T) {
		p := valid
		p.Type = "newsletter"
		assert.ErrorIs(t, p.Validate(), notification.ErrInvalidType)
	})
}

func TestMessageIsDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		status    notification.Status
		scheduled time.Time
		want      bool
	}{
		{name: "pending and past due", status: notification.StatusPending, scheduled: now.Add(-time.Minute), want: true},
		{name: "pending exactly at schedule", status: notification.StatusPending, scheduled: now, want: true},
		{name: "pending in the future", status: notification.StatusPending, scheduled: now.Add(time.Minute), want: false},
		{name: "already sent", status: notification.StatusSent, scheduled: now.Add(-time.Hour), want: false},
		{name: "failed", status: notification.StatusFailed, scheduled: now.Add(-time.Hour), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &notification.Message{Status: tc.status, ScheduledAt: tc.scheduled}
			assert.Equal(t, tc.want, m.IsDue(now))
		})
	}
}

func TestRestockContent(t *testing.T) {
	variant := "Size M"
	assert.Contains(t, notification.RestockContent("T-Shirt", &variant), "T-Shirt (Size M)")
	assert.Contains(t, notification.RestockContent("T-Shirt", nil), "T-Shirt is back in stock")
}
