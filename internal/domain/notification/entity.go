package notification

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoRecipient    = errors.New("message requires a phone or email recipient")
	ErrEmptyContent   = errors.New("message content is required")
	ErrInvalidType    = errors.New("unknown message type")
	ErrAlreadyResolve = errors.New("message is no longer pending")
)

// Message is a fully materialized outbound notification. Content is rendered
// at enqueue time; the sweep never re-evaluates templates.
type Message struct {
	ID          int64
	Phone       string // canonical digits, empty for email-only recipients
	Email       string
	Content     string
	Type        Type
	Status      Status
	ScheduledAt time.Time
	SentAt      *time.Time
	Attempts    int32
	DedupeKey   string
	CreatedAt   time.Time
}

func (m *Message) IsDue(now time.Time) bool {
	return m.Status == StatusPending && !m.ScheduledAt.After(now)
}

// DedupeKey derives the identifier that keeps one pending row per
// (recipient, type, referenced entity) tuple.
func DedupeKey(recipient string, t Type, entityRef string) string {
	return fmt.Sprintf("%s:%s:%s", t, recipient, entityRef)
}

// EnqueueParams is validated input for the scheduler.
type EnqueueParams struct {
	Phone       string
	Email       string
	Content     string
	Type        Type
	ScheduledAt time.Time
	DedupeKey   string
}

func (p EnqueueParams) Validate() error {
	if p.Phone == "" && p.Email == "" {
		return ErrNoRecipient
	}
	if p.Content == "" {
		return ErrEmptyContent
	}
	if !p.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}
