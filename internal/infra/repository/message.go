package repository

import (
	"context"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/infra"
)

type MessageRepository struct {
	db DB
}

func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Enqueue inserts a pending message unless one with the same dedupe key is
// still pending. The partial unique index makes the duplicate check and the
// insert a single atomic statement.
func (r *MessageRepository) Enqueue(ctx context.Context, db DB, p notification.EnqueueParams) (bool, error) {
	tag, err := db.Exec(ctx, `
		INSERT INTO queued_messages (phone, email, content, type, status, scheduled_at, dedupe_key)
		VALUES ($1, $2, $3, $4, 'pending', $5, $6)
		ON CONFLICT (dedupe_key) WHERE status = 'pending' DO NOTHING`,
		nullIfEmpty(p.Phone), nullIfEmpty(p.Email), p.Content, string(p.Type), p.ScheduledAt, p.DedupeKey,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to enqueue message", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Due returns pending messages whose scheduled time has passed, oldest first.
func (r *MessageRepository) Due(ctx context.Context, now time.Time, limit int32) ([]*notification.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(phone, ''), COALESCE(email, ''), content, type, status,
		       scheduled_at, sent_at, attempts, dedupe_key, created_at
		FROM queued_messages
		WHERE status = 'pending' AND scheduled_at <= $1
		ORDER BY scheduled_at
		LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load due messages", err)
	}
	defer rows.Close()

	var msgs []*notification.Message
	for rows.Next() {
		m := &notification.Message{}
		var typ, status string
		if err := rows.Scan(&m.ID, &m.Phone, &m.Email, &m.Content, &typ, &status,
			&m.ScheduledAt, &m.SentAt, &m.Attempts, &m.DedupeKey, &m.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan queued message", err)
		}
		m.Type = notification.Type(typ)
		m.Status = notification.Status(status)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate due messages", err)
	}

	return msgs, nil
}

// MarkSent flips pending→sent exactly once. Two concurrent sweeps cannot
// both win; the loser sees zero rows affected and moves on.
func (r *MessageRepository) MarkSent(ctx context.Context, id int64, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE queued_messages
		SET status = 'sent', sent_at = $1
		WHERE id = $2 AND status = 'pending'`,
		at, id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark message sent", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailedAttempt counts a delivery failure; the message goes terminal
// once the retry budget is exhausted.
func (r *MessageRepository) MarkFailedAttempt(ctx context.Context, id int64, maxAttempts int32) error {
	_, err := r.db.Exec(ctx, `
		UPDATE queued_messages
		SET attempts = attempts + 1,
		    status = CASE WHEN attempts + 1 >= $1 THEN 'failed' ELSE 'pending' END
		WHERE id = $2 AND status = 'pending'`,
		maxAttempts, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record message failure", err)
	}
	return nil
}

// CancelPending removes still-pending campaign messages for a customer,
// typically because the purchase went through before the schedule fired.
func (r *MessageRepository) CancelPending(ctx context.Context, phone string, types []notification.Type) (int64, error) {
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM queued_messages
		WHERE phone = $1 AND status = 'pending' AND type = ANY($2)`,
		phone, typeNames,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel pending messages", err)
	}
	return tag.RowsAffected(), nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
