package repository

import (
	"context"

	"storefront/internal/domain/restock"
	"storefront/internal/infra"
)

type RestockRepository struct {
	db DB
}

func NewRestockRepository(db DB) *RestockRepository {
	return &RestockRepository{db: db}
}

func (r *RestockRepository) Create(ctx context.Context, sub *restock.Subscription) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO restock_subscriptions (product_id, variant_name, contact_email, contact_phone, notified)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id`,
		sub.ProductID, sub.VariantName, sub.ContactEmail, sub.ContactPhone,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert restock subscription", err)
	}
	return id, nil
}

func (r *RestockRepository) FindUnnotifiedByProduct(ctx context.Context, db DB, productID int64) ([]*restock.Subscription, error) {
	rows, err := db.Query(ctx, `
		SELECT id, product_id, variant_name, contact_email, contact_phone, notified, created_at
		FROM restock_subscriptions
		WHERE product_id = $1 AND NOT notified
		ORDER BY id`,
		productID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load restock subscriptions", err)
	}
	defer rows.Close()

	var subs []*restock.Subscription
	for rows.Next() {
		s := &restock.Subscription{}
		if err := rows.Scan(&s.ID, &s.ProductID, &s.VariantName, &s.ContactEmail, &s.ContactPhone, &s.Notified, &s.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan restock subscription", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate restock subscriptions", err)
	}

	return subs, nil
}

// MarkNotified consumes a subscription at most once even when two restock
// events for the same product race.
func (r *RestockRepository) MarkNotified(ctx context.Context, db DB, id int64) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE restock_subscriptions
		SET notified = true
		WHERE id = $1 AND NOT notified`,
		id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark subscription notified", err)
	}
	return tag.RowsAffected() == 1, nil
}
