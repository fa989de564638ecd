package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/order"
	"storefront/internal/infra"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order and its line items. Callers run it inside the
// checkout transaction together with the coupon redemption.
func (r *OrderRepository) Create(ctx context.Context, db DB, o *order.Order) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO orders (
			customer_name, customer_phone, customer_email, customer_address, customer_city,
			subtotal_cents, discount_cents, total_cents, payment_method, status, coupon_code
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		o.CustomerName, o.CustomerPhone, o.CustomerEmail, o.CustomerAddress, o.CustomerCity,
		o.SubtotalCents, o.DiscountCents, o.TotalCents, string(o.PaymentMethod), string(o.Status), o.CouponCode,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert order", err)
	}

	for _, item := range o.Items {
		_, err = db.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, variant_name, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, item.ProductID, item.ProductName, item.VariantName, item.Quantity, item.UnitPriceCents,
		)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to insert order item", err)
		}
	}

	return id, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	o := &order.Order{}
	var method, status string
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_name, customer_phone, customer_email, customer_address, customer_city,
		       subtotal_cents, discount_cents, total_cents, payment_method, status,
		       coupon_code, delivery_id, created_at, updated_at
		FROM orders
		WHERE id = $1`, id,
	).Scan(
		&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail, &o.CustomerAddress, &o.CustomerCity,
		&o.SubtotalCents, &o.DiscountCents, &o.TotalCents, &method, &status,
		&o.CouponCode, &o.DeliveryID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	o.PaymentMethod = order.PaymentMethod(method)
	o.Status = order.Status(status)

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID int64) ([]order.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, product_id, product_name, variant_name, quantity, unit_price_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var item order.Item
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.ProductName, &item.VariantName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}

	return items, nil
}

// UpdateStatus performs the compare-and-set transition. A zero row count
// means a concurrent writer moved the order first; the caller decides whether
// the observed state makes that a no-op or a real conflict.
func (r *OrderRepository) UpdateStatus(ctx context.Context, db DB, id int64, from, to order.Status) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		string(to), id, string(from),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetDeliveryID records the provider reference at most once per order.
func (r *OrderRepository) SetDeliveryID(ctx context.Context, id int64, deliveryID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET delivery_id = $1, updated_at = now()
		WHERE id = $2 AND delivery_id IS NULL`,
		deliveryID, id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to set delivery id", err)
	}
	return tag.RowsAffected() == 1, nil
}
