package readstore

import (
	"context"
	"errors"

	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db repository.DB
}

func NewOrderReadStore(db repository.DB) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const orderViewColumns = `
	id, customer_name, customer_phone, customer_email, customer_address, customer_city,
	subtotal_cents, discount_cents, total_cents, payment_method, status,
	coupon_code, delivery_id, created_at`

func (s *OrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+orderViewColumns+` FROM orders WHERE id = $1`, id)

	view, err := scanOrderView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order view", err)
	}

	if err := s.attachItems(ctx, []*queries.OrderView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *OrderReadStore) List(ctx context.Context, f queries.OrderFilter) ([]*queries.OrderView, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = queries.DefaultPageSize
	}
	if limit > queries.MaxPageSize {
		limit = queries.MaxPageSize
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`,
		f.Status, limit, f.Offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	views, err := collectOrderViews(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// SearchByPhone matches the canonical phone as a substring so customers can
// type partial numbers with or without country and area codes.
func (s *OrderReadStore) SearchByPhone(ctx context.Context, digits string, limit int32) ([]*queries.OrderView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE customer_phone LIKE '%' || $1 || '%'
		ORDER BY id DESC
		LIMIT $2`,
		digits, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search orders by phone", err)
	}
	defer rows.Close()

	views, err := collectOrderViews(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	v := &queries.OrderView{}
	err := row.Scan(
		&v.ID, &v.CustomerName, &v.CustomerPhone, &v.CustomerEmail, &v.CustomerAddress, &v.CustomerCity,
		&v.SubtotalCents, &v.DiscountCents, &v.TotalCents, &v.PaymentMethod, &v.Status,
		&v.CouponCode, &v.DeliveryID, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func collectOrderViews(rows pgx.Rows) ([]*queries.OrderView, error) {
	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order views", err)
	}
	return views, nil
}

func (s *OrderReadStore) attachItems(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]int64, len(views))
	byID := make(map[int64]*queries.OrderView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := s.db.Query(ctx, `
		SELECT order_id, product_id, product_name, variant_name, quantity, unit_price_cents
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`,
		ids,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item queries.OrderItemView
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.VariantName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return infra.WrapRepoErr("failed to scan order item view", err)
		}
		if v, ok := byID[orderID]; ok {
			v.Items = append(v.Items, item)
		}
	}
	return rows.Err()
}
