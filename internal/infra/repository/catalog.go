package repository

import (
	"context"
	"errors"

	"storefront/internal/infra"

	"github.com/jackc/pgx/v5"
)

// ProductSnapshot is the read-only slice of the catalog the checkout needs:
// a display name and the current price to freeze onto the order line.
type ProductSnapshot struct {
	ID         int64
	Name       string
	PriceCents int64
	Active     bool
}

type VariantSnapshot struct {
	ProductID  int64
	Name       string
	PriceCents *int64 // nil = inherit product price
}

type CatalogRepository struct {
	db DB
}

func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Product(ctx context.Context, id int64) (*ProductSnapshot, error) {
	p := &ProductSnapshot{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price_cents, active
		FROM products
		WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.PriceCents, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return p, nil
}

func (r *CatalogRepository) Variant(ctx context.Context, productID int64, name string) (*VariantSnapshot, error) {
	v := &VariantSnapshot{}
	err := r.db.QueryRow(ctx, `
		SELECT product_id, name, price_cents
		FROM product_variants
		WHERE product_id = $1 AND name = $2`, productID, name,
	).Scan(&v.ProductID, &v.Name, &v.PriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("variant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find variant", err)
	}
	return v, nil
}
