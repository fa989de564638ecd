package repository

import (
	"context"
	"time"

	"storefront/internal/infra"
)

type Favorite struct {
	ID        int64
	UserPhone string
	ProductID int64
	CreatedAt time.Time
}

type FavoriteRepository struct {
	db DB
}

func NewFavoriteRepository(db DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userPhone string, productID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO favorites (user_phone, product_id)
		VALUES ($1, $2)
		RETURNING id`,
		userPhone, productID,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert favorite", err)
	}
	return id, nil
}

// ListByPhone dedupes on product id at read time; duplicate rows are
// tolerated in storage.
func (r *FavoriteRepository) ListByPhone(ctx context.Context, userPhone string) ([]Favorite, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (product_id) id, user_phone, product_id, created_at
		FROM favorites
		WHERE user_phone = $1
		ORDER BY product_id, created_at`,
		userPhone,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	defer rows.Close()

	var favs []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.UserPhone, &f.ProductID, &f.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan favorite", err)
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate favorites", err)
	}

	return favs, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove favorite", err)
	}
	return tag.RowsAffected() > 0, nil
}
