package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponRepository struct {
	db DB
}

func NewCouponRepository(db DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	var (
		id            uuid.UUID
		storedCode    string
		typ           string
		value         int64
		minOrderCents int64
		maxUses       *int32
		usedCount     int32
		expiresAt     *time.Time
		active        bool
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, code, type, value, min_order_cents, max_uses, used_count, expires_at, active
		FROM coupons
		WHERE code = $1`,
		strings.ToUpper(strings.TrimSpace(code)),
	).Scan(&id, &storedCode, &typ, &value, &minOrderCents, &maxUses, &usedCount, &expiresAt, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	entity, err := coupon.NewCoupon(
		id, storedCode, coupon.Type(typ), value, minOrderCents,
		maxUses, usedCount, expiresAt, active,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct coupon", err)
	}
	return entity, nil
}

// Redeem is the authoritative max-uses guard: a single conditional increment
// that concurrent checkouts cannot both win once the limit is reached. The
// expiry comparison is inclusive to match Coupon.ValidateFor, which accepts
// a coupon at the exact expiry instant.
func (r *CouponRepository) Redeem(ctx context.Context, db DB, code string) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE coupons
		SET used_count = used_count + 1
		WHERE code = $1
		  AND active
		  AND (expires_at IS NULL OR expires_at >= now())
		  AND (max_uses IS NULL OR used_count < max_uses)`,
		strings.ToUpper(strings.TrimSpace(code)),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem coupon", err)
	}
	return tag.RowsAffected() == 1, nil
}
