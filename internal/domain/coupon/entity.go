package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive    = errors.New("coupon is not active")
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
	ErrBelowMinimumOrder = errors.New("order subtotal below coupon minimum")

	// ErrNoLongerApplicable reports a redemption rejected by the store's
	// conditional increment. At that point the precise cause (limit, expiry,
	// deactivation) is not observable, so no specific sentinel applies.
	ErrNoLongerApplicable = errors.New("coupon is no longer applicable")
)

type Coupon struct {
	id            uuid.UUID
	code          Code
	discount      Discount
	minOrderCents int64
	maxUses       *int32
	usedCount     int32
	expiresAt     *time.Time
	active        bool
	createdAt     time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	typ Type,
	value int64,
	minOrderCents int64,
	maxUses *int32,
	usedCount int32,
	expiresAt *time.Time,
	active bool,
) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(typ, value)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:            id,
		code:          couponCode,
		discount:      discount,
		minOrderCents: minOrderCents,
		maxUses:       maxUses,
		usedCount:     usedCount,
		expiresAt:     expiresAt,
		active:        active,
	}, nil
}

// ValidateFor checks every applicability rule and reports the first failure.
// The usage-limit check here is advisory only; the authoritative guard is the
// conditional used_count increment performed in the same transaction as the
// order insert.
func (c *Coupon) ValidateFor(subtotalCents int64, now time.Time) error {
	if !c.active {
		return ErrCouponInactive
	}
	if c.expiresAt != nil && now.After(*c.expiresAt) {
		return ErrCouponExpired
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrUsageLimitReached
	}
	if subtotalCents < c.minOrderCents {
		return ErrBelowMinimumOrder
	}
	return nil
}

func (c *Coupon) DiscountFor(subtotalCents int64) int64 {
	return c.discount.AmountFor(subtotalCents)
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) MinOrderCents() int64  { return c.minOrderCents }
func (c *Coupon) MaxUses() *int32       { return c.maxUses }
func (c *Coupon) UsedCount() int32      { return c.usedCount }
func (c *Coupon) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Coupon) IsActive() bool        { return c.active }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
