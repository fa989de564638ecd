//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponCode(t *testing.T) {
	t.Run("normalizes to uppercase", func(t *testing.T) {
		code, err := coupon.NewCouponCode("  save10 ")
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", code.String())
	})

	t.Run("format validation", func(t *testing.T) {
		cases := []struct {
			name  string
			code  string
			errIs error
		}{
			{name: "minimum length", code: "AB1"},
			{name: "maximum length", code: "ABCDEFGHIJ1234567890"},
			{name: "too short", code: "AB", errIs: coupon.ErrInvalidCouponCode},
			{name: "too long", code: "ABCDEFGHIJ12345678901", errIs: coupon.ErrInvalidCouponCode},
			{name: "empty", code: "", errIs: coupon.ErrInvalidCouponCode},
			{name: "punctuation", code: "SAVE-10", errIs: coupon.ErrInvalidCouponCode},
			{name: "whitespace inside", code: "SAVE 10", errIs: coupon.ErrInvalidCouponCode},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := coupon.NewCouponCode(tc.code)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestDiscountAmountFor(t *testing.T) {
	cases := []struct {
		name     string
		typ      coupon.Type
		value    int64
		subtotal int64
		want     int64
	}{
		{name: "10 percent", typ: coupon.TypePercent, value: 10, subtotal: 10000, want: 1000},
		{name: "percent rounds half up", typ: coupon.TypePercent, value: 10, subtotal: 105, want: 11},
		{name: "percent rounds down below half", typ: coupon.TypePercent, value: 10, subtotal: 104, want: 10},
		{name: "100 percent takes whole subtotal", typ: coupon.TypePercent, value: 100, subtotal: 5000, want: 5000},
		{name: "fixed amount", typ: coupon.TypeFixed, value: 500, subtotal: 10000, want: 500},
		{name: "fixed clamped to subtotal", typ: coupon.TypeFixed, value: 5000, subtotal: 3000, want: 3000},
		{name: "zero subtotal", typ: coupon.TypeFixed, value: 500, subtotal: 0, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := coupon.NewDiscount(tc.typ, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.AmountFor(tc.subtotal))
		})
	}
}

func TestNewDiscountValidation(t *testing.T) {
	cases := []struct {
		name  string
		typ   coupon.Type
		value int64
		errIs error
	}{
		{name: "percent over 100", typ: coupon.TypePercent, value: 101, errIs: coupon.ErrInvalidDiscountPercent},
		{name: "percent zero", typ: coupon.TypePercent, value: 0, errIs: coupon.ErrInvalidDiscountPercent},
		{name: "fixed zero", typ: coupon.TypeFixed, value: 0, errIs: coupon.ErrInvalidDiscountAmount},
		{name: "fixed negative", typ: coupon.TypeFixed, value: -100, errIs: coupon.ErrInvalidDiscountAmount},
		{name: "unknown type", typ: coupon.Type("bogus"), value: 10, errIs: coupon.ErrInvalidDiscountType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coupon.NewDiscount(tc.typ, tc.value)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestCouponValidateFor(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	maxUses := int32(100)

	newCoupon := func(minOrder int64, maxUses *int32, used int32, expiresAt *time.Time, active bool) *coupon.Coupon {
		c, err := coupon.NewCoupon(uuid.New(), "SAVE10", coupon.TypePercent, 10, minOrder, maxUses, used, expiresAt, active)
		require.NoError(t, err)
		return c
	}

	t.Run("valid coupon passes", func(t *testing.T) {
		c := newCoupon(1000, &maxUses, 50, &future, true)
		assert.NoError(t, c.ValidateFor(5000, now))
	})

	t.Run("subtotal exactly at minimum passes", func(t *testing.T) {
		c := newCoupon(1000, nil, 0, nil, true)
		assert.NoError(t, c.ValidateFor(1000, now))
	})

	t.Run("inactive", func(t *testing.T) {
		c := newCoupon(0, nil, 0, nil, false)
		assert.ErrorIs(t, c.ValidateFor(5000, now), coupon.ErrCouponInactive)
	})

	t.Run("expired", func(t *testing.T) {
		c := newCoupon(0, nil, 0, &past, true)
		assert.ErrorIs(t, c.ValidateFor(5000, now), coupon.ErrCouponExpired)
	})

	t.Run("expiry boundary is inclusive", func(t *testing.T) {
		c := newCoupon(0, nil, 0, &now, true)
		assert.NoError(t, c.ValidateFor(5000, now))
	})

	t.Run("usage limit reached", func(t *testing.T) {
		c := newCoupon(0, &maxUses, 100, nil, true)
		assert.ErrorIs(t, c.ValidateFor(5000, now), coupon.ErrUsageLimitReached)
	})

	t.Run("below minimum order", func(t *testing.T) {
		c := newCoupon(10000, nil, 0, nil, true)
		assert.ErrorIs(t, c.ValidateFor(9999, now), coupon.ErrBelowMinimumOrder)
	})

	t.Run("inactive wins over other failures", func(t *testing.T) {
		c := newCoupon(10000, &maxUses, 100, &past, false)
		assert.ErrorIs(t, c.ValidateFor(0, now), coupon.ErrCouponInactive)
	})
}
