package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("unknown discount type")
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCouponCode normalizes to uppercase so lookups are case-insensitive.
func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Type string

const (
	TypePercent Type = "percent"
	TypeFixed   Type = "fixed"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePercent, TypeFixed:
		return true
	default:
		return false
	}
}

// Discount is either a whole-number percentage of the subtotal or a fixed
// amount in currency minor units.
type Discount struct {
	typ   Type
	value int64
}

func NewDiscount(typ Type, value int64) (Discount, error) {
	switch typ {
	case TypePercent:
		if value <= 0 || value > 100 {
			return Discount{}, ErrInvalidDiscountPercent
		}
	case TypeFixed:
		if value <= 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	return Discount{typ: typ, value: value}, nil
}

func (d Discount) Type() Type   { return d.typ }
func (d Discount) Value() int64 { return d.value }

// AmountFor computes the discount in minor units, rounded half-up for
// percentages and clamped so it never exceeds the subtotal.
func (d Discount) AmountFor(subtotalCents int64) int64 {
	if subtotalCents <= 0 {
		return 0
	}

	var amount int64
	switch d.typ {
	case TypePercent:
		amount = (subtotalCents*d.value + 50) / 100
	case TypeFixed:
		amount = d.value
	}

	if amount > subtotalCents {
		return subtotalCents
	}
	return amount
}
