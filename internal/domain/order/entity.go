package order

import (
	"errors"
	"time"

	"storefront/internal/pkg/phone"
)

var (
	ErrEmptyCustomerName    = errors.New("customer name is required")
	ErrInvalidPhone         = errors.New("customer phone is invalid")
	ErrNoItems              = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrDiscountExceedsTotal = errors.New("discount cannot exceed subtotal")
	ErrInvalidInitialStatus = errors.New("initial status not allowed for payment method")
)

type Item struct {
	OrderID        int64
	ProductID      int64
	ProductName    string
	VariantName    *string
	Quantity       int32
	UnitPriceCents int64
}

func (i Item) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

type Order struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string // digits-only canonical form
	CustomerEmail   string
	CustomerAddress string
	CustomerCity    string
	Items           []Item
	SubtotalCents   int64
	DiscountCents   int64
	TotalCents      int64
	PaymentMethod   PaymentMethod
	Status          Status
	CouponCode      *string
	DeliveryID      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Draft carries validated checkout input up to the persistence boundary.
// Unit prices are catalog snapshots taken at checkout time.
type Draft struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	CustomerCity    string
	Items           []Item
	PaymentMethod   PaymentMethod
	InitialStatus   Status
	CouponCode      *string
}

// NewOrder validates a draft and assembles the money fields. discountCents
// comes from the coupon evaluator; totals are always recomputed server-side,
// never trusted from the client.
func NewOrder(draft Draft, discountCents int64) (*Order, error) {
	if draft.CustomerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if !phone.IsValid(draft.CustomerPhone) {
		return nil, ErrInvalidPhone
	}
	if len(draft.Items) == 0 {
		return nil, ErrNoItems
	}
	if !draft.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	var subtotal int64
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		subtotal += item.LineTotalCents()
	}

	if discountCents < 0 || discountCents > subtotal {
		return nil, ErrDiscountExceedsTotal
	}

	status, err := resolveInitialStatus(draft.PaymentMethod, draft.InitialStatus)
	if err != nil {
		return nil, err
	}

	return &Order{
		CustomerName:    draft.CustomerName,
		CustomerPhone:   phone.Normalize(draft.CustomerPhone),
		CustomerEmail:   draft.CustomerEmail,
		CustomerAddress: draft.CustomerAddress,
		CustomerCity:    draft.CustomerCity,
		Items:           draft.Items,
		SubtotalCents:   subtotal,
		DiscountCents:   discountCents,
		TotalCents:      subtotal - discountCents,
		PaymentMethod:   draft.PaymentMethod,
		Status:          status,
		CouponCode:      draft.CouponCode,
	}, nil
}

// Online payment paths always start pending; only in-person sales may be
// created directly as paid or completed.
func resolveInitialStatus(method PaymentMethod, requested Status) (Status, error) {
	if requested == "" {
		return StatusPending, nil
	}
	if !requested.IsValid() {
		return "", ErrInvalidInitialStatus
	}
	if requested == StatusPending {
		return StatusPending, nil
	}
	if method == PaymentPOS && (requested == StatusPaid || requested == StatusCompleted) {
		return requested, nil
	}
	return "", ErrInvalidInitialStatus
}

func (o *Order) IsDispatched() bool {
	return o.DeliveryID != nil && *o.DeliveryID != ""
}

// DispatchEligible reports whether the order may be handed to the delivery
// provider. Cancelled and still-pending orders never ship.
func (o *Order) DispatchEligible() bool {
	return o.Status == StatusPaid || o.Status == StatusCompleted
}
