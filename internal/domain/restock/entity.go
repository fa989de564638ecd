package restock

import (
	"errors"
	"time"
)

var (
	ErrContactRequired  = errors.New("subscription requires a phone or email contact")
	ErrAlreadyNotified  = errors.New("subscription has already been notified")
	ErrInvalidProductID = errors.New("product id is required")
)

// Subscription records customer interest in an out-of-stock variant. It is
// consumed exactly once: a restock event sets Notified and the row is never
// reactivated. Customers subscribe again for the next stock-out cycle.
type Subscription struct {
	ID           int64
	ProductID    int64
	VariantName  *string // nil = any variant
	ContactEmail *string
	ContactPhone *string
	Notified     bool
	CreatedAt    time.Time
}

func NewSubscription(productID int64, variantName, contactEmail, contactPhone *string) (*Subscription, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	if emptyPtr(contactEmail) && emptyPtr(contactPhone) {
		return nil, ErrContactRequired
	}
	return &Subscription{
		ProductID:    productID,
		VariantName:  variantName,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
	}, nil
}

// Matches reports whether a restock of the given variant concerns this
// subscription. A nil subscription variant matches any restock.
func (s *Subscription) Matches(variantName *string) bool {
	if s.VariantName == nil {
		return true
	}
	if variantName == nil {
		return false
	}
	return *s.VariantName == *variantName
}

func (s *Subscription) MarkNotified() error {
	if s.Notified {
		return ErrAlreadyNotified
	}
	s.Notified = true
	return nil
}

func emptyPtr(s *string) bool {
	return s == nil || *s == ""
}
