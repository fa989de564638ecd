package queries

import "time"

type OrderItemView struct {
	ProductID      int64   `json:"productId"`
	ProductName    string  `json:"productName"`
	VariantName    *string `json:"variantName,omitempty"`
	Quantity       int32   `json:"quantity"`
	UnitPriceCents int64   `json:"unitPriceCents"`
}

type OrderView struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerAddress string          `json:"customerAddress"`
	CustomerCity    string          `json:"customerCity"`
	Items           []OrderItemView `json:"items"`
	SubtotalCents   int64           `json:"subtotalCents"`
	DiscountCents   int64           `json:"discountCents"`
	TotalCents      int64           `json:"totalCents"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	CouponCode      *string         `json:"couponCode,omitempty"`
	DeliveryID      *string         `json:"deliveryId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type OrderFilter struct {
	Status *string
	Limit  int32
	Offset int32
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200

	// Phone lookup is a deliberately loose substring match; requiring a
	// minimum number of digits keeps unrelated customers from colliding on
	// short sequences.
	PhoneLookupLimit     = 20
	MinPhoneLookupDigits = 4
)
