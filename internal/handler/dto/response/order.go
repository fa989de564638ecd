package response

import (
	"time"

	"storefront/internal/usecase/queries"
)

type OrderItemResponse struct {
	ProductID      int64   `json:"productId"`
	ProductName    string  `json:"productName"`
	VariantName    *string `json:"variantName,omitempty"`
	Quantity       int32   `json:"quantity"`
	UnitPriceCents int64   `json:"unitPriceCents"`
}

type OrderResponse struct {
	ID              int64               `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerEmail   string              `json:"customerEmail,omitempty"`
	CustomerAddress string              `json:"customerAddress,omitempty"`
	CustomerCity    string              `json:"customerCity,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	SubtotalCents   int64               `json:"subtotalCents"`
	DiscountCents   int64               `json:"discountCents"`
	TotalCents      int64               `json:"totalCents"`
	PaymentMethod   string              `json:"paymentMethod"`
	Status          string              `json:"status"`
	CouponCode      *string             `json:"couponCode,omitempty"`
	DeliveryID      *string             `json:"deliveryId,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, OrderItemResponse{
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			VariantName:    it.VariantName,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		})
	}
	return &OrderResponse{
		ID:              v.ID,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		CustomerEmail:   v.CustomerEmail,
		CustomerAddress: v.CustomerAddress,
		CustomerCity:    v.CustomerCity,
		Items:           items,
		SubtotalCents:   v.SubtotalCents,
		DiscountCents:   v.DiscountCents,
		TotalCents:      v.TotalCents,
		PaymentMethod:   v.PaymentMethod,
		Status:          v.Status,
		CouponCode:      v.CouponCode,
		DeliveryID:      v.DeliveryID,
		CreatedAt:       v.CreatedAt,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}
