package request

import (
	"strings"

	"storefront/internal/domain/order"
	"storefront/internal/usecase/commands"
)

type CheckoutItemRequest struct {
	ProductID   int64   `json:"product_id" binding:"required"`
	VariantName *string `json:"variant_name,omitempty"`
	Quantity    int32   `json:"quantity" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	CustomerName    string                `json:"customer_name" binding:"required"`
	CustomerPhone   string                `json:"customer_phone" binding:"required"`
	CustomerEmail   string                `json:"customer_email,omitempty"`
	CustomerAddress string                `json:"customer_address,omitempty"`
	CustomerCity    string                `json:"customer_city,omitempty"`
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod   string                `json:"payment_method" binding:"required"`
	// InitialStatus only matters for point-of-sale checkouts.
	InitialStatus *string `json:"initial_status,omitempty"`
	CouponCode    *string `json:"coupon_code,omitempty"`
}

func (r CheckoutRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CheckoutRequest) ToInput() commands.CheckoutInput {
	items := make([]commands.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.CartItem{
			ProductID:   it.ProductID,
			VariantName: it.VariantName,
			Quantity:    it.Quantity,
		})
	}

	var initial order.Status
	if r.InitialStatus != nil {
		initial = order.Status(*r.InitialStatus)
	}

	return commands.CheckoutInput{
		Customer: commands.CustomerInfo{
			Name:    strings.TrimSpace(r.CustomerName),
			Phone:   r.CustomerPhone,
			Email:   strings.TrimSpace(r.CustomerEmail),
			Address: strings.TrimSpace(r.CustomerAddress),
			City:    strings.TrimSpace(r.CustomerCity),
		},
		Items:         items,
		PaymentMethod: order.PaymentMethod(r.PaymentMethod),
		InitialStatus: initial,
		CouponCode:    r.GetCouponCode(),
	}
}
