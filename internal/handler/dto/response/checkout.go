package response

import "storefront/internal/usecase/commands"

type CheckoutResponse struct {
	OrderID     int64               `json:"orderId"`
	WhatsAppURL string              `json:"whatsappUrl,omitempty"`
	Pix         *commands.PixCharge `json:"pix,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:     r.OrderID,
		WhatsAppURL: r.WhatsAppURL,
		Pix:         r.Pix,
	}
}
