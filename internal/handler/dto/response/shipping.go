package response

import "storefront/internal/usecase/commands"

type ShippingQuoteResponse struct {
	Options []commands.ShippingOption `json:"options"`
}
