package request

import (
	"strings"

	"storefront/internal/usecase/commands"
)

type SubscribeRestockRequest struct {
	ProductID   int64   `json:"product_id" binding:"required"`
	VariantName *string `json:"variant_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

func (r SubscribeRestockRequest) ToInput() commands.SubscribeInput {
	return commands.SubscribeInput{
		ProductID:    r.ProductID,
		VariantName:  trimPtr(r.VariantName),
		ContactEmail: trimPtr(r.Email),
		ContactPhone: trimPtr(r.Phone),
	}
}

type RestockEventRequest struct {
	VariantName *string `json:"variant_name,omitempty"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
