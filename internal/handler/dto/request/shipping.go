package request

import "storefront/internal/usecase/commands"

type ShippingQuoteRequest struct {
	PostalCode  string `form:"postal_code" binding:"required"`
	WeightGrams int32  `form:"weight" binding:"required,gt=0"`
	LengthCm    int32  `form:"length" binding:"required,gt=0"`
	WidthCm     int32  `form:"width" binding:"required,gt=0"`
	HeightCm    int32  `form:"height" binding:"required,gt=0"`
}

func (r ShippingQuoteRequest) Dims() commands.PackageDims {
	return commands.PackageDims{
		WeightGrams: r.WeightGrams,
		LengthCm:    r.LengthCm,
		WidthCm:     r.WidthCm,
		HeightCm:    r.HeightCm,
	}
}
