package commands

import (
	"context"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

type ShippingCommands interface {
	Quote(ctx context.Context, destPostalCode string, pkg PackageDims) ([]ShippingOption, error)
}

type shippingUseCase struct {
	gateway ShippingGateway
	cfg     config.ShippingConfig
}

func NewShippingCommands(gateway ShippingGateway, cfg config.Config) ShippingCommands {
	return &shippingUseCase{gateway: gateway, cfg: cfg.Shipping}
}

func (u *shippingUseCase) Quote(ctx context.Context, destPostalCode string, pkg PackageDims) ([]ShippingOption, error) {
	if destPostalCode == "" {
		return nil, errs.Mark(errs.New("destination postal code is required"), ErrValidation)
	}
	if u.cfg.OriginPostalCode == "" {
		return nil, errs.Mark(errs.New("origin postal code not configured"), ErrConfiguration)
	}

	options, err := u.gateway.Quote(ctx, u.cfg.OriginPostalCode, destPostalCode, pkg)
	if err != nil {
		return nil, errs.Mark(err, ErrShippingProvider)
	}
	return options, nil
}
