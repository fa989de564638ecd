package components

import (
	"storefront/internal/infra/gateway"
	"storefront/internal/telemetry"
	"storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		telemetry.NewMetrics,
		gateway.NewWhatsAppClient,
		gateway.NewSMTPEmailSender,
		fx.Annotate(
			gateway.NewChannelSender,
			fx.As(new(commands.MessageSender)),
		),
		fx.Annotate(
			gateway.NewMercadoPagoGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			gateway.NewDeliveryClient,
			fx.As(new(commands.DeliveryGateway)),
		),
		fx.Annotate(
			gateway.NewShippingClient,
			fx.As(new(commands.ShippingGateway)),
		),
	),
)
