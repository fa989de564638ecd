package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewRestockHandler,
		api.NewFavoriteHandler,
		api.NewShippingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
