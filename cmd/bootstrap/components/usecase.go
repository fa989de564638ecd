package components

import (
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutCommands,
		commands.NewOrderCommands,
		commands.NewDeliveryCommands,
		commands.NewNotificationCommands,
		commands.NewRestockCommands,
		commands.NewFavoriteCommands,
		commands.NewShippingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)
