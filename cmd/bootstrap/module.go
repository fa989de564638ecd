package bootstrap

import (
	"storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	EventsModule,
	components.GatewayModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
