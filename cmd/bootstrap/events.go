package bootstrap

import (
	"context"

	"storefront/internal/infra/events"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	publisher, cleanup := events.NewPublisher(cfg)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher
}
