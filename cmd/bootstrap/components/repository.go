package components

import (
	"storefront/internal/infra/readstore"
	repo_impl "storefront/internal/infra/repository"
	"storefront/internal/infra/uow"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(commands.UnitOfWork)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repo_impl.NewMessageRepository,
			fx.As(new(commands.MessageRepository)),
		),
		fx.Annotate(
			repo_impl.NewRestockRepository,
			fx.As(new(commands.RestockRepository)),
		),
		fx.Annotate(
			repo_impl.NewFavoriteRepository,
			fx.As(new(commands.FavoriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogReader)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)
