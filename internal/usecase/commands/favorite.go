package commands

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/phone"
)

type FavoriteCommands interface {
	Add(ctx context.Context, userPhone string, productID int64) (int64, error)
	List(ctx context.Context, userPhone string) ([]repository.Favorite, error)
	Remove(ctx context.Context, id int64) error
}

type favoriteUseCase struct {
	favoriteRepo FavoriteRepository
	catalog      CatalogReader
}

func NewFavoriteCommands(favoriteRepo FavoriteRepository, catalog CatalogReader) FavoriteCommands {
	return &favoriteUseCase{favoriteRepo: favoriteRepo, catalog: catalog}
}

func (u *favoriteUseCase) Add(ctx context.Context, userPhone string, productID int64) (int64, error) {
	if !phone.IsValid(userPhone) {
		return 0, errs.Mark(errs.New("invalid phone"), ErrValidation)
	}
	if _, err := u.catalog.Product(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperation)
	}

	id, err := u.favoriteRepo.Add(ctx, phone.Normalize(userPhone), productID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperation)
	}
	return id, nil
}

func (u *favoriteUseCase) List(ctx context.Context, userPhone string) ([]repository.Favorite, error) {
	favs, err := u.favoriteRepo.ListByPhone(ctx, phone.Normalize(userPhone))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return favs, nil
}

func (u *favoriteUseCase) Remove(ctx context.Context, id int64) error {
	removed, err := u.favoriteRepo.Remove(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	if !removed {
		return ErrFavoriteNotFound
	}
	return nil
}
