package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/restock"
	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/phone"
)

type SubscribeInput struct {
	ProductID    int64
	VariantName  *string
	ContactEmail *string
	ContactPhone *string
}

type RestockCommands interface {
	Subscribe(ctx context.Context, input SubscribeInput) (int64, error)
	OnRestock(ctx context.Context, productID int64, variantName *string) (int, error)
}

type restockUseCase struct {
	uow         UnitOfWork
	restockRepo RestockRepository
	messageRepo MessageRepository
	catalog     CatalogReader
	clock       clock.Clock
}

func NewRestockCommands(
	uow UnitOfWork,
	restockRepo RestockRepository,
	messageRepo MessageRepository,
	catalog CatalogReader,
	clk clock.Clock,
) RestockCommands {
	return &restockUseCase{
		uow:         uow,
		restockRepo: restockRepo,
		messageRepo: messageRepo,
		catalog:     catalog,
		clock:       clk,
	}
}

func (u *restockUseCase) Subscribe(ctx context.Context, input SubscribeInput) (int64, error) {
	if _, err := u.catalog.Product(ctx, input.ProductID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperation)
	}

	contactPhone := input.ContactPhone
	if contactPhone != nil && *contactPhone != "" {
		normalized := phone.Normalize(*contactPhone)
		if len(normalized) == 0 {
			return 0, errs.Mark(restock.ErrContactRequired, ErrValidation)
		}
		contactPhone = &normalized
	}

	sub, err := restock.NewSubscription(input.ProductID, input.VariantName, input.ContactEmail, contactPhone)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	id, err := u.restockRepo.Create(ctx, sub)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperation)
	}
	return id, nil
}

// OnRestock fans a restock event out to every live subscription for the
// product. Consuming the subscription and enqueuing its notification commit
// together, so a subscription can neither be notified twice nor consumed
// without its message making it into the queue.
func (u *restockUseCase) OnRestock(ctx context.Context, productID int64, variantName *string) (int, error) {
	product, err := u.catalog.Product(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperation)
	}

	notified := 0
	err = u.uow.Within(ctx, func(ctx context.Context, db repository.DB) error {
		subs, err := u.restockRepo.FindUnnotifiedByProduct(ctx, db, productID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		now := u.clock.Now()
		content := notification.RestockContent(product.Name, variantName)

		for _, sub := range subs {
			if !sub.Matches(variantName) {
				continue
			}

			consumed, err := u.restockRepo.MarkNotified(ctx, db, sub.ID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
			if !consumed {
				// A concurrent restock event got here first.
				continue
			}

			params := notification.EnqueueParams{
				Content:     content,
				Type:        notification.TypeRestock,
				ScheduledAt: now,
			}
			recipient := ""
			if sub.ContactPhone != nil && *sub.ContactPhone != "" {
				params.Phone = *sub.ContactPhone
				recipient = params.Phone
			} else if sub.ContactEmail != nil {
				params.Email = *sub.ContactEmail
				recipient = params.Email
			}
			params.DedupeKey = notification.DedupeKey(
				recipient, notification.TypeRestock, fmt.Sprintf("product:%d:sub:%d", productID, sub.ID))

			if _, err := u.messageRepo.Enqueue(ctx, db, params); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
			notified++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if notified > 0 {
		slog.Info("restock notifications enqueued", "product_id", productID, "count", notified)
	}
	return notified, nil
}
