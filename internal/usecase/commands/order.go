package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/errs"
)

type OrderCommands interface {
	SetStatus(ctx context.Context, orderID int64, next order.Status) error
}

type orderUseCase struct {
	orderRepo   OrderRepository
	messageRepo MessageRepository
	events      EventPublisher
	db          repository.DB
}

func NewOrderCommands(
	orderRepo OrderRepository,
	messageRepo MessageRepository,
	events EventPublisher,
	db repository.DB,
) OrderCommands {
	return &orderUseCase{
		orderRepo:   orderRepo,
		messageRepo: messageRepo,
		events:      events,
		db:          db,
	}
}

// SetStatus advances the order lifecycle with a compare-and-set. A
// concurrent writer that already applied the same transition makes this a
// no-op rather than an error; anything off the allowed matrix is rejected.
func (u *orderUseCase) SetStatus(ctx context.Context, orderID int64, next order.Status) error {
	if !next.IsValid() {
		return errs.Mark(errs.New("unknown status"), ErrValidation)
	}

	current, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if current.Status == next {
		return nil
	}
	if !current.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	applied, err := u.orderRepo.UpdateStatus(ctx, u.db, orderID, current.Status, next)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	if !applied {
		// Someone else moved the order first. If they landed on the same
		// status we wanted, that's fine; otherwise the transition is stale.
		observed, err := u.loadOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if observed.Status == next {
			return nil
		}
		return ErrInvalidTransition
	}

	u.afterTransition(ctx, current, next)
	return nil
}

func (u *orderUseCase) loadOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return o, nil
}

func (u *orderUseCase) afterTransition(ctx context.Context, o *order.Order, next order.Status) {
	// A completed purchase makes the pending recovery/winback campaign
	// irrelevant; drop whatever has not fired yet.
	if next == order.StatusPaid || next == order.StatusCompleted {
		if _, err := u.messageRepo.CancelPending(ctx, o.CustomerPhone, notification.WinbackTypes()); err != nil {
			slog.Warn("failed to cancel pending campaign messages",
				"order_id", o.ID, "error", err.Error())
		}
	}

	event := map[string]any{
		"type":     "order.status_changed",
		"order_id": o.ID,
		"from":     string(o.Status),
		"to":       string(next),
	}
	if err := u.events.Publish(ctx, fmt.Sprintf("order-%d", o.ID), event); err != nil {
		slog.Warn("failed to publish status change event", "order_id", o.ID, "error", err.Error())
	}
}
