package commands

import (
	"context"
	"errors"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/telemetry"
)

type DeliveryCommands interface {
	Dispatch(ctx context.Context, orderID int64) (string, error)
}

type deliveryUseCase struct {
	orderRepo OrderRepository
	gateway   DeliveryGateway
	metrics   *telemetry.Metrics
}

func NewDeliveryCommands(orderRepo OrderRepository, gateway DeliveryGateway, metrics *telemetry.Metrics) DeliveryCommands {
	return &deliveryUseCase{orderRepo: orderRepo, gateway: gateway, metrics: metrics}
}

// Dispatch hands a finalized order to the delivery provider exactly once.
// The stored delivery id is the idempotency guard: a second call returns the
// cached reference without touching the provider, and a provider failure
// records nothing so the order stays retriable.
func (u *deliveryUseCase) Dispatch(ctx context.Context, orderID int64) (string, error) {
	deliveryID, err := u.dispatch(ctx, orderID)
	u.metrics.DeliveryDispatched(dispatchOutcome(err))
	return deliveryID, err
}

func dispatchOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrDeliveryProvider):
		return "provider_error"
	default:
		return "rejected"
	}
}

func (u *deliveryUseCase) dispatch(ctx context.Context, orderID int64) (string, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	if o.IsDispatched() {
		return *o.DeliveryID, nil
	}
	if !o.DispatchEligible() {
		return "", ErrNotDispatchable
	}

	deliveryID, err := u.gateway.CreateDelivery(ctx, o)
	if err != nil {
		return "", errs.Mark(err, ErrDeliveryProvider)
	}

	stored, err := u.orderRepo.SetDeliveryID(ctx, orderID, deliveryID)
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperation)
	}
	if !stored {
		// A concurrent dispatch won the race; theirs is the reference of
		// record.
		o, err = u.loadOrder(ctx, orderID)
		if err != nil {
			return "", err
		}
		if o.IsDispatched() {
			return *o.DeliveryID, nil
		}
		return "", errs.Mark(errs.New("delivery id missing after concurrent dispatch"), ErrDatabaseOperation)
	}

	return deliveryID, nil
}

func (u *deliveryUseCase) loadOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return o, nil
}
