//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"
	commandsmock "storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	orders   *commandsmock.MockOrderRepository
	messages *commandsmock.MockMessageRepository
	events   *commandsmock.MockEventPublisher
	uc       commands.OrderCommands
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &orderFixture{
		orders:   commandsmock.NewMockOrderRepository(ctrl),
		messages: commandsmock.NewMockMessageRepository(ctrl),
		events:   commandsmock.NewMockEventPublisher(ctrl),
	}
	f.uc = commands.NewOrderCommands(f.orders, f.messages, f.events, nil)
	return f
}

func storedOrder(id int64, status order.Status) *order.Order {
	return &order.Order{
		ID:            id,
		CustomerName:  "Ana Souza",
		CustomerPhone: "5511999990000",
		Status:        status,
	}
}

func TestSetStatus(t *testing.T) {
	t.Run("pending to paid cancels the campaign", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusPending), nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(1), order.StatusPending, order.StatusPaid).
			Return(true, nil)
		f.messages.EXPECT().CancelPending(gomock.Any(), "5511999990000", notification.WinbackTypes()).
			Return(int64(4), nil)
		f.events.EXPECT().Publish(gomock.Any(), "order-1", gomock.Any()).Return(nil)

		err := f.uc.SetStatus(context.Background(), 1, order.StatusPaid)
		require.NoError(t, err)
	})

	t.Run("cancelling keeps the campaign pending", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusPending), nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(1), order.StatusPending, order.StatusCancelled).
			Return(true, nil)
		// No CancelPending expectation: cancelled orders keep their follow-up.
		f.events.EXPECT().Publish(gomock.Any(), "order-1", gomock.Any()).Return(nil)

		err := f.uc.SetStatus(context.Background(), 1, order.StatusCancelled)
		require.NoError(t, err)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusPaid), nil)

		err := f.uc.SetStatus(context.Background(), 1, order.StatusPaid)
		require.NoError(t, err)
	})

	t.Run("disallowed transition is rejected", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusCompleted), nil)

		err := f.uc.SetStatus(context.Background(), 1, order.StatusPending)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("unknown status is rejected before any lookup", func(t *testing.T) {
		f := newOrderFixture(t)

		err := f.uc.SetStatus(context.Background(), 1, order.Status("shipped"))
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(99)).
			Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

		err := f.uc.SetStatus(context.Background(), 99, order.StatusPaid)
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("losing the race to the same status succeeds", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusPending), nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(1), order.StatusPending, order.StatusPaid).
			Return(false, nil)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusPaid), nil)

		err := f.uc.SetStatus(context.Background(), 1, order.StatusPaid)
		require.NoError(t, err)
	})

	t.Run("losing the race to a different status conflicts", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusPending), nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(1), order.StatusPending, order.StatusPaid).
			Return(false, nil)
		f.orders.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, order.StatusCancelled), nil)

		err := f.uc.SetStatus(context.Background(), 1, order.StatusPaid)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}
