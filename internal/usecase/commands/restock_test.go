//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/restock"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/commands"
	commandsmock "storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type restockFixture struct {
	uow      *commandsmock.MockUnitOfWork
	subs     *commandsmock.MockRestockRepository
	messages *commandsmock.MockMessageRepository
	catalog  *commandsmock.MockCatalogReader
	clock    *clock.MockClock
	uc       commands.RestockCommands
}

func newRestockFixture(t *testing.T) *restockFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &restockFixture{
		uow:      commandsmock.NewMockUnitOfWork(ctrl),
		subs:     commandsmock.NewMockRestockRepository(ctrl),
		messages: commandsmock.NewMockMessageRepository(ctrl),
		catalog:  commandsmock.NewMockCatalogReader(ctrl),
		clock:    clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewRestockCommands(f.uow, f.subs, f.messages, f.catalog, f.clock)
	return f
}

func (f *restockFixture) expectProduct(id int64, name string) {
	f.catalog.EXPECT().Product(gomock.Any(), id).
		Return(&repository.ProductSnapshot{ID: id, Name: name, PriceCents: 2500, Active: true}, nil)
}

func (f *restockFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, repository.DB) error) error {
			return fn(ctx, nil)
		})
}

func strPtr(s string) *string { return &s }

func TestSubscribe(t *testing.T) {
	t.Run("stores a phone subscription in canonical form", func(t *testing.T) {
		f := newRestockFixture(t)
		f.expectProduct(1, "T-Shirt")
		f.subs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *restock.Subscription) (int64, error) {
				require.NotNil(t, sub.ContactPhone)
				assert.Equal(t, "5511999990000", *sub.ContactPhone)
				return 5, nil
			})

		id, err := f.uc.Subscribe(context.Background(), commands.SubscribeInput{
			ProductID:    1,
			ContactPhone: strPtr("+55 (11) 99999-0000"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("requires some contact", func(t *testing.T) {
		f := newRestockFixture(t)
		f.expectProduct(1, "T-Shirt")

		_, err := f.uc.Subscribe(context.Background(), commands.SubscribeInput{ProductID: 1})
		assert.ErrorIs(t, err, commands.ErrValidation)
	})
}

func TestOnRestock(t *testing.T) {
	sub := func(id int64, variant *string) *restock.Subscription {
		return &restock.Subscription{
			ID:           id,
			ProductID:    1,
			VariantName:  variant,
			ContactPhone: strPtr("5511999990000"),
		}
	}

	t.Run("notifies matching subscriptions once", func(t *testing.T) {
		f := newRestockFixture(t)
		f.expectProduct(1, "T-Shirt")
		f.expectWithin()
		f.subs.EXPECT().FindUnnotifiedByProduct(gomock.Any(), gomock.Any(), int64(1)).
			Return([]*restock.Subscription{sub(10, nil), sub(11, strPtr("Size G"))}, nil)
		f.subs.EXPECT().MarkNotified(gomock.Any(), gomock.Any(), int64(10)).Return(true, nil)
		f.messages.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DB, p notification.EnqueueParams) (bool, error) {
				assert.Equal(t, notification.TypeRestock, p.Type)
				assert.Equal(t, "5511999990000", p.Phone)
				assert.Equal(t, "restock:5511999990000:product:1:sub:10", p.DedupeKey)
				assert.Equal(t, f.clock.Now(), p.ScheduledAt)
				assert.Contains(t, p.Content, "T-Shirt")
				return true, nil
			})
		// Subscription 11 is variant-scoped and the event has no variant.

		notified, err := f.uc.OnRestock(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, notified)
	})

	t.Run("a consumed subscription is skipped", func(t *testing.T) {
		f := newRestockFixture(t)
		f.expectProduct(1, "T-Shirt")
		f.expectWithin()
		f.subs.EXPECT().FindUnnotifiedByProduct(gomock.Any(), gomock.Any(), int64(1)).
			Return([]*restock.Subscription{sub(10, nil)}, nil)
		f.subs.EXPECT().MarkNotified(gomock.Any(), gomock.Any(), int64(10)).Return(false, nil)

		notified, err := f.uc.OnRestock(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, notified)
	})

	t.Run("variant-scoped subscription matches its variant", func(t *testing.T) {
		f := newRestockFixture(t)
		f.expectProduct(1, "T-Shirt")
		f.expectWithin()
		f.subs.EXPECT().FindUnnotifiedByProduct(gomock.Any(), gomock.Any(), int64(1)).
			Return([]*restock.Subscription{sub(11, strPtr("Size G"))}, nil)
		f.subs.EXPECT().MarkNotified(gomock.Any(), gomock.Any(), int64(11)).Return(true, nil)
		f.messages.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DB, p notification.EnqueueParams) (bool, error) {
				assert.Contains(t, p.Content, "T-Shirt (Size G)")
				return true, nil
			})

		notified, err := f.uc.OnRestock(context.Background(), 1, strPtr("Size G"))
		require.NoError(t, err)
		assert.Equal(t, 1, notified)
	})
}

func TestFavorites(t *testing.T) {
	newFixture := func(t *testing.T) (*commandsmock.MockFavoriteRepository, *commandsmock.MockCatalogReader, commands.FavoriteCommands) {
		t.Helper()
		ctrl := gomock.NewController(t)
		favorites := commandsmock.NewMockFavoriteRepository(ctrl)
		catalog := commandsmock.NewMockCatalogReader(ctrl)
		return favorites, catalog, commands.NewFavoriteCommands(favorites, catalog)
	}

	t.Run("add normalizes the phone", func(t *testing.T) {
		favorites, catalog, uc := newFixture(t)
		catalog.EXPECT().Product(gomock.Any(), int64(1)).
			Return(&repository.ProductSnapshot{ID: 1, Name: "T-Shirt", Active: true}, nil)
		favorites.EXPECT().Add(gomock.Any(), "5511999990000", int64(1)).Return(int64(3), nil)

		id, err := uc.Add(context.Background(), "+55 11 99999-0000", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("add rejects a bad phone", func(t *testing.T) {
		_, _, uc := newFixture(t)

		_, err := uc.Add(context.Background(), "abc", 1)
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("remove of a missing favorite", func(t *testing.T) {
		favorites, _, uc := newFixture(t)
		favorites.EXPECT().Remove(gomock.Any(), int64(9)).Return(false, nil)

		err := uc.Remove(context.Background(), 9)
		assert.ErrorIs(t, err, commands.ErrFavoriteNotFound)
	})
}
