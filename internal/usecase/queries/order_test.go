//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/infra"
	"storefront/internal/usecase/queries"
	queriesmock "storefront/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOrderQueries(t *testing.T) (*queriesmock.MockOrderReadStore, queries.OrderQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	return store, queries.NewOrderQueries(store)
}

func TestGetOrder(t *testing.T) {
	t.Run("returns the view", func(t *testing.T) {
		store, q := newOrderQueries(t)
		view := &queries.OrderView{ID: 1, Status: "pending"}
		store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(view, nil)

		got, err := q.GetOrder(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		store, q := newOrderQueries(t)
		store.EXPECT().FindByID(gomock.Any(), int64(9)).
			Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetOrder(context.Background(), 9)
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("defaults and clamps the page size", func(t *testing.T) {
		cases := []struct {
			name      string
			limit     int32
			wantLimit int32
		}{
			{name: "zero gets the default", limit: 0, wantLimit: queries.DefaultPageSize},
			{name: "negative gets the default", limit: -5, wantLimit: queries.DefaultPageSize},
			{name: "in range passes through", limit: 25, wantLimit: 25},
			{name: "oversized is clamped", limit: 10000, wantLimit: queries.MaxPageSize},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store, q := newOrderQueries(t)
				store.EXPECT().List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f queries.OrderFilter) ([]*queries.OrderView, error) {
						assert.Equal(t, tc.wantLimit, f.Limit)
						return nil, nil
					})

				_, err := q.ListOrders(context.Background(), queries.OrderFilter{Limit: tc.limit})
				require.NoError(t, err)
			})
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, q := newOrderQueries(t)
		status := "shipped"

		_, err := q.ListOrders(context.Background(), queries.OrderFilter{Status: &status})
		assert.ErrorIs(t, err, queries.ErrInvalidQuery)
	})
}

func TestLookupByPhone(t *testing.T) {
	t.Run("searches on normalized digits", func(t *testing.T) {
		store, q := newOrderQueries(t)
		store.EXPECT().SearchByPhone(gomock.Any(), "99990000", int32(queries.PhoneLookupLimit)).
			Return([]*queries.OrderView{{ID: 1}}, nil)

		views, err := q.LookupByPhone(context.Background(), "(9999)-0000")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("rejects lookups with too few digits", func(t *testing.T) {
		_, q := newOrderQueries(t)

		_, err := q.LookupByPhone(context.Background(), "+1 2-3")
		assert.ErrorIs(t, err, queries.ErrInvalidQuery)
	})
}
