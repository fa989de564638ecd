package queries

import (
	"context"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/phone"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrInvalidQuery  = errs.New("invalid query")
)

// OrderReadStore is the read-side projection of orders.
type OrderReadStore interface {
	FindByID(ctx context.Context, id int64) (*OrderView, error)
	List(ctx context.Context, f OrderFilter) ([]*OrderView, error)
	SearchByPhone(ctx context.Context, digits string, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id int64) (*OrderView, error)
	ListOrders(ctx context.Context, f OrderFilter) ([]*OrderView, error)
	LookupByPhone(ctx context.Context, rawPhone string) ([]*OrderView, error)
}

type orderQueryService struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueryService{store: store}
}

func (s *orderQueryService) GetOrder(ctx context.Context, id int64) (*OrderView, error) {
	view, err := s.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (s *orderQueryService) ListOrders(ctx context.Context, f OrderFilter) ([]*OrderView, error) {
	if f.Status != nil && !order.Status(*f.Status).IsValid() {
		return nil, errs.Mark(errs.Newf("unknown status %q", *f.Status), ErrInvalidQuery)
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.store.List(ctx, f)
}

func (s *orderQueryService) LookupByPhone(ctx context.Context, rawPhone string) ([]*OrderView, error) {
	digits := phone.Normalize(rawPhone)
	if len(digits) < MinPhoneLookupDigits {
		return nil, errs.Mark(
			errs.Newf("phone lookup needs at least %d digits", MinPhoneLookupDigits),
			ErrInvalidQuery,
		)
	}
	return s.store.SearchByPhone(ctx, digits, PhoneLookupLimit)
}
