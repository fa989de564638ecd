package commands

import (
	"context"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/domain/restock"
	"storefront/internal/infra/repository"
)

// UnitOfWork runs fn inside a single database transaction. Repository
// methods that accept a repository.DB participate in it.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, db repository.DB) error) error
}

type OrderRepository interface {
	Create(ctx context.Context, db repository.DB, o *order.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (*order.Order, error)
	UpdateStatus(ctx context.Context, db repository.DB, id int64, from, to order.Status) (bool, error)
	SetDeliveryID(ctx context.Context, id int64, deliveryID string) (bool, error)
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	Redeem(ctx context.Context, db repository.DB, code string) (bool, error)
}

type MessageRepository interface {
	Enqueue(ctx context.Context, db repository.DB, p notification.EnqueueParams) (bool, error)
	Due(ctx context.Context, now time.Time, limit int32) ([]*notification.Message, error)
	MarkSent(ctx context.Context, id int64, at time.Time) (bool, error)
	MarkFailedAttempt(ctx context.Context, id int64, maxAttempts int32) error
	CancelPending(ctx context.Context, phone string, types []notification.Type) (int64, error)
}

type RestockRepository interface {
	Create(ctx context.Context, sub *restock.Subscription) (int64, error)
	FindUnnotifiedByProduct(ctx context.Context, db repository.DB, productID int64) ([]*restock.Subscription, error)
	MarkNotified(ctx context.Context, db repository.DB, id int64) (bool, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, userPhone string, productID int64) (int64, error)
	ListByPhone(ctx context.Context, userPhone string) ([]repository.Favorite, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

// CatalogReader is the read-only slice of the product catalog the checkout
// and restock flows need.
type CatalogReader interface {
	Product(ctx context.Context, id int64) (*repository.ProductSnapshot, error)
	Variant(ctx context.Context, productID int64, name string) (*repository.VariantSnapshot, error)
}

// PixCharge is the provider-issued payment reference shown to the buyer.
type PixCharge struct {
	QRText      string    `json:"qrText"`
	QRImage     string    `json:"qrImage"` // base64 PNG
	AmountCents int64     `json:"amountCents"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type PaymentGateway interface {
	CreateCharge(ctx context.Context, o *order.Order) (*PixCharge, error)
}

type DeliveryGateway interface {
	CreateDelivery(ctx context.Context, o *order.Order) (string, error)
}

type PackageDims struct {
	WeightGrams int32 `json:"weightGrams"`
	LengthCm    int32 `json:"lengthCm"`
	WidthCm     int32 `json:"widthCm"`
	HeightCm    int32 `json:"heightCm"`
}

type ShippingOption struct {
	ServiceID  string `json:"serviceId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	EtaDays    int32  `json:"etaDays"`
}

type ShippingGateway interface {
	Quote(ctx context.Context, originPostal, destPostal string, pkg PackageDims) ([]ShippingOption, error)
}

// MessageSender delivers a materialized message over whichever channel the
// recipient has. It must tolerate duplicate sends for the same logical
// message; the queue only guarantees at-least-once.
type MessageSender interface {
	Send(ctx context.Context, m *notification.Message) error
}

// EventPublisher emits order lifecycle events for downstream consumers.
// Publishing is best-effort and never fails a command.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}
