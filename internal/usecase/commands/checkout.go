package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/phone"
	"storefront/internal/telemetry"
)

type CartItem struct {
	ProductID   int64
	VariantName *string
	Quantity    int32
}

type CustomerInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
	City    string
}

type CheckoutInput struct {
	Customer      CustomerInfo
	Items         []CartItem
	PaymentMethod order.PaymentMethod
	// InitialStatus is honored for pos sales only; online paths always
	// start pending.
	InitialStatus order.Status
	CouponCode    *string
}

// CheckoutResult always carries the order id once persistence succeeded,
// even when a later step failed; the order row is durable either way.
type CheckoutResult struct {
	OrderID     int64
	WhatsAppURL string
	Pix         *PixCharge
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}

type checkoutUseCase struct {
	uow         UnitOfWork
	orderRepo   OrderRepository
	couponRepo  CouponRepository
	messageRepo MessageRepository
	catalog     CatalogReader
	payment     PaymentGateway
	events      EventPublisher
	metrics     *telemetry.Metrics
	db          repository.DB
	clock       clock.Clock
	cfg         config.Config
}

func NewCheckoutCommands(
	uow UnitOfWork,
	orderRepo OrderRepository,
	couponRepo CouponRepository,
	messageRepo MessageRepository,
	catalog CatalogReader,
	payment PaymentGateway,
	events EventPublisher,
	metrics *telemetry.Metrics,
	db repository.DB,
	clk clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutUseCase{
		uow:         uow,
		orderRepo:   orderRepo,
		couponRepo:  couponRepo,
		messageRepo: messageRepo,
		catalog:     catalog,
		payment:     payment,
		events:      events,
		metrics:     metrics,
		db:          db,
		clock:       clk,
		cfg:         cfg,
	}
}

// Checkout takes a cart to a durable order and hands back whatever the
// chosen payment path needs. Everything before the order insert fails fast
// with no side effects; everything after leaves the persisted order in place
// and reports the failure alongside the order id. Persistence and the
// payment-provider call are intentionally not one transaction: a flaky
// provider must never cost us the sale record.
func (u *checkoutUseCase) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	result, err := u.checkout(ctx, input)
	u.metrics.CheckoutCompleted(string(input.PaymentMethod), checkoutOutcome(result, err))
	return result, err
}

// checkoutOutcome labels the counter: a non-nil result with an error means
// the order was persisted before a later step failed.
func checkoutOutcome(result *CheckoutResult, err error) string {
	switch {
	case err == nil:
		return "success"
	case result != nil:
		return "failed"
	default:
		return "rejected"
	}
}

func (u *checkoutUseCase) checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	items, err := u.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotalCents()
	}

	discount, appliedCode, err := u.priceCoupon(ctx, subtotal, input.CouponCode)
	if err != nil {
		return nil, err
	}

	draft := order.Draft{
		CustomerName:    input.Customer.Name,
		CustomerPhone:   input.Customer.Phone,
		CustomerEmail:   input.Customer.Email,
		CustomerAddress: input.Customer.Address,
		CustomerCity:    input.Customer.City,
		Items:           items,
		PaymentMethod:   input.PaymentMethod,
		InitialStatus:   input.InitialStatus,
		CouponCode:      appliedCode,
	}

	entity, err := order.NewOrder(draft, discount)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	orderID, err := u.persistOrder(ctx, entity, appliedCode)
	if err != nil {
		return nil, err
	}
	entity.ID = orderID

	result := &CheckoutResult{OrderID: orderID}

	// The order exists from here on; failures below are reported but never
	// undo it.
	u.publishCreated(ctx, entity)
	u.scheduleCampaign(ctx, entity)

	switch input.PaymentMethod {
	case order.PaymentWhatsApp:
		link, err := u.buildWhatsAppLink(entity)
		if err != nil {
			return result, err
		}
		result.WhatsAppURL = link

	case order.PaymentMercadoPago:
		charge, err := u.payment.CreateCharge(ctx, entity)
		if err != nil {
			return result, errs.Mark(err, ErrPaymentProvider)
		}
		result.Pix = charge

	case order.PaymentPOS:
		// In-person sale; nothing external to call.
	}

	return result, nil
}

func (u *checkoutUseCase) snapshotItems(ctx context.Context, cart []CartItem) ([]order.Item, error) {
	if len(cart) == 0 {
		return nil, errs.Mark(order.ErrNoItems, ErrValidation)
	}

	items := make([]order.Item, 0, len(cart))
	for _, ci := range cart {
		product, err := u.catalog.Product(ctx, ci.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}
		if !product.Active {
			return nil, ErrProductNotFound
		}

		price := product.PriceCents
		if ci.VariantName != nil && *ci.VariantName != "" {
			variant, err := u.catalog.Variant(ctx, ci.ProductID, *ci.VariantName)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return nil, ErrProductNotFound
				}
				return nil, errs.Mark(err, ErrDatabaseOperation)
			}
			if variant.PriceCents != nil {
				price = *variant.PriceCents
			}
		}

		items = append(items, order.Item{
			ProductID:      ci.ProductID,
			ProductName:    product.Name,
			VariantName:    ci.VariantName,
			Quantity:       ci.Quantity,
			UnitPriceCents: price,
		})
	}

	return items, nil
}

func (u *checkoutUseCase) priceCoupon(ctx context.Context, subtotal int64, code *string) (int64, *string, error) {
	if code == nil || *code == "" {
		return 0, nil, nil
	}

	entity, err := u.couponRepo.FindByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil, errs.Mark(ErrCouponNotFound, ErrCouponInvalid)
		}
		return 0, nil, errs.Mark(err, ErrDatabaseOperation)
	}

	if err := entity.ValidateFor(subtotal, u.clock.Now()); err != nil {
		return 0, nil, errs.Mark(err, ErrCouponInvalid)
	}

	applied := entity.Code().String()
	return entity.DiscountFor(subtotal), &applied, nil
}

// persistOrder is the durability point: order, items and the coupon
// redemption commit atomically so a coupon can never be over-redeemed by
// concurrent checkouts.
func (u *checkoutUseCase) persistOrder(ctx context.Context, entity *order.Order, couponCode *string) (int64, error) {
	var orderID int64
	err := u.uow.Within(ctx, func(ctx context.Context, db repository.DB) error {
		if couponCode != nil {
			redeemed, err := u.couponRepo.Redeem(ctx, db, *couponCode)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
			if !redeemed {
				// The conditional increment refused: the coupon hit its limit,
				// expired, or was deactivated since validation.
				return errs.Mark(coupon.ErrNoLongerApplicable, ErrCouponInvalid)
			}
		}

		id, err := u.orderRepo.Create(ctx, db, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// scheduleCampaign enqueues the recovery and winback steps for orders that
// still need payment follow-through. Scheduling failures are logged, never
// surfaced: the order itself is already safe.
func (u *checkoutUseCase) scheduleCampaign(ctx context.Context, entity *order.Order) {
	if entity.Status != order.StatusPending {
		return
	}

	now := u.clock.Now()
	entityRef := fmt.Sprintf("order:%d", entity.ID)

	for _, step := range notification.WinbackSchedule(now) {
		content := campaignContent(step.Type, entity.CustomerName)
		_, err := u.messageRepo.Enqueue(ctx, u.db, notification.EnqueueParams{
			Phone:       entity.CustomerPhone,
			Content:     content,
			Type:        step.Type,
			ScheduledAt: step.SendAt,
			DedupeKey:   notification.DedupeKey(entity.CustomerPhone, step.Type, entityRef),
		})
		if err != nil {
			slog.Warn("failed to schedule campaign message",
				"order_id", entity.ID, "type", string(step.Type), "error", err.Error())
		}
	}
}

func campaignContent(t notification.Type, customerName string) string {
	switch t {
	case notification.TypeWinback15:
		return notification.WinbackContent(customerName, 15)
	case notification.TypeWinback30:
		return notification.WinbackContent(customerName, 30)
	case notification.TypeWinback45:
		return notification.WinbackContent(customerName, 45)
	default:
		return notification.RecoveryContent(customerName)
	}
}

func (u *checkoutUseCase) publishCreated(ctx context.Context, entity *order.Order) {
	event := map[string]any{
		"type":           "order.created",
		"order_id":       entity.ID,
		"total_cents":    entity.TotalCents,
		"payment_method": string(entity.PaymentMethod),
		"status":         string(entity.Status),
	}
	if err := u.events.Publish(ctx, fmt.Sprintf("order-%d", entity.ID), event); err != nil {
		slog.Warn("failed to publish order created event", "order_id", entity.ID, "error", err.Error())
	}
}

// buildWhatsAppLink renders the deterministic order summary and wraps it in
// a wa.me deep link. No external call is made; the only failure mode is a
// missing destination number.
func (u *checkoutUseCase) buildWhatsAppLink(entity *order.Order) (string, error) {
	number := phone.Normalize(u.cfg.WhatsApp.StoreNumber)
	if number == "" {
		return "", errs.Mark(errs.New("whatsapp store number not configured"), ErrConfiguration)
	}

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(orderSummary(entity)), nil
}

func orderSummary(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d\n\n", o.ID)
	for _, item := range o.Items {
		name := item.ProductName
		if item.VariantName != nil && *item.VariantName != "" {
			name += " (" + *item.VariantName + ")"
		}
		fmt.Fprintf(&b, "%dx %s - %s\n", item.Quantity, name, formatCents(item.LineTotalCents()))
	}
	if o.DiscountCents > 0 {
		fmt.Fprintf(&b, "\nSubtotal: %s", formatCents(o.SubtotalCents))
		fmt.Fprintf(&b, "\nDiscount: -%s", formatCents(o.DiscountCents))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\n", formatCents(o.TotalCents))
	fmt.Fprintf(&b, "%s\n%s, %s", o.CustomerName, o.CustomerAddress, o.CustomerCity)
	return b.String()
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
