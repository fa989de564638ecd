package commands

import "storefront/internal/pkg/errs"

// Sentinel errors for the command layer. Handlers map these onto HTTP
// statuses; causes stay attached via errs.Mark for logging.
var (
	ErrValidation        = errs.New("validation error")
	ErrCouponInvalid     = errs.New("coupon invalid")
	ErrCouponNotFound    = errs.New("coupon not found")
	ErrOrderNotFound     = errs.New("order not found")
	ErrProductNotFound   = errs.New("product not found")
	ErrFavoriteNotFound  = errs.New("favorite not found")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrNotDispatchable   = errs.New("order not eligible for dispatch")
	ErrPaymentProvider   = errs.New("payment provider error")
	ErrDeliveryProvider  = errs.New("delivery provider error")
	ErrShippingProvider  = errs.New("shipping provider error")
	ErrConfiguration     = errs.New("missing required configuration")
	ErrDatabaseOperation = errs.New("database operation failed")
)
