package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithMappedError translates usecase sentinels into HTTP statuses.
// Unknown errors come back as 500 without leaking their message.
func AbortWithMappedError(c *gin.Context, err error) {
	AbortWithMappedErrorDetail(c, err, nil)
}

// AbortWithMappedErrorDetail maps like AbortWithMappedError but attaches a
// detail payload for errors that carry context the client should keep.
func AbortWithMappedErrorDetail(c *gin.Context, err error, detail any) {
	status, msg := statusFor(err)
	AbortWithError(c, status, err, msg, detail)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, commands.ErrValidation),
		errors.Is(err, queries.ErrInvalidQuery):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, commands.ErrCouponInvalid):
		return http.StatusUnprocessableEntity, "Coupon cannot be applied"
	case errors.Is(err, commands.ErrCouponNotFound):
		return http.StatusUnprocessableEntity, "Unknown coupon code"
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, queries.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, commands.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, commands.ErrFavoriteNotFound):
		return http.StatusNotFound, "Favorite not found"
	case errors.Is(err, commands.ErrInvalidTransition):
		return http.StatusConflict, "Status transition not allowed"
	case errors.Is(err, commands.ErrNotDispatchable):
		return http.StatusConflict, "Order not eligible for dispatch"
	case errors.Is(err, commands.ErrPaymentProvider):
		return http.StatusBadGateway, "Payment provider unavailable"
	case errors.Is(err, commands.ErrDeliveryProvider):
		return http.StatusBadGateway, "Delivery provider unavailable"
	case errors.Is(err, commands.ErrShippingProvider):
		return http.StatusBadGateway, "Shipping provider unavailable"
	case errors.Is(err, commands.ErrConfiguration):
		return http.StatusInternalServerError, "Service misconfigured"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
