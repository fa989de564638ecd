package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// Create runs a checkout. A non-nil result alongside an error means the
// order row was persisted before the payment step failed; the client gets
// the error status but the order survives for manual follow-up.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), req.ToInput())
	if err != nil {
		if result != nil {
			httperr.AbortWithMappedErrorDetail(c, err, gin.H{"orderId": result.OrderID})
			return
		}
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
