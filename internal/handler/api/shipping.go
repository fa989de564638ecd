package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ShippingHandler struct {
	cmds commands.ShippingCommands
}

func NewShippingHandler(cmds commands.ShippingCommands) *ShippingHandler {
	return &ShippingHandler{cmds: cmds}
}

func (h *ShippingHandler) Quote(c *gin.Context) {
	var req reqdto.ShippingQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	options, err := h.cmds.Quote(c.Request.Context(), req.PostalCode, req.Dims())
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ShippingQuoteResponse{Options: options})
}
