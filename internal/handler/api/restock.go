package api

import (
	"net/http"
	"strconv"

	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RestockHandler struct {
	cmds commands.RestockCommands
}

func NewRestockHandler(cmds commands.RestockCommands) *RestockHandler {
	return &RestockHandler{cmds: cmds}
}

func (h *RestockHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Subscribe(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subscriptionId": id})
}

// NotifyRestock is called when inventory comes back; it flips matching
// subscriptions to notified and queues their messages in the same
// transaction.
func (h *RestockHandler) NotifyRestock(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	var req reqdto.RestockEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	notified, err := h.cmds.OnRestock(c.Request.Context(), productID, req.VariantName)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notified": notified})
}
