package api

import (
	"net/http"
	"strconv"

	"storefront/internal/domain/order"
	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds     commands.OrderCommands
	delivery commands.DeliveryCommands
	q        queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, delivery commands.DeliveryCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, delivery: delivery, q: q}
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetOrder(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) List(c *gin.Context) {
	var f queries.OrderFilter
	if v := c.Query("status"); v != "" {
		f.Status = &v
	}
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.ParseInt(v, 10, 32); e == nil {
			f.Limit = int32(iv)
		}
	}
	if v := c.Query("offset"); v != "" {
		if iv, e := strconv.ParseInt(v, 10, 32); e == nil {
			f.Offset = int32(iv)
		}
	}

	views, err := h.q.ListOrders(c.Request.Context(), f)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderViews(views)})
}

func (h *OrderHandler) LookupByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrInvalidQuery, "phone query parameter is required", nil)
		return
	}
	views, err := h.q.LookupByPhone(c.Request.Context(), phone)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderViews(views)})
}

func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetStatus(c.Request.Context(), id, order.Status(req.Status)); err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}

	view, err := h.q.GetOrder(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) Dispatch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	deliveryID, err := h.delivery.Dispatch(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliveryId": deliveryID})
}
