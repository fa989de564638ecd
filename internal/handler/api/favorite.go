package api

import (
	"net/http"
	"strconv"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	cmds commands.FavoriteCommands
}

func NewFavoriteHandler(cmds commands.FavoriteCommands) *FavoriteHandler {
	return &FavoriteHandler{cmds: cmds}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req reqdto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Add(c.Request.Context(), req.Phone, req.ProductID)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favoriteId": id})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrValidation, "phone query parameter is required", nil)
		return
	}

	favs, err := h.cmds.List(c.Request.Context(), phone)
	if err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": resdto.FromFavorites(favs)})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Remove(c.Request.Context(), id); err != nil {
		httperr.AbortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
