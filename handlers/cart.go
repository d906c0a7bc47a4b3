package handlers

import (
	"net/http"

	"github.com/Omarrio321/Aran-Repairs/models"
	"github.com/Omarrio321/Aran-Repairs/services/cart"
	"github.com/Omarrio321/Aran-Repairs/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	Service cart.Service
	Logger  *zap.Logger
}

func NewCartHandler(svc cart.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{Service: svc, Logger: logger}
}

// AddItem appends a product to the cart, stacking accessories by product.
func (h *CartHandler) AddItem(c *gin.Context) {
	var candidate models.CartItem
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	summary, err := h.Service.AddItem(c.Request.Context(), c.Param("cartID"), candidate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to add item", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RemoveItem deletes one line. Unknown instance IDs are a no-op.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	summary, err := h.Service.RemoveItem(c.Request.Context(), c.Param("cartID"), c.Param("itemID"))
	if err != nil {
		h.Logger.Error("Failed to remove cart item", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove item", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Service.Clear(c.Request.Context(), c.Param("cartID")); err != nil {
		h.Logger.Error("Failed to clear cart", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// GetSummary returns the cart lines with running totals.
func (h *CartHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		h.Logger.Error("Failed to load cart", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
