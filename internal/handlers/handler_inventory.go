package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/poultrybooks/poultry_books_app/internal/middleware"
)

// inventoryHandler handles HTTP requests for the inventory read models.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers all inventory and reporting routes.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.GET("", h.globalInventory)
		inventory.GET("/farmers", h.perFarmerInventory)
	}
	rg.GET("/reports/payments", h.paymentSummary)
}

func (h *inventoryHandler) globalInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.inventoryService.GlobalInventory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute global inventory", slog.String("error", err.Error()))
		respondError(c, err, "Failed to compute inventory")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *inventoryHandler) perFarmerInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	inventories, err := h.inventoryService.PerFarmerInventory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute per-farmer inventory", slog.String("error", err.Error()))
		respondError(c, err, "Failed to compute inventory")
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmers": inventories})
}

func (h *inventoryHandler) paymentSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PaymentSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for payment summary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.inventoryService.PaymentSummary(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to compute payment summary", slog.String("error", err.Error()))
		respondError(c, err, "Failed to compute payment summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}
