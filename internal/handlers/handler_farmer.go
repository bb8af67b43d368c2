package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/poultrybooks/poultry_books_app/internal/middleware"
)

// farmerHandler handles HTTP requests related to farmers.
type farmerHandler struct {
	farmerService portssvc.FarmerSvcFacade
}

func newFarmerHandler(fs portssvc.FarmerSvcFacade) *farmerHandler {
	return &farmerHandler{farmerService: fs}
}

// registerFarmerRoutes registers all farmer-related routes.
func registerFarmerRoutes(rg *gin.RouterGroup, farmerService portssvc.FarmerSvcFacade) {
	h := newFarmerHandler(farmerService)

	farmers := rg.Group("/farmers")
	{
		farmers.POST("", h.createFarmer)
		farmers.GET("", h.listFarmers)
		farmers.GET("/:id", h.getFarmer)
		farmers.PUT("/:id", h.updateFarmer)
		farmers.DELETE("/:id", h.deleteFarmer) // Admin only
	}
}

func (h *farmerHandler) createFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create farmer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	farmer, err := h.farmerService.CreateFarmer(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create farmer in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create farmer")
		return
	}

	logger.Info("Farmer created successfully", slog.Int64("farmer_id", farmer.FarmerID))
	c.JSON(http.StatusCreated, farmer)
}

func (h *farmerHandler) getFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	farmerID, ok := idParam(c)
	if !ok {
		return
	}

	farmer, err := h.farmerService.GetFarmer(c.Request.Context(), farmerID)
	if err != nil {
		logger.Error("Failed to get farmer from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve farmer")
		return
	}

	c.JSON(http.StatusOK, farmer)
}

func (h *farmerHandler) listFarmers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	farmers, err := h.farmerService.ListFarmers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list farmers from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list farmers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmers": farmers})
}

func (h *farmerHandler) updateFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	farmerID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update farmer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	farmer, err := h.farmerService.UpdateFarmer(c.Request.Context(), farmerID, req)
	if err != nil {
		logger.Error("Failed to update farmer in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to update farmer")
		return
	}

	logger.Info("Farmer updated successfully", slog.Int64("farmer_id", farmerID))
	c.JSON(http.StatusOK, farmer)
}

func (h *farmerHandler) deleteFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	farmerID, ok := idParam(c)
	if !ok {
		return
	}
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.farmerService.DeleteFarmer(c.Request.Context(), loggedInID, farmerID); err != nil {
		logger.Error("Failed to delete farmer in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete farmer")
		return
	}

	logger.Info("Farmer deleted successfully", slog.Int64("farmer_id", farmerID))
	c.Status(http.StatusNoContent)
}
