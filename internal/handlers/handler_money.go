package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/poultrybooks/poultry_books_app/internal/middleware"
)

// moneyHandler handles HTTP requests for the internal money ledger.
type moneyHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newMoneyHandler(ls portssvc.LedgerSvcFacade) *moneyHandler {
	return &moneyHandler{ledgerService: ls}
}

// registerMoneyRoutes registers all ledger routes.
func registerMoneyRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newMoneyHandler(ledgerService)

	money := rg.Group("/money")
	{
		money.POST("/transfers", h.createTransfer)
		money.GET("/transfers", h.listTransfers)
		money.GET("/balance", h.getBalance)
		money.GET("/system", h.getSystemBalance)
		money.PUT("/system", h.adjustSystemMoney) // Admin only
		money.POST("/reconcile", h.reconcile)     // Admin only
	}
}

func (h *moneyHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create transfer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.RecordTransfer(c.Request.Context(), loggedInID, req)
	if err != nil {
		logger.Error("Failed to record transfer in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to record transfer")
		return
	}

	logger.Info("Transfer recorded successfully",
		slog.Int64("transaction_id", txn.TransactionID),
		slog.Int64("from", txn.FromUserID),
		slog.Int64("to", txn.ToUserID),
	)
	c.JSON(http.StatusCreated, txn)
}

// partyParam resolves the optional partyID query parameter, defaulting to the
// caller.
func partyParam(c *gin.Context, loggedInID int64) (int64, bool) {
	raw := c.Query("partyID")
	if raw == "" {
		return loggedInID, true
	}
	partyID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partyID"})
		return 0, false
	}
	return partyID, true
}

func (h *moneyHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	// partyID=all returns the full ledger for admins.
	if c.Query("partyID") == "all" {
		txns, err := h.ledgerService.ListAllTransfers(c.Request.Context(), loggedInID)
		if err != nil {
			logger.Error("Failed to list all transfers from service", slog.String("error", err.Error()))
			respondError(c, err, "Failed to list transfers")
			return
		}
		c.JSON(http.StatusOK, gin.H{"transfers": txns})
		return
	}

	partyID, ok := partyParam(c, loggedInID)
	if !ok {
		return
	}

	txns, err := h.ledgerService.ListTransfers(c.Request.Context(), loggedInID, partyID)
	if err != nil {
		logger.Error("Failed to list transfers from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transfers": txns})
}

func (h *moneyHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}
	partyID, ok := partyParam(c, loggedInID)
	if !ok {
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), loggedInID, partyID)
	if err != nil {
		logger.Error("Failed to get balance from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{PartyID: partyID, Balance: balance})
}

func (h *moneyHandler) getSystemBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.ledgerService.GetSystemBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get system balance from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve system balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{PartyID: domain.SystemPartyID, Balance: balance})
}

func (h *moneyHandler) adjustSystemMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdjustSystemMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for adjust system money request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.ledgerService.AdjustSystemMoney(c.Request.Context(), loggedInID, req.NewTotal); err != nil {
		logger.Error("Failed to adjust system money in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to adjust system money")
		return
	}

	logger.Info("System money adjusted successfully", slog.String("new_total", req.NewTotal.String()))
	c.Status(http.StatusNoContent)
}

func (h *moneyHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	corrected, err := h.ledgerService.Reconcile(c.Request.Context(), loggedInID)
	if err != nil {
		logger.Error("Failed to reconcile in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to reconcile")
		return
	}

	logger.Info("Reconciliation completed", slog.Int("corrected", corrected))
	c.JSON(http.StatusOK, dto.ReconcileResponse{Corrected: corrected})
}
