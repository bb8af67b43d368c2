package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/poultrybooks/poultry_books_app/internal/middleware"
)

// poultryHandler handles HTTP requests for poultry transactions.
type poultryHandler struct {
	poultryService portssvc.PoultrySvcFacade
}

func newPoultryHandler(ps portssvc.PoultrySvcFacade) *poultryHandler {
	return &poultryHandler{poultryService: ps}
}

// registerPoultryRoutes registers all poultry transaction routes.
func registerPoultryRoutes(rg *gin.RouterGroup, poultryService portssvc.PoultrySvcFacade) {
	h := newPoultryHandler(poultryService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/search", h.searchTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)    // Admin only
		txns.DELETE("/:id", h.deleteTransaction) // Admin only
		txns.POST("/:id/payments", h.appendPayment)
		txns.GET("/:id/payments", h.getPaymentHistory)
	}
}

func (h *poultryHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePoultryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	txn, err := h.poultryService.RecordTransaction(c.Request.Context(), loggedInID, req)
	if err != nil {
		logger.Error("Failed to record transaction in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded successfully",
		slog.Int64("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
	)
	c.JSON(http.StatusCreated, txn)
}

func (h *poultryHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID, ok := idParam(c)
	if !ok {
		return
	}

	txn, err := h.poultryService.GetTransaction(c.Request.Context(), txnID)
	if err != nil {
		logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *poultryHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.poultryService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

func (h *poultryHandler) searchTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for search transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.poultryService.SearchTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to search transactions from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to search transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

func (h *poultryHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID, ok := idParam(c)
	if !ok {
		return
	}
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdatePoultryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.poultryService.UpdateTransaction(c.Request.Context(), loggedInID, txnID, req)
	if err != nil {
		logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.Int64("transaction_id", txnID))
	c.JSON(http.StatusOK, txn)
}

func (h *poultryHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID, ok := idParam(c)
	if !ok {
		return
	}
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.poultryService.DeleteTransaction(c.Request.Context(), loggedInID, txnID); err != nil {
		logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted successfully", slog.Int64("transaction_id", txnID))
	c.Status(http.StatusNoContent)
}

func (h *poultryHandler) appendPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID, ok := idParam(c)
	if !ok {
		return
	}
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.AppendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for append payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.poultryService.AppendPayment(c.Request.Context(), loggedInID, txnID, req)
	if err != nil {
		logger.Error("Failed to append payment in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to append payment")
		return
	}

	logger.Info("Payment appended successfully",
		slog.Int64("transaction_id", txnID),
		slog.String("payment_status", string(txn.PaymentStatus)),
	)
	c.JSON(http.StatusOK, txn)
}

func (h *poultryHandler) getPaymentHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID, ok := idParam(c)
	if !ok {
		return
	}

	history, err := h.poultryService.GetPaymentHistory(c.Request.Context(), txnID)
	if err != nil {
		logger.Error("Failed to get payment history from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve payment history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": history})
}
