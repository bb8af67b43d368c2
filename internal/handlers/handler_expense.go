package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/poultrybooks/poultry_books_app/internal/middleware"
)

// expenseHandler handles HTTP requests for expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers all expense routes.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.recordExpense)
		expenses.GET("", h.listExpenses)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

func (h *expenseHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for record expense request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.RecordExpense(c.Request.Context(), loggedInID, req)
	if err != nil {
		logger.Error("Failed to record expense in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to record expense")
		return
	}

	logger.Info("Expense recorded successfully",
		slog.Int64("expense_id", expense.ExpenseID),
		slog.String("category", expense.Category),
	)
	c.JSON(http.StatusCreated, expense)
}

func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	// Default to the caller's own expenses. Admins may pass userID=<n>, or
	// userID=all for every user's expenses.
	targetID := loggedInID
	if raw := c.Query("userID"); raw != "" {
		if raw == "all" {
			targetID = 0
		} else {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userID"})
				return
			}
			targetID = parsed
		}
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), loggedInID, targetID)
	if err != nil {
		logger.Error("Failed to list expenses from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID, ok := idParam(c)
	if !ok {
		return
	}
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), loggedInID, expenseID); err != nil {
		logger.Error("Failed to delete expense in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete expense")
		return
	}

	logger.Info("Expense deleted successfully", slog.Int64("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}
