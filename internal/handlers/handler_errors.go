package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
)

// respondError maps service errors onto HTTP statuses. fallback is the message
// used for errors that are not one of the known sentinels.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient funds"})
	case errors.Is(err, apperrors.ErrOverPayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Payment exceeds the outstanding amount"})
	case errors.Is(err, apperrors.ErrHasDependentTransactions):
		c.JSON(http.StatusConflict, gin.H{"error": "Farmer has recorded transactions"})
	case errors.Is(err, apperrors.ErrCannotDeleteAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be deleted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
