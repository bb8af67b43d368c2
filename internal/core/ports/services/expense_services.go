package services

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
)

// ExpenseSvcFacade records and lists expenses, keeping the ledger in
// lockstep.
type ExpenseSvcFacade interface {
	// RecordExpense persists an expense and its mirrored user -> system
	// ledger entry atomically.
	RecordExpense(ctx context.Context, callerID int64, req dto.RecordExpenseRequest) (*domain.Expense, error)

	// ListExpenses lists a user's expenses. Users may read their own;
	// admins may read anyone's, or pass targetUserID 0 for all users.
	ListExpenses(ctx context.Context, callerID int64, targetUserID int64) ([]domain.Expense, error)

	// DeleteExpense removes an expense and appends the compensating ledger
	// entry atomically. Owners may delete their own; admins any.
	DeleteExpense(ctx context.Context, callerID int64, expenseID int64) error
}
