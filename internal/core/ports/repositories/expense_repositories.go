package repositories

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// FindExpensesByUser retrieves a user's expenses, newest first.
	FindExpensesByUser(ctx context.Context, userID int64) ([]domain.Expense, error)

	// FindAllExpenses retrieves every expense with the owner's username
	// joined in, newest first.
	FindAllExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpenseWithTransfer inserts the expense row and its mirrored
	// user -> system ledger entry in one database transaction. The user's
	// balance is re-derived under a row lock; apperrors.ErrInsufficientFunds
	// is returned when it does not cover the amount. Returns the generated
	// expense ID.
	SaveExpenseWithTransfer(ctx context.Context, expense domain.Expense, transfer domain.MoneyTransaction) (int64, error)

	// DeleteExpenseWithReversal removes the expense row and appends a
	// compensating system -> user ledger entry in one database transaction.
	DeleteExpenseWithReversal(ctx context.Context, expenseID int64, userID int64) error
}

// ExpenseRepositoryFacade combines the expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
