package repositories

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
)

// PoultryReader defines read operations for poultry transactions
type PoultryReader interface {
	// FindTransactionByID retrieves a specific poultry transaction.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.PoultryTransaction, error)

	// FindTransactions retrieves transactions matching the filter, newest
	// first, with farmer name and location joined in.
	FindTransactions(ctx context.Context, filter domain.PoultryTransactionFilter) ([]domain.PoultryTransaction, error)

	// SearchTransactions matches farmer name, vehicle number, driver name or
	// notes against the term.
	SearchTransactions(ctx context.Context, term string, txnType *domain.PoultryTransactionType) ([]domain.PoultryTransaction, error)

	// FindPaymentHistory retrieves the installments recorded against a
	// transaction, newest first.
	FindPaymentHistory(ctx context.Context, transactionID int64) ([]domain.PaymentHistory, error)
}

// PoultryWriter defines write operations for poultry transactions
type PoultryWriter interface {
	// SaveTransaction persists a new transaction and returns the generated ID.
	SaveTransaction(ctx context.Context, txn domain.PoultryTransaction) (int64, error)

	// AppendPayment inserts a payment_history row and updates the parent
	// transaction's payment amount, mode and status in one database
	// transaction, serializing concurrent appenders with a row lock.
	// Returns apperrors.ErrNotFound for an unknown transaction and
	// apperrors.ErrOverPayment when the installment would push the paid
	// amount past the total.
	AppendPayment(ctx context.Context, transactionID int64, payment domain.PaymentHistory) (*domain.PoultryTransaction, error)

	// UpdateTransaction updates the editable, non-payment fields of a
	// transaction.
	UpdateTransaction(ctx context.Context, txn domain.PoultryTransaction) error

	// DeleteTransaction removes a transaction row.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// PoultryRepositoryFacade combines all poultry repository interfaces
type PoultryRepositoryFacade interface {
	PoultryReader
	PoultryWriter
}
