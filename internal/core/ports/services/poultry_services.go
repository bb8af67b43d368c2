package services

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
)

// PoultryReaderSvc defines the transaction query surface.
type PoultryReaderSvc interface {
	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, transactionID int64) (*domain.PoultryTransaction, error)

	// ListTransactions retrieves transactions matching the date/type/farmer
	// filter, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.PoultryTransaction, error)

	// SearchTransactions free-text searches farmer name, vehicle, driver and
	// notes.
	SearchTransactions(ctx context.Context, params dto.SearchTransactionsParams) ([]domain.PoultryTransaction, error)

	// GetPaymentHistory lists the installments recorded against a
	// transaction.
	GetPaymentHistory(ctx context.Context, transactionID int64) ([]domain.PaymentHistory, error)
}

// PoultryWriterSvc defines the transaction recorder operations.
type PoultryWriterSvc interface {
	// RecordTransaction records a purchase or sale. Quantity and price must
	// be positive; total amount and payment status are derived.
	RecordTransaction(ctx context.Context, callerID int64, req dto.CreatePoultryTransactionRequest) (*domain.PoultryTransaction, error)

	// AppendPayment records one installment and moves the parent
	// transaction's payment fields monotonically toward paid. Installments
	// that would exceed the total are rejected with apperrors.ErrOverPayment.
	AppendPayment(ctx context.Context, callerID int64, transactionID int64, req dto.AppendPaymentRequest) (*domain.PoultryTransaction, error)

	// UpdateTransaction edits the non-payment fields. Admin only; the total
	// amount is recomputed when quantity or price change.
	UpdateTransaction(ctx context.Context, callerID int64, transactionID int64, req dto.UpdatePoultryTransactionRequest) (*domain.PoultryTransaction, error)

	// DeleteTransaction removes a transaction. Admin only.
	DeleteTransaction(ctx context.Context, callerID int64, transactionID int64) error
}

// PoultrySvcFacade combines the poultry transaction service interfaces.
type PoultrySvcFacade interface {
	PoultryReaderSvc
	PoultryWriterSvc
}
