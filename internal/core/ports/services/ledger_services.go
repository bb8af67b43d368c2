package services

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines the balance and statement queries.
type LedgerReaderSvc interface {
	// GetBalance returns a party's derived balance. Users may read their
	// own; admins may read anyone's.
	GetBalance(ctx context.Context, callerID int64, partyID int64) (decimal.Decimal, error)

	// GetSystemBalance returns the system float derived from the ledger.
	GetSystemBalance(ctx context.Context) (decimal.Decimal, error)

	// ListTransfers returns a party's statement. Users may read their own;
	// admins may read anyone's.
	ListTransfers(ctx context.Context, callerID int64, partyID int64) ([]domain.MoneyTransaction, error)

	// ListAllTransfers returns the full ledger. Admin only.
	ListAllTransfers(ctx context.Context, callerID int64) ([]domain.MoneyTransaction, error)
}

// LedgerWriterSvc defines the ledger mutations.
type LedgerWriterSvc interface {
	// RecordTransfer appends one directed ledger entry. Real-user senders
	// must cover the amount; the system pseudo-account is exempt.
	RecordTransfer(ctx context.Context, callerID int64, req dto.CreateTransferRequest) (*domain.MoneyTransaction, error)

	// AdjustSystemMoney sets the system float to a new total by recording a
	// synthetic transfer between the system pseudo-account and the admin for
	// the delta. Admin only.
	AdjustSystemMoney(ctx context.Context, callerID int64, newTotal decimal.Decimal) error

	// Reconcile recomputes balances from the ledger and corrects drifted
	// snapshots, returning the number of corrected rows. Admin only.
	Reconcile(ctx context.Context, callerID int64) (int, error)
}

// LedgerSvcFacade combines the ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
