package repositories

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over the money ledger
type LedgerReader interface {
	// GetBalance returns the signed sum of all money transactions naming the
	// party (+amount as recipient, -amount as sender). The system
	// pseudo-account (ID 0) uses the same formula.
	GetBalance(ctx context.Context, partyID int64) (decimal.Decimal, error)

	// FindTransfersByParty retrieves all ledger entries naming the party,
	// newest first, with usernames joined in.
	FindTransfersByParty(ctx context.Context, partyID int64) ([]domain.MoneyTransaction, error)

	// FindAllTransfers retrieves every ledger entry, newest first.
	FindAllTransfers(ctx context.Context) ([]domain.MoneyTransaction, error)
}

// LedgerWriter defines write operations over the money ledger
type LedgerWriter interface {
	// SaveTransfer inserts one ledger entry atomically. When the sender is a
	// real user the sender's row is locked and the balance re-derived inside
	// the same database transaction; apperrors.ErrInsufficientFunds is
	// returned if the balance does not cover the amount. The system
	// pseudo-account and system_input entries are exempt from the check.
	// Returns the generated ID.
	SaveTransfer(ctx context.Context, txn domain.MoneyTransaction) (int64, error)

	// ReconcileBalances recomputes every party's balance from the ledger,
	// corrects drifted remaining_balance snapshots and the system_money
	// cache, and returns the number of corrected rows.
	ReconcileBalances(ctx context.Context) (int, error)
}

// LedgerRepositoryFacade combines the ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
