package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	"github.com/poultrybooks/poultry_books_app/internal/models"
	"github.com/poultrybooks/poultry_books_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// balanceQuery derives a party's balance as the signed sum over every ledger
// entry naming it. The system pseudo-account uses the same formula.
const balanceQuery = `
	SELECT COALESCE(SUM(
		CASE WHEN to_user_id = $1 THEN amount ELSE -amount END
	), 0)
	FROM money_transactions
	WHERE to_user_id = $1 OR from_user_id = $1;
`

const moneyTxnColumns = `
	m.transaction_id, m.date, m.from_user_id, m.to_user_id, m.amount,
	m.description, m.transaction_type, m.remaining_balance, m.proof_image, m.created_at,
	fu.username AS from_username, tu.username AS to_username`

const moneyTxnJoins = `
	FROM money_transactions m
	LEFT JOIN users fu ON fu.user_id = m.from_user_id
	LEFT JOIN users tu ON tu.user_id = m.to_user_id`

func scanMoneyTxn(row pgx.Row) (models.MoneyTransaction, error) {
	var m models.MoneyTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.Date,
		&m.FromUserID,
		&m.ToUserID,
		&m.Amount,
		&m.Description,
		&m.Type,
		&m.RemainingBalance,
		&m.ProofImage,
		&m.CreatedAt,
		&m.FromUsername,
		&m.ToUsername,
	)
	return m, err
}

func (r *PgxLedgerRepository) GetBalance(ctx context.Context, partyID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, balanceQuery, partyID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to derive balance for party %d: %w", partyID, err)
	}
	return balance, nil
}

func (r *PgxLedgerRepository) FindTransfersByParty(ctx context.Context, partyID int64) ([]domain.MoneyTransaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE m.from_user_id = $1 OR m.to_user_id = $1
		ORDER BY m.date DESC, m.transaction_id DESC;
	`, moneyTxnColumns, moneyTxnJoins)

	return r.queryTransfers(ctx, query, partyID)
}

func (r *PgxLedgerRepository) FindAllTransfers(ctx context.Context) ([]domain.MoneyTransaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY m.date DESC, m.transaction_id DESC;
	`, moneyTxnColumns, moneyTxnJoins)

	return r.queryTransfers(ctx, query)
}

func (r *PgxLedgerRepository) queryTransfers(ctx context.Context, query string, args ...any) ([]domain.MoneyTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query money transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.MoneyTransaction{}
	for rows.Next() {
		m, err := scanMoneyTxn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan money transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating money transaction rows: %w", err)
	}

	return mapping.ToDomainMoneyTransactionSlice(ms), nil
}

// SaveTransfer appends one ledger entry. When the sender is a real user, the
// sender's row is locked and the balance re-derived inside the same database
// transaction so concurrent transfers cannot overdraw the account.
func (r *PgxLedgerRepository) SaveTransfer(ctx context.Context, txn domain.MoneyTransaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	txnID, err := saveTransferTx(ctx, tx, txn)
	if err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return txnID, nil
}

// saveTransferTx runs the funds check and insert inside the caller's database
// transaction. Shared with the expense repository so expense rows and their
// mirrored ledger entries commit together. Entries exempt from the funds
// check (system sender, system_input type) are still snapshotted against the
// sender's derived balance.
func saveTransferTx(ctx context.Context, tx pgx.Tx, txn domain.MoneyTransaction) (int64, error) {
	senderBalance := decimal.Zero
	if txn.FromUserID != domain.SystemPartyID {
		// Lock the sender row so parallel transfers from the same user
		// serialize on the balance check.
		var locked int64
		if err := tx.QueryRow(ctx, `SELECT user_id FROM users WHERE user_id = $1 FOR UPDATE;`, txn.FromUserID).Scan(&locked); err != nil {
			return 0, fmt.Errorf("failed to lock sender %d: %w", txn.FromUserID, err)
		}

		if err := tx.QueryRow(ctx, balanceQuery, txn.FromUserID).Scan(&senderBalance); err != nil {
			return 0, fmt.Errorf("failed to derive sender %d balance: %w", txn.FromUserID, err)
		}
		if !txn.ExemptFromFundsCheck() && senderBalance.LessThan(txn.Amount) {
			return 0, apperrors.ErrInsufficientFunds
		}
	}

	m := mapping.ToModelMoneyTransaction(txn)
	m.RemainingBalance = senderBalance.Sub(txn.Amount)

	var txnID int64
	err := tx.QueryRow(ctx, `
		INSERT INTO money_transactions (
			date, from_user_id, to_user_id, amount, description,
			transaction_type, remaining_balance, proof_image, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING transaction_id;
	`,
		m.Date,
		m.FromUserID,
		m.ToUserID,
		m.Amount,
		m.Description,
		m.Type,
		m.RemainingBalance,
		m.ProofImage,
		m.CreatedAt,
	).Scan(&txnID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert money transaction: %w", err)
	}

	// Keep the cached float in step; the ledger stays authoritative either way.
	_, err = tx.Exec(ctx, `
		UPDATE system_money
		SET total_amount = (
			SELECT COALESCE(SUM(
				CASE WHEN to_user_id = 0 THEN amount ELSE -amount END
			), 0)
			FROM money_transactions
			WHERE to_user_id = 0 OR from_user_id = 0
		), updated_at = NOW();
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to refresh system money cache: %w", err)
	}

	return txnID, nil
}

// ReconcileBalances recomputes every snapshot from the ledger and fixes any
// that drifted. Returns the number of corrected rows.
func (r *PgxLedgerRepository) ReconcileBalances(ctx context.Context) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	// Rebuild remaining_balance snapshots by replaying each sender's entries
	// in ledger order.
	tag, err := tx.Exec(ctx, `
		WITH replay AS (
			SELECT m.transaction_id,
				CASE WHEN m.from_user_id = 0 THEN -m.amount ELSE (
					COALESCE(SUM(
						CASE WHEN p.to_user_id = m.from_user_id THEN p.amount ELSE -p.amount END
					) FILTER (WHERE p.transaction_id <= m.transaction_id), 0)
				) END AS correct_balance
			FROM money_transactions m
			LEFT JOIN money_transactions p
				ON m.from_user_id <> 0
				AND (p.from_user_id = m.from_user_id OR p.to_user_id = m.from_user_id)
			GROUP BY m.transaction_id, m.from_user_id, m.amount
		)
		UPDATE money_transactions m
		SET remaining_balance = r.correct_balance
		FROM replay r
		WHERE r.transaction_id = m.transaction_id
		AND m.remaining_balance <> r.correct_balance;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile remaining balances: %w", err)
	}
	corrected := int(tag.RowsAffected())

	cacheTag, err := tx.Exec(ctx, `
		UPDATE system_money
		SET total_amount = derived.balance, updated_at = NOW()
		FROM (
			SELECT COALESCE(SUM(
				CASE WHEN to_user_id = 0 THEN amount ELSE -amount END
			), 0) AS balance
			FROM money_transactions
			WHERE to_user_id = 0 OR from_user_id = 0
		) AS derived
		WHERE system_money.total_amount <> derived.balance;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile system money cache: %w", err)
	}
	corrected += int(cacheTag.RowsAffected())

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return corrected, nil
}
