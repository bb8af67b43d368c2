package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	"github.com/poultrybooks/poultry_books_app/internal/models"
	"github.com/poultrybooks/poultry_books_app/internal/utils/mapping"
)

type PgxPoultryRepository struct {
	BaseRepository
}

func newPgxPoultryRepository(pool *pgxpool.Pool) portsrepo.PoultryRepositoryFacade {
	return &PgxPoultryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PoultryRepositoryFacade = (*PgxPoultryRepository)(nil)

const poultryTxnColumns = `
	t.transaction_id, t.date, t.farmer_id, t.transaction_type, t.quantity,
	t.price_per_unit, t.total_amount, t.vehicle_number, t.driver_name, t.notes,
	t.payment_mode, t.payment_amount, t.payment_status, t.created_at,
	f.name AS farmer_name, f.location AS farmer_location`

func scanPoultryTxn(row pgx.Row) (models.PoultryTransaction, error) {
	var m models.PoultryTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.Date,
		&m.FarmerID,
		&m.Type,
		&m.Quantity,
		&m.PricePerUnit,
		&m.TotalAmount,
		&m.VehicleNumber,
		&m.DriverName,
		&m.Notes,
		&m.PaymentMode,
		&m.PaymentAmount,
		&m.PaymentStatus,
		&m.CreatedAt,
		&m.FarmerName,
		&m.FarmerLocation,
	)
	return m, err
}

func (r *PgxPoultryRepository) SaveTransaction(ctx context.Context, txn domain.PoultryTransaction) (int64, error) {
	m := mapping.ToModelPoultryTransaction(txn)
	query := `
		INSERT INTO poultry_transactions (
			date, farmer_id, transaction_type, quantity, price_per_unit,
			total_amount, vehicle_number, driver_name, notes, payment_mode,
			payment_amount, payment_status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING transaction_id;
	`
	var txnID int64
	err := r.Pool.QueryRow(ctx, query,
		m.Date,
		m.FarmerID,
		m.Type,
		m.Quantity,
		m.PricePerUnit,
		m.TotalAmount,
		m.VehicleNumber,
		m.DriverName,
		m.Notes,
		m.PaymentMode,
		m.PaymentAmount,
		m.PaymentStatus,
		m.CreatedAt,
	).Scan(&txnID)
	if err != nil {
		return 0, fmt.Errorf("failed to save poultry transaction: %w", err)
	}
	return txnID, nil
}

func (r *PgxPoultryRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.PoultryTransaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM poultry_transactions t
		JOIN farmers f ON f.farmer_id = t.farmer_id
		WHERE t.transaction_id = $1;
	`, poultryTxnColumns)

	m, err := scanPoultryTxn(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %d: %w", transactionID, err)
	}

	d := mapping.ToDomainPoultryTransaction(m)
	return &d, nil
}

func (r *PgxPoultryRepository) FindTransactions(ctx context.Context, filter domain.PoultryTransactionFilter) ([]domain.PoultryTransaction, error) {
	var conditions []string
	var args []any

	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conditions = append(conditions, fmt.Sprintf("t.transaction_type = $%d", len(args)))
	}
	if filter.FarmerID != nil {
		args = append(args, *filter.FarmerID)
		conditions = append(conditions, fmt.Sprintf("t.farmer_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM poultry_transactions t
		JOIN farmers f ON f.farmer_id = t.farmer_id
		%s
		ORDER BY t.date DESC, t.transaction_id DESC;
	`, poultryTxnColumns, where)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.PoultryTransaction{}
	for rows.Next() {
		m, err := scanPoultryTxn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainPoultryTransactionSlice(ms), nil
}

func (r *PgxPoultryRepository) SearchTransactions(ctx context.Context, term string, txnType *domain.PoultryTransactionType) ([]domain.PoultryTransaction, error) {
	args := []any{"%" + term + "%"}
	typeCond := ""
	if txnType != nil {
		args = append(args, string(*txnType))
		typeCond = fmt.Sprintf("AND t.transaction_type = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM poultry_transactions t
		JOIN farmers f ON f.farmer_id = t.farmer_id
		WHERE (f.name ILIKE $1
			OR t.vehicle_number ILIKE $1
			OR t.driver_name ILIKE $1
			OR t.notes ILIKE $1)
		%s
		ORDER BY t.date DESC, t.transaction_id DESC;
	`, poultryTxnColumns, typeCond)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.PoultryTransaction{}
	for rows.Next() {
		m, err := scanPoultryTxn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainPoultryTransactionSlice(ms), nil
}

func (r *PgxPoultryRepository) FindPaymentHistory(ctx context.Context, transactionID int64) ([]domain.PaymentHistory, error) {
	query := `
		SELECT history_id, transaction_id, payment_date, payment_amount, payment_mode, notes, created_at
		FROM payment_history
		WHERE transaction_id = $1
		ORDER BY payment_date DESC, history_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment history: %w", err)
	}
	defer rows.Close()

	ms := []models.PaymentHistory{}
	for rows.Next() {
		var m models.PaymentHistory
		err := rows.Scan(
			&m.HistoryID,
			&m.TransactionID,
			&m.Date,
			&m.Amount,
			&m.Mode,
			&m.Notes,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment history row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment history rows: %w", err)
	}

	return mapping.ToDomainPaymentHistorySlice(ms), nil
}

// AppendPayment inserts the installment and moves the parent's payment fields
// inside one database transaction. The parent row is locked so concurrent
// appenders serialize and the overpayment check stays correct.
func (r *PgxPoultryRepository) AppendPayment(ctx context.Context, transactionID int64, payment domain.PaymentHistory) (*domain.PoultryTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var parent models.PoultryTransaction
	err = tx.QueryRow(ctx, `
		SELECT transaction_id, total_amount, payment_amount
		FROM poultry_transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`, transactionID).Scan(&parent.TransactionID, &parent.TotalAmount, &parent.PaymentAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock transaction %d: %w", transactionID, err)
	}

	newPaid, ok := domain.ApplyPayment(parent.TotalAmount, parent.PaymentAmount, payment.Amount)
	if !ok {
		return nil, apperrors.ErrOverPayment
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO payment_history (transaction_id, payment_date, payment_amount, payment_mode, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		transactionID,
		payment.Date,
		payment.Amount,
		payment.Mode,
		nullable(payment.Notes),
		payment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment history: %w", err)
	}

	newStatus := domain.DerivePaymentStatus(parent.TotalAmount, newPaid)
	_, err = tx.Exec(ctx, `
		UPDATE poultry_transactions
		SET payment_amount = $2, payment_mode = $3, payment_status = $4
		WHERE transaction_id = $1;
	`,
		transactionID,
		newPaid,
		payment.Mode,
		string(newStatus),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %d payment fields: %w", transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return r.FindTransactionByID(ctx, transactionID)
}

func (r *PgxPoultryRepository) UpdateTransaction(ctx context.Context, txn domain.PoultryTransaction) error {
	m := mapping.ToModelPoultryTransaction(txn)
	query := `
		UPDATE poultry_transactions
		SET date = $2, quantity = $3, price_per_unit = $4, total_amount = $5,
			vehicle_number = $6, driver_name = $7, notes = $8, payment_status = $9
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Date,
		m.Quantity,
		m.PricePerUnit,
		m.TotalAmount,
		m.VehicleNumber,
		m.DriverName,
		m.Notes,
		m.PaymentStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPoultryRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM poultry_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
