package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	"github.com/poultrybooks/poultry_books_app/internal/models"
	"github.com/poultrybooks/poultry_books_app/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, amount, category, description, date, receipt_image, created_at
		FROM expenses
		WHERE expense_id = $1;
	`
	var m models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.Amount,
		&m.Category,
		&m.Description,
		&m.Date,
		&m.ReceiptImage,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %d: %w", expenseID, err)
	}

	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) FindExpensesByUser(ctx context.Context, userID int64) ([]domain.Expense, error) {
	query := `
		SELECT e.expense_id, e.user_id, e.amount, e.category, e.description, e.date,
			e.receipt_image, e.created_at, u.username
		FROM expenses e
		JOIN users u ON u.user_id = e.user_id
		WHERE e.user_id = $1
		ORDER BY e.date DESC, e.expense_id DESC;
	`
	return r.queryExpenses(ctx, query, userID)
}

func (r *PgxExpenseRepository) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT e.expense_id, e.user_id, e.amount, e.category, e.description, e.date,
			e.receipt_image, e.created_at, u.username
		FROM expenses e
		JOIN users u ON u.user_id = e.user_id
		ORDER BY e.date DESC, e.expense_id DESC;
	`
	return r.queryExpenses(ctx, query)
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	ms := []models.Expense{}
	for rows.Next() {
		var m models.Expense
		err := rows.Scan(
			&m.ExpenseID,
			&m.UserID,
			&m.Amount,
			&m.Category,
			&m.Description,
			&m.Date,
			&m.ReceiptImage,
			&m.CreatedAt,
			&m.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	return mapping.ToDomainExpenseSlice(ms), nil
}

// SaveExpenseWithTransfer lands the expense row and its mirrored user ->
// system ledger entry in one database transaction, so the books never show an
// expense without its money movement.
func (r *PgxExpenseRepository) SaveExpenseWithTransfer(ctx context.Context, expense domain.Expense, transfer domain.MoneyTransaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelExpense(expense)
	var expenseID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO expenses (user_id, amount, category, description, date, receipt_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING expense_id;
	`,
		m.UserID,
		m.Amount,
		m.Category,
		m.Description,
		m.Date,
		m.ReceiptImage,
		m.CreatedAt,
	).Scan(&expenseID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	if _, err := saveTransferTx(ctx, tx, transfer); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return expenseID, nil
}

// DeleteExpenseWithReversal removes the expense and appends the compensating
// system -> user ledger entry in one database transaction.
func (r *PgxExpenseRepository) DeleteExpenseWithReversal(ctx context.Context, expenseID int64, userID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var m models.Expense
	err = tx.QueryRow(ctx, `
		SELECT expense_id, user_id, amount, category
		FROM expenses
		WHERE expense_id = $1 AND user_id = $2
		FOR UPDATE;
	`, expenseID, userID).Scan(&m.ExpenseID, &m.UserID, &m.Amount, &m.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock expense %d: %w", expenseID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}

	reversal := domain.MoneyTransaction{
		Date:        time.Now().UTC(),
		FromUserID:  domain.SystemPartyID,
		ToUserID:    userID,
		Amount:      m.Amount,
		Description: fmt.Sprintf("reversal of expense %d (%s)", expenseID, m.Category),
		Type:        domain.MoneyExpense,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := saveTransferTx(ctx, tx, reversal); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
