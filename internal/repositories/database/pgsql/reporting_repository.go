package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	"github.com/poultrybooks/poultry_books_app/internal/models"
	"github.com/poultrybooks/poultry_books_app/internal/utils/mapping"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetGlobalInventory(ctx context.Context) (domain.InventorySummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN transaction_type = 'buy' THEN quantity ELSE 0 END), 0) AS total_purchased,
			COALESCE(SUM(CASE WHEN transaction_type = 'sell' THEN quantity ELSE 0 END), 0) AS total_sold
		FROM poultry_transactions;
	`
	var summary domain.InventorySummary
	if err := r.Pool.QueryRow(ctx, query).Scan(&summary.TotalPurchased, &summary.TotalSold); err != nil {
		return domain.InventorySummary{}, fmt.Errorf("failed to compute global inventory: %w", err)
	}
	summary.RemainingStock = summary.TotalPurchased.Sub(summary.TotalSold)
	return summary, nil
}

func (r *PgxReportingRepository) GetPerFarmerInventory(ctx context.Context) ([]domain.FarmerInventory, error) {
	query := `
		SELECT f.farmer_id, f.name,
			COALESCE(SUM(CASE WHEN t.transaction_type = 'buy' THEN t.quantity ELSE 0 END), 0) AS total_purchased,
			COALESCE(SUM(CASE WHEN t.transaction_type = 'sell' THEN t.quantity ELSE 0 END), 0) AS total_sold
		FROM farmers f
		LEFT JOIN poultry_transactions t ON t.farmer_id = f.farmer_id
		GROUP BY f.farmer_id, f.name
		ORDER BY f.name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query per-farmer inventory: %w", err)
	}
	defer rows.Close()

	inventories := []domain.FarmerInventory{}
	for rows.Next() {
		var inv domain.FarmerInventory
		if err := rows.Scan(&inv.FarmerID, &inv.FarmerName, &inv.TotalPurchased, &inv.TotalSold); err != nil {
			return nil, fmt.Errorf("failed to scan per-farmer inventory row: %w", err)
		}
		inv.RemainingStock = inv.TotalPurchased.Sub(inv.TotalSold)
		inventories = append(inventories, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating per-farmer inventory rows: %w", err)
	}

	return inventories, nil
}

func (r *PgxReportingRepository) GetPaymentSummary(ctx context.Context, filter domain.PoultryTransactionFilter) ([]domain.PoultryTransaction, error) {
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
		return nil, fmt.Errorf("failed to query payment summary: %w", err)
	}
	defer rows.Close()

	ms := []models.PoultryTransaction{}
	for rows.Next() {
		m, err := scanPoultryTxn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment summary row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment summary rows: %w", err)
	}

	return mapping.ToDomainPoultryTransactionSlice(ms), nil
}
