package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	"github.com/poultrybooks/poultry_books_app/internal/models"
	"github.com/poultrybooks/poultry_books_app/internal/utils/mapping"
)

type PgxFarmerRepository struct {
	BaseRepository
}

func newPgxFarmerRepository(pool *pgxpool.Pool) portsrepo.FarmerRepositoryFacade {
	return &PgxFarmerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FarmerRepositoryFacade = (*PgxFarmerRepository)(nil)

func (r *PgxFarmerRepository) SaveFarmer(ctx context.Context, farmer domain.Farmer) (int64, error) {
	modelFarmer := mapping.ToModelFarmer(farmer)
	query := `
		INSERT INTO farmers (name, contact_number, location, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING farmer_id;
	`
	var farmerID int64
	err := r.Pool.QueryRow(ctx, query,
		modelFarmer.Name,
		modelFarmer.ContactNumber,
		modelFarmer.Location,
		modelFarmer.CreatedAt,
	).Scan(&farmerID)
	if err != nil {
		return 0, fmt.Errorf("failed to save farmer: %w", err)
	}
	return farmerID, nil
}

func (r *PgxFarmerRepository) FindFarmerByID(ctx context.Context, farmerID int64) (*domain.Farmer, error) {
	query := `
		SELECT farmer_id, name, contact_number, location, created_at
		FROM farmers
		WHERE farmer_id = $1;
	`
	var modelFarmer models.Farmer
	err := r.Pool.QueryRow(ctx, query, farmerID).Scan(
		&modelFarmer.FarmerID,
		&modelFarmer.Name,
		&modelFarmer.ContactNumber,
		&modelFarmer.Location,
		&modelFarmer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find farmer by ID %d: %w", farmerID, err)
	}

	domainFarmer := mapping.ToDomainFarmer(modelFarmer)
	return &domainFarmer, nil
}

func (r *PgxFarmerRepository) FindFarmers(ctx context.Context) ([]domain.Farmer, error) {
	query := `
		SELECT farmer_id, name, contact_number, location, created_at
		FROM farmers
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query farmers: %w", err)
	}
	defer rows.Close()

	modelFarmers := []models.Farmer{}
	for rows.Next() {
		var modelFarmer models.Farmer
		err := rows.Scan(
			&modelFarmer.FarmerID,
			&modelFarmer.Name,
			&modelFarmer.ContactNumber,
			&modelFarmer.Location,
			&modelFarmer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan farmer row: %w", err)
		}
		modelFarmers = append(modelFarmers, modelFarmer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating farmer rows: %w", err)
	}

	return mapping.ToDomainFarmerSlice(modelFarmers), nil
}

func (r *PgxFarmerRepository) CountTransactionsForFarmer(ctx context.Context, farmerID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM poultry_transactions WHERE farmer_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, farmerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for farmer %d: %w", farmerID, err)
	}
	return count, nil
}

func (r *PgxFarmerRepository) UpdateFarmer(ctx context.Context, farmer domain.Farmer) error {
	modelFarmer := mapping.ToModelFarmer(farmer)
	query := `
		UPDATE farmers
		SET name = $2, contact_number = $3, location = $4
		WHERE farmer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelFarmer.FarmerID,
		modelFarmer.Name,
		modelFarmer.ContactNumber,
		modelFarmer.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update farmer %d: %w", farmer.FarmerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFarmerRepository) DeleteFarmer(ctx context.Context, farmerID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM farmers WHERE farmer_id = $1;`, farmerID)
	if err != nil {
		return fmt.Errorf("failed to delete farmer %d: %w", farmerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
