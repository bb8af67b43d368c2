package services

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
)

// FarmerSvcFacade manages the farmer register.
type FarmerSvcFacade interface {
	// CreateFarmer registers a new farmer.
	CreateFarmer(ctx context.Context, req dto.CreateFarmerRequest) (*domain.Farmer, error)

	// GetFarmer retrieves a farmer by ID.
	GetFarmer(ctx context.Context, farmerID int64) (*domain.Farmer, error)

	// ListFarmers retrieves all farmers ordered by name.
	ListFarmers(ctx context.Context) ([]domain.Farmer, error)

	// UpdateFarmer applies a partial update to a farmer.
	UpdateFarmer(ctx context.Context, farmerID int64, req dto.UpdateFarmerRequest) (*domain.Farmer, error)

	// DeleteFarmer removes a farmer. Admin only; fails with
	// apperrors.ErrHasDependentTransactions while any poultry transaction
	// references the farmer.
	DeleteFarmer(ctx context.Context, callerID int64, farmerID int64) error
}
