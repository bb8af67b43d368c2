package repositories

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
)

// FarmerReader defines read operations for farmer data
type FarmerReader interface {
	// FindFarmerByID retrieves a specific farmer.
	FindFarmerByID(ctx context.Context, farmerID int64) (*domain.Farmer, error)

	// FindFarmers retrieves all farmers ordered by name.
	FindFarmers(ctx context.Context) ([]domain.Farmer, error)

	// CountTransactionsForFarmer returns how many poultry transactions
	// reference the farmer.
	CountTransactionsForFarmer(ctx context.Context, farmerID int64) (int64, error)
}

// FarmerWriter defines write operations for farmer data
type FarmerWriter interface {
	// SaveFarmer persists a new farmer and returns the generated ID.
	SaveFarmer(ctx context.Context, farmer domain.Farmer) (int64, error)

	// UpdateFarmer updates a farmer's details.
	UpdateFarmer(ctx context.Context, farmer domain.Farmer) error

	// DeleteFarmer removes a farmer row.
	DeleteFarmer(ctx context.Context, farmerID int64) error
}

// FarmerRepositoryFacade combines all farmer-related repository interfaces
type FarmerRepositoryFacade interface {
	FarmerReader
	FarmerWriter
}
