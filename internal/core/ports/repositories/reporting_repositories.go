package repositories

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
)

// ReportingRepositoryFacade defines the aggregate read models computed by
// grouping and summing poultry transactions. Nothing here is stored; every
// call recomputes from the underlying rows.
type ReportingRepositoryFacade interface {
	// GetGlobalInventory returns overall purchased/sold/remaining quantities.
	GetGlobalInventory(ctx context.Context) (domain.InventorySummary, error)

	// GetPerFarmerInventory returns purchased/sold/remaining per farmer.
	GetPerFarmerInventory(ctx context.Context) ([]domain.FarmerInventory, error)

	// GetPaymentSummary returns transactions with their payment progress,
	// optionally narrowed by farmer and date range.
	GetPaymentSummary(ctx context.Context, filter domain.PoultryTransactionFilter) ([]domain.PoultryTransaction, error)
}
