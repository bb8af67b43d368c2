package services

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
)

// InventorySvcFacade is the pure read model over poultry transactions.
type InventorySvcFacade interface {
	// GlobalInventory returns overall purchased/sold/remaining quantities.
	GlobalInventory(ctx context.Context) (domain.InventorySummary, error)

	// PerFarmerInventory returns the stock position per farmer.
	PerFarmerInventory(ctx context.Context) ([]domain.FarmerInventory, error)

	// PaymentSummary returns transactions with their payment progress.
	PaymentSummary(ctx context.Context, params dto.PaymentSummaryParams) ([]domain.PoultryTransaction, error)
}
