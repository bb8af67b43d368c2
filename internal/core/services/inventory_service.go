package services

import (
	"context"
	"fmt"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
)

type inventoryService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewInventoryService creates the inventory and payment reporting service.
func NewInventoryService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{reportingRepo: reportingRepo}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) GlobalInventory(ctx context.Context) (domain.InventorySummary, error) {
	summary, err := s.reportingRepo.GetGlobalInventory(ctx)
	if err != nil {
		return domain.InventorySummary{}, fmt.Errorf("failed to compute global inventory: %w", err)
	}
	return summary, nil
}

func (s *inventoryService) PerFarmerInventory(ctx context.Context) ([]domain.FarmerInventory, error) {
	inventories, err := s.reportingRepo.GetPerFarmerInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute per-farmer inventory: %w", err)
	}
	return inventories, nil
}

func (s *inventoryService) PaymentSummary(ctx context.Context, params dto.PaymentSummaryParams) ([]domain.PoultryTransaction, error) {
	filter, err := filterFromParams(params.FromDate, params.ToDate, "", params.FarmerID)
	if err != nil {
		return nil, err
	}

	txns, err := s.reportingRepo.GetPaymentSummary(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute payment summary: %w", err)
	}
	return txns, nil
}
