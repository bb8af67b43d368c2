package services

import (
	"context"
	"fmt"
	"time"

	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
)

type farmerService struct {
	farmerRepo portsrepo.FarmerRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewFarmerService creates the farmer register service.
func NewFarmerService(farmerRepo portsrepo.FarmerRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.FarmerSvcFacade {
	return &farmerService{farmerRepo: farmerRepo, userRepo: userRepo}
}

var _ portssvc.FarmerSvcFacade = (*farmerService)(nil)

func (s *farmerService) CreateFarmer(ctx context.Context, req dto.CreateFarmerRequest) (*domain.Farmer, error) {
	farmer := domain.Farmer{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Location:      req.Location,
		CreatedAt:     time.Now().UTC(),
	}

	farmerID, err := s.farmerRepo.SaveFarmer(ctx, farmer)
	if err != nil {
		return nil, fmt.Errorf("failed to create farmer %q: %w", req.Name, err)
	}
	farmer.FarmerID = farmerID
	return &farmer, nil
}

func (s *farmerService) GetFarmer(ctx context.Context, farmerID int64) (*domain.Farmer, error) {
	farmer, err := s.farmerRepo.FindFarmerByID(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farmer %d: %w", farmerID, err)
	}
	return farmer, nil
}

func (s *farmerService) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	farmers, err := s.farmerRepo.FindFarmers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}
	return farmers, nil
}

func (s *farmerService) UpdateFarmer(ctx context.Context, farmerID int64, req dto.UpdateFarmerRequest) (*domain.Farmer, error) {
	farmer, err := s.farmerRepo.FindFarmerByID(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farmer %d for update: %w", farmerID, err)
	}

	if req.Name != nil {
		farmer.Name = *req.Name
	}
	if req.ContactNumber != nil {
		farmer.ContactNumber = *req.ContactNumber
	}
	if req.Location != nil {
		farmer.Location = *req.Location
	}

	if err := s.farmerRepo.UpdateFarmer(ctx, *farmer); err != nil {
		return nil, fmt.Errorf("failed to update farmer %d: %w", farmerID, err)
	}
	return farmer, nil
}

func (s *farmerService) DeleteFarmer(ctx context.Context, callerID int64, farmerID int64) error {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return err
	}

	if _, err := s.farmerRepo.FindFarmerByID(ctx, farmerID); err != nil {
		return fmt.Errorf("failed to load farmer %d for deletion: %w", farmerID, err)
	}

	count, err := s.farmerRepo.CountTransactionsForFarmer(ctx, farmerID)
	if err != nil {
		return fmt.Errorf("failed to count transactions for farmer %d: %w", farmerID, err)
	}
	if count > 0 {
		return apperrors.ErrHasDependentTransactions
	}

	if err := s.farmerRepo.DeleteFarmer(ctx, farmerID); err != nil {
		return fmt.Errorf("failed to delete farmer %d: %w", farmerID, err)
	}
	return nil
}
