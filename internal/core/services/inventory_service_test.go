package services_test

import (
	"context"
	"testing"

	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/core/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewInventoryService(suite.mockReportingRepo)
}

func (suite *InventoryServiceTestSuite) TestGlobalInventory() {
	ctx := context.Background()
	summary := domain.InventorySummary{
		TotalPurchased: dec("300"),
		TotalSold:      dec("120"),
		RemainingStock: dec("180"),
	}

	suite.mockReportingRepo.On("GetGlobalInventory", ctx).Return(summary, nil).Once()

	got, err := suite.service.GlobalInventory(ctx)

	suite.Require().NoError(err)
	suite.True(got.RemainingStock.Equal(dec("180")))
}

func (suite *InventoryServiceTestSuite) TestPaymentSummary_BuildsFilter() {
	ctx := context.Background()
	params := dto.PaymentSummaryParams{FarmerID: 4, FromDate: "2025-06-01", ToDate: "2025-06-30"}

	suite.mockReportingRepo.On("GetPaymentSummary", ctx, mock.MatchedBy(func(filter domain.PoultryTransactionFilter) bool {
		return filter.FarmerID != nil && *filter.FarmerID == 4 &&
			filter.FromDate != nil && filter.FromDate.Format("2006-01-02") == "2025-06-01" &&
			filter.ToDate != nil && filter.ToDate.Format("2006-01-02") == "2025-06-30" &&
			filter.Type == nil
	})).Return([]domain.PoultryTransaction{{TransactionID: 11}}, nil).Once()

	txns, err := suite.service.PaymentSummary(ctx, params)

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestPaymentSummary_RejectsBadDate() {
	ctx := context.Background()
	params := dto.PaymentSummaryParams{FromDate: "June 1st"}

	txns, err := suite.service.PaymentSummary(ctx, params)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txns)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetPaymentSummary", mock.Anything, mock.Anything)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
