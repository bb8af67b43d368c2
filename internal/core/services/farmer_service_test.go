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

type FarmerServiceTestSuite struct {
	suite.Suite
	mockFarmerRepo *MockFarmerRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.FarmerSvcFacade
}

func (suite *FarmerServiceTestSuite) SetupTest() {
	suite.mockFarmerRepo = new(MockFarmerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewFarmerService(suite.mockFarmerRepo, suite.mockUserRepo)
}

func (suite *FarmerServiceTestSuite) TestCreateFarmer_Success() {
	ctx := context.Background()
	req := dto.CreateFarmerRequest{Name: "Ram", ContactNumber: "9876543210", Location: "Hosur"}

	suite.mockFarmerRepo.On("SaveFarmer", ctx, mock.MatchedBy(func(farmer domain.Farmer) bool {
		return farmer.Name == "Ram" && farmer.Location == "Hosur"
	})).Return(int64(4), nil).Once()

	farmer, err := suite.service.CreateFarmer(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(4), farmer.FarmerID)
	suite.mockFarmerRepo.AssertExpectations(suite.T())
}

func (suite *FarmerServiceTestSuite) TestUpdateFarmer_PartialFields() {
	ctx := context.Background()
	newLocation := "Salem"
	req := dto.UpdateFarmerRequest{Location: &newLocation}

	existing := &domain.Farmer{FarmerID: 4, Name: "Ram", ContactNumber: "9876543210", Location: "Hosur"}

	suite.mockFarmerRepo.On("FindFarmerByID", ctx, int64(4)).Return(existing, nil).Once()
	suite.mockFarmerRepo.On("UpdateFarmer", ctx, mock.MatchedBy(func(farmer domain.Farmer) bool {
		return farmer.Name == "Ram" && farmer.Location == "Salem"
	})).Return(nil).Once()

	farmer, err := suite.service.UpdateFarmer(ctx, 4, req)

	suite.Require().NoError(err)
	suite.Equal("Salem", farmer.Location)
	suite.Equal("Ram", farmer.Name)
	suite.mockFarmerRepo.AssertExpectations(suite.T())
}

func (suite *FarmerServiceTestSuite) TestDeleteFarmer_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(adminUser(1), nil).Once()
	suite.mockFarmerRepo.On("FindFarmerByID", ctx, int64(4)).Return(&domain.Farmer{FarmerID: 4}, nil).Once()
	suite.mockFarmerRepo.On("CountTransactionsForFarmer", ctx, int64(4)).Return(int64(0), nil).Once()
	suite.mockFarmerRepo.On("DeleteFarmer", ctx, int64(4)).Return(nil).Once()

	err := suite.service.DeleteFarmer(ctx, 1, 4)

	suite.Require().NoError(err)
	suite.mockFarmerRepo.AssertExpectations(suite.T())
}

func (suite *FarmerServiceTestSuite) TestDeleteFarmer_RefusedWithTransactions() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(adminUser(1), nil).Once()
	suite.mockFarmerRepo.On("FindFarmerByID", ctx, int64(4)).Return(&domain.Farmer{FarmerID: 4}, nil).Once()
	suite.mockFarmerRepo.On("CountTransactionsForFarmer", ctx, int64(4)).Return(int64(3), nil).Once()

	err := suite.service.DeleteFarmer(ctx, 1, 4)

	suite.Require().ErrorIs(err, apperrors.ErrHasDependentTransactions)
	suite.mockFarmerRepo.AssertNotCalled(suite.T(), "DeleteFarmer", mock.Anything, mock.Anything)
}

func (suite *FarmerServiceTestSuite) TestDeleteFarmer_NonAdminForbidden() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()

	err := suite.service.DeleteFarmer(ctx, 2, 4)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockFarmerRepo.AssertNotCalled(suite.T(), "DeleteFarmer", mock.Anything, mock.Anything)
}

func TestFarmerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FarmerServiceTestSuite))
}
