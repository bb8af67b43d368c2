package services_test

import (
	"context"
	"testing"

	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/core/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PoultryServiceTestSuite struct {
	suite.Suite
	mockPoultryRepo *MockPoultryRepository
	mockFarmerRepo  *MockFarmerRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.PoultrySvcFacade
}

func (suite *PoultryServiceTestSuite) SetupTest() {
	suite.mockPoultryRepo = new(MockPoultryRepository)
	suite.mockFarmerRepo = new(MockFarmerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewPoultryService(suite.mockPoultryRepo, suite.mockFarmerRepo, suite.mockUserRepo)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- RecordTransaction Tests ---

func (suite *PoultryServiceTestSuite) TestRecordTransaction_ComputesTotalAndStatus() {
	ctx := context.Background()
	req := dto.CreatePoultryTransactionRequest{
		Date:          "2025-06-01",
		FarmerID:      4,
		Type:          "buy",
		Quantity:      dec("100"),
		PricePerUnit:  dec("50"),
		PaymentAmount: dec("2000"),
		PaymentMode:   "cash",
	}

	suite.mockFarmerRepo.On("FindFarmerByID", ctx, int64(4)).Return(&domain.Farmer{FarmerID: 4, Name: "Ram"}, nil).Once()
	suite.mockPoultryRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.PoultryTransaction) bool {
		return txn.TotalAmount.Equal(dec("5000")) &&
			txn.PaymentStatus == domain.PaymentPartiallyPaid &&
			txn.Type == domain.TransactionBuy
	})).Return(int64(11), nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(int64(11), txn.TransactionID)
	suite.True(txn.TotalAmount.Equal(dec("5000")))
	suite.Equal(domain.PaymentPartiallyPaid, txn.PaymentStatus)
	suite.mockPoultryRepo.AssertExpectations(suite.T())
}

func (suite *PoultryServiceTestSuite) TestRecordTransaction_UnpaidWhenNoPayment() {
	ctx := context.Background()
	req := dto.CreatePoultryTransactionRequest{
		Date:         "2025-06-01",
		FarmerID:     4,
		Type:         "sell",
		Quantity:     dec("20"),
		PricePerUnit: dec("60"),
	}

	suite.mockFarmerRepo.On("FindFarmerByID", ctx, int64(4)).Return(&domain.Farmer{FarmerID: 4}, nil).Once()
	suite.mockPoultryRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.PoultryTransaction) bool {
		return txn.PaymentStatus == domain.PaymentUnpaid && txn.TotalAmount.Equal(dec("1200"))
	})).Return(int64(12), nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentUnpaid, txn.PaymentStatus)
}

func (suite *PoultryServiceTestSuite) TestRecordTransaction_RejectsNonPositiveQuantity() {
	ctx := context.Background()
	req := dto.CreatePoultryTransactionRequest{
		Date:         "2025-06-01",
		FarmerID:     4,
		Type:         "buy",
		Quantity:     dec("0"),
		PricePerUnit: dec("50"),
	}

	txn, err := suite.service.RecordTransaction(ctx, 1, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockPoultryRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *PoultryServiceTestSuite) TestRecordTransaction_RejectsOverpaymentAtCreation() {
	ctx := context.Background()
	req := dto.CreatePoultryTransactionRequest{
		Date:          "2025-06-01",
		FarmerID:      4,
		Type:          "buy",
		Quantity:      dec("100"),
		PricePerUnit:  dec("50"),
		PaymentAmount: dec("5100"),
	}

	suite.mockFarmerRepo.On("FindFarmerByID", ctx, int64(4)).Return(&domain.Farmer{FarmerID: 4}, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, 1, req)

	suite.Require().ErrorIs(err, apperrors.ErrOverPayment)
	suite.Nil(txn)
}

func (suite *PoultryServiceTestSuite) TestRecordTransaction_UnknownFarmer() {
	ctx := context.Background()
	req := dto.CreatePoultryTransactionRequest{
		Date:         "2025-06-01",
		FarmerID:     99,
		Type:         "buy",
		Quantity:     dec("10"),
		PricePerUnit: dec("50"),
	}

	suite.mockFarmerRepo.On("FindFarmerByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, 1, req)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

// --- AppendPayment Tests ---

func (suite *PoultryServiceTestSuite) TestAppendPayment_DelegatesToRepository() {
	ctx := context.Background()
	req := dto.AppendPaymentRequest{Date: "2025-06-10", Amount: dec("3000"), Mode: "upi"}

	updated := &domain.PoultryTransaction{
		TransactionID: 11,
		TotalAmount:   dec("5000"),
		PaymentAmount: dec("5000"),
		PaymentStatus: domain.PaymentFullyPaid,
	}
	suite.mockPoultryRepo.On("AppendPayment", ctx, int64(11), mock.MatchedBy(func(p domain.PaymentHistory) bool {
		return p.TransactionID == 11 && p.Amount.Equal(dec("3000")) && p.Mode == "upi"
	})).Return(updated, nil).Once()

	txn, err := suite.service.AppendPayment(ctx, 1, 11, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentFullyPaid, txn.PaymentStatus)
	suite.mockPoultryRepo.AssertExpectations(suite.T())
}

func (suite *PoultryServiceTestSuite) TestAppendPayment_SurfacesOverpayment() {
	ctx := context.Background()
	req := dto.AppendPaymentRequest{Date: "2025-06-10", Amount: dec("100"), Mode: "cash"}

	suite.mockPoultryRepo.On("AppendPayment", ctx, int64(11), mock.AnythingOfType("domain.PaymentHistory")).
		Return(nil, apperrors.ErrOverPayment).Once()

	txn, err := suite.service.AppendPayment(ctx, 1, 11, req)

	suite.Require().ErrorIs(err, apperrors.ErrOverPayment)
	suite.Nil(txn)
}

func (suite *PoultryServiceTestSuite) TestAppendPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.AppendPaymentRequest{Date: "2025-06-10", Amount: dec("-5"), Mode: "cash"}

	txn, err := suite.service.AppendPayment(ctx, 1, 11, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockPoultryRepo.AssertNotCalled(suite.T(), "AppendPayment", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateTransaction Tests ---

func (suite *PoultryServiceTestSuite) TestUpdateTransaction_AdminRecomputesTotal() {
	ctx := context.Background()
	newQty := dec("120")
	req := dto.UpdatePoultryTransactionRequest{Quantity: &newQty}

	existing := &domain.PoultryTransaction{
		TransactionID: 11,
		Quantity:      dec("100"),
		PricePerUnit:  dec("50"),
		TotalAmount:   dec("5000"),
		PaymentAmount: dec("5000"),
		PaymentStatus: domain.PaymentFullyPaid,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(adminUser(1), nil).Once()
	suite.mockPoultryRepo.On("FindTransactionByID", ctx, int64(11)).Return(existing, nil).Once()
	suite.mockPoultryRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.PoultryTransaction) bool {
		return txn.TotalAmount.Equal(dec("6000")) && txn.PaymentStatus == domain.PaymentPartiallyPaid
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, 1, 11, req)

	suite.Require().NoError(err)
	suite.True(txn.TotalAmount.Equal(dec("6000")))
	suite.Equal(domain.PaymentPartiallyPaid, txn.PaymentStatus)
	suite.mockPoultryRepo.AssertExpectations(suite.T())
}

func (suite *PoultryServiceTestSuite) TestUpdateTransaction_NonAdminForbidden() {
	ctx := context.Background()
	req := dto.UpdatePoultryTransactionRequest{}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, 2, 11, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(txn)
	suite.mockPoultryRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func TestPoultryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PoultryServiceTestSuite))
}
