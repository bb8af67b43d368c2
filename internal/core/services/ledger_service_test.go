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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockUserRepo)
}

// --- RecordTransfer Tests ---

func (suite *LedgerServiceTestSuite) TestRecordTransfer_FromOwnAccount() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		Date:       "2025-06-01",
		FromUserID: 2,
		ToUserID:   3,
		Amount:     dec("500"),
	}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(plainUser(3), nil).Once()
	suite.mockLedgerRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(txn domain.MoneyTransaction) bool {
		return txn.FromUserID == 2 && txn.ToUserID == 3 &&
			txn.Amount.Equal(dec("500")) && txn.Type == domain.MoneyNormal
	})).Return(int64(21), nil).Once()

	txn, err := suite.service.RecordTransfer(ctx, 2, req)

	suite.Require().NoError(err)
	suite.Equal(int64(21), txn.TransactionID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransfer_FromOthersAccountNeedsAdmin() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		Date:       "2025-06-01",
		FromUserID: 3,
		ToUserID:   2,
		Amount:     dec("500"),
	}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()

	txn, err := suite.service.RecordTransfer(ctx, 2, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(txn)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransfer_SurfacesInsufficientFunds() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		Date:       "2025-06-01",
		FromUserID: 2,
		ToUserID:   3,
		Amount:     dec("9999"),
	}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(plainUser(3), nil).Once()
	suite.mockLedgerRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.MoneyTransaction")).
		Return(int64(0), apperrors.ErrInsufficientFunds).Once()

	txn, err := suite.service.RecordTransfer(ctx, 2, req)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(txn)
}

func (suite *LedgerServiceTestSuite) TestRecordTransfer_RejectsSelfTransfer() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		Date:       "2025-06-01",
		FromUserID: 2,
		ToUserID:   2,
		Amount:     dec("10"),
	}

	txn, err := suite.service.RecordTransfer(ctx, 2, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
}

func (suite *LedgerServiceTestSuite) TestRecordTransfer_SystemInputTypeRefused() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		Date:       "2025-06-01",
		FromUserID: 2,
		ToUserID:   domain.SystemPartyID,
		Amount:     dec("100"),
		Type:       string(domain.MoneySystemInput),
	}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()

	txn, err := suite.service.RecordTransfer(ctx, 2, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

// --- Balance Tests ---

func (suite *LedgerServiceTestSuite) TestGetBalance_OwnParty() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("GetBalance", ctx, int64(2)).Return(dec("1500"), nil).Once()

	balance, err := suite.service.GetBalance(ctx, 2, 2)

	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("1500")))
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetBalance_OtherPartyNeedsAdmin() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()

	_, err := suite.service.GetBalance(ctx, 2, 3)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "GetBalance", mock.Anything, mock.Anything)
}

// --- AdjustSystemMoney Tests ---

func (suite *LedgerServiceTestSuite) TestAdjustSystemMoney_RecordsDeltaIntoSystem() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(adminUser(1), nil).Once()
	suite.mockLedgerRepo.On("GetBalance", ctx, domain.SystemPartyID).Return(dec("1000"), nil).Once()
	suite.mockLedgerRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(txn domain.MoneyTransaction) bool {
		return txn.FromUserID == 1 && txn.ToUserID == domain.SystemPartyID &&
			txn.Amount.Equal(dec("500")) && txn.Type == domain.MoneySystemInput
	})).Return(int64(30), nil).Once()

	err := suite.service.AdjustSystemMoney(ctx, 1, dec("1500"))

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdjustSystemMoney_RecordsDeltaOutOfSystem() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(adminUser(1), nil).Once()
	suite.mockLedgerRepo.On("GetBalance", ctx, domain.SystemPartyID).Return(dec("1000"), nil).Once()
	suite.mockLedgerRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(txn domain.MoneyTransaction) bool {
		return txn.FromUserID == domain.SystemPartyID && txn.ToUserID == 1 &&
			txn.Amount.Equal(dec("400"))
	})).Return(int64(31), nil).Once()

	err := suite.service.AdjustSystemMoney(ctx, 1, dec("600"))

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdjustSystemMoney_NoopWhenUnchanged() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(adminUser(1), nil).Once()
	suite.mockLedgerRepo.On("GetBalance", ctx, domain.SystemPartyID).Return(dec("1000"), nil).Once()

	err := suite.service.AdjustSystemMoney(ctx, 1, dec("1000"))

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

// --- Reconcile Tests ---

func (suite *LedgerServiceTestSuite) TestReconcile_AdminOnly() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(2)).Return(plainUser(2), nil).Once()

	_, err := suite.service.Reconcile(ctx, 2)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ReconcileBalances", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReconcile_ReturnsCorrectedCount() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(adminUser(1), nil).Once()
	suite.mockLedgerRepo.On("ReconcileBalances", ctx).Return(4, nil).Once()

	corrected, err := suite.service.Reconcile(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(4, corrected)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
