package services_test

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindAdminUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock FarmerRepository ---

type MockFarmerRepository struct {
	mock.Mock
}

var _ portsrepo.FarmerRepositoryFacade = (*MockFarmerRepository)(nil)

func (m *MockFarmerRepository) FindFarmerByID(ctx context.Context, farmerID int64) (*domain.Farmer, error) {
	args := m.Called(ctx, farmerID)
	var farmer *domain.Farmer
	if args.Get(0) != nil {
		farmer = args.Get(0).(*domain.Farmer)
	}
	return farmer, args.Error(1)
}

func (m *MockFarmerRepository) FindFarmers(ctx context.Context) ([]domain.Farmer, error) {
	args := m.Called(ctx)
	var farmers []domain.Farmer
	if args.Get(0) != nil {
		farmers = args.Get(0).([]domain.Farmer)
	}
	return farmers, args.Error(1)
}

func (m *MockFarmerRepository) CountTransactionsForFarmer(ctx context.Context, farmerID int64) (int64, error) {
	args := m.Called(ctx, farmerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFarmerRepository) SaveFarmer(ctx context.Context, farmer domain.Farmer) (int64, error) {
	args := m.Called(ctx, farmer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFarmerRepository) UpdateFarmer(ctx context.Context, farmer domain.Farmer) error {
	args := m.Called(ctx, farmer)
	return args.Error(0)
}

func (m *MockFarmerRepository) DeleteFarmer(ctx context.Context, farmerID int64) error {
	args := m.Called(ctx, farmerID)
	return args.Error(0)
}

// --- Mock PoultryRepository ---

type MockPoultryRepository struct {
	mock.Mock
}

var _ portsrepo.PoultryRepositoryFacade = (*MockPoultryRepository)(nil)

func (m *MockPoultryRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.PoultryTransaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.PoultryTransaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.PoultryTransaction)
	}
	return txn, args.Error(1)
}

func (m *MockPoultryRepository) FindTransactions(ctx context.Context, filter domain.PoultryTransactionFilter) ([]domain.PoultryTransaction, error) {
	args := m.Called(ctx, filter)
	var txns []domain.PoultryTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.PoultryTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockPoultryRepository) SearchTransactions(ctx context.Context, term string, txnType *domain.PoultryTransactionType) ([]domain.PoultryTransaction, error) {
	args := m.Called(ctx, term, txnType)
	var txns []domain.PoultryTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.PoultryTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockPoultryRepository) FindPaymentHistory(ctx context.Context, transactionID int64) ([]domain.PaymentHistory, error) {
	args := m.Called(ctx, transactionID)
	var history []domain.PaymentHistory
	if args.Get(0) != nil {
		history = args.Get(0).([]domain.PaymentHistory)
	}
	return history, args.Error(1)
}

func (m *MockPoultryRepository) SaveTransaction(ctx context.Context, txn domain.PoultryTransaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPoultryRepository) AppendPayment(ctx context.Context, transactionID int64, payment domain.PaymentHistory) (*domain.PoultryTransaction, error) {
	args := m.Called(ctx, transactionID, payment)
	var txn *domain.PoultryTransaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.PoultryTransaction)
	}
	return txn, args.Error(1)
}

func (m *MockPoultryRepository) UpdateTransaction(ctx context.Context, txn domain.PoultryTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockPoultryRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) GetBalance(ctx context.Context, partyID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) FindTransfersByParty(ctx context.Context, partyID int64) ([]domain.MoneyTransaction, error) {
	args := m.Called(ctx, partyID)
	var txns []domain.MoneyTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.MoneyTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockLedgerRepository) FindAllTransfers(ctx context.Context) ([]domain.MoneyTransaction, error) {
	args := m.Called(ctx)
	var txns []domain.MoneyTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.MoneyTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockLedgerRepository) SaveTransfer(ctx context.Context, txn domain.MoneyTransaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) ReconcileBalances(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) FindExpensesByUser(ctx context.Context, userID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpenseWithTransfer(ctx context.Context, expense domain.Expense, transfer domain.MoneyTransaction) (int64, error) {
	args := m.Called(ctx, expense, transfer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpenseWithReversal(ctx context.Context, expenseID int64, userID int64) error {
	args := m.Called(ctx, expenseID, userID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetGlobalInventory(ctx context.Context) (domain.InventorySummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.InventorySummary), args.Error(1)
}

func (m *MockReportingRepository) GetPerFarmerInventory(ctx context.Context) ([]domain.FarmerInventory, error) {
	args := m.Called(ctx)
	var inventories []domain.FarmerInventory
	if args.Get(0) != nil {
		inventories = args.Get(0).([]domain.FarmerInventory)
	}
	return inventories, args.Error(1)
}

func (m *MockReportingRepository) GetPaymentSummary(ctx context.Context, filter domain.PoultryTransactionFilter) ([]domain.PoultryTransaction, error) {
	args := m.Called(ctx, filter)
	var txns []domain.PoultryTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.PoultryTransaction)
	}
	return txns, args.Error(1)
}
