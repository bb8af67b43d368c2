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
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type poultryService struct {
	poultryRepo portsrepo.PoultryRepositoryFacade
	farmerRepo  portsrepo.FarmerRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewPoultryService creates the transaction recorder service.
func NewPoultryService(
	poultryRepo portsrepo.PoultryRepositoryFacade,
	farmerRepo portsrepo.FarmerRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.PoultrySvcFacade {
	return &poultryService{
		poultryRepo: poultryRepo,
		farmerRepo:  farmerRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.PoultrySvcFacade = (*poultryService)(nil)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, s)
	}
	return t, nil
}

func (s *poultryService) RecordTransaction(ctx context.Context, callerID int64, req dto.CreatePoultryTransactionRequest) (*domain.PoultryTransaction, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.PricePerUnit.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price per unit must be positive", apperrors.ErrValidation)
	}
	if req.PaymentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount cannot be negative", apperrors.ErrValidation)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	// The farmer must exist; surfaces ErrNotFound before any insert.
	if _, err := s.farmerRepo.FindFarmerByID(ctx, req.FarmerID); err != nil {
		return nil, fmt.Errorf("failed to load farmer %d: %w", req.FarmerID, err)
	}

	totalAmount := req.Quantity.Mul(req.PricePerUnit)
	paymentAmount, ok := domain.ApplyPayment(totalAmount, decimal.Zero, req.PaymentAmount)
	if !ok {
		return nil, apperrors.ErrOverPayment
	}

	txn := domain.PoultryTransaction{
		Date:          date,
		FarmerID:      req.FarmerID,
		Type:          domain.PoultryTransactionType(req.Type),
		Quantity:      req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		TotalAmount:   totalAmount,
		VehicleNumber: req.VehicleNumber,
		DriverName:    req.DriverName,
		Notes:         req.Notes,
		PaymentMode:   req.PaymentMode,
		PaymentAmount: paymentAmount,
		PaymentStatus: domain.DerivePaymentStatus(totalAmount, paymentAmount),
		CreatedAt:     time.Now().UTC(),
	}

	txnID, err := s.poultryRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to record %s transaction: %w", req.Type, err)
	}
	txn.TransactionID = txnID
	return &txn, nil
}

func (s *poultryService) AppendPayment(ctx context.Context, callerID int64, transactionID int64, req dto.AppendPaymentRequest) (*domain.PoultryTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	payment := domain.PaymentHistory{
		TransactionID: transactionID,
		Date:          date,
		Amount:        req.Amount,
		Mode:          req.Mode,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	// Overpayment check and status derivation happen inside the repository's
	// database transaction, under the parent row lock.
	updated, err := s.poultryRepo.AppendPayment(ctx, transactionID, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to append payment to transaction %d: %w", transactionID, err)
	}
	return updated, nil
}

func (s *poultryService) GetTransaction(ctx context.Context, transactionID int64) (*domain.PoultryTransaction, error) {
	txn, err := s.poultryRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", transactionID, err)
	}
	return txn, nil
}

func (s *poultryService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.PoultryTransaction, error) {
	filter, err := filterFromParams(params.FromDate, params.ToDate, params.Type, params.FarmerID)
	if err != nil {
		return nil, err
	}

	txns, err := s.poultryRepo.FindTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *poultryService) SearchTransactions(ctx context.Context, params dto.SearchTransactionsParams) ([]domain.PoultryTransaction, error) {
	var txnType *domain.PoultryTransactionType
	if params.Type != "" {
		t := domain.PoultryTransactionType(params.Type)
		txnType = &t
	}

	txns, err := s.poultryRepo.SearchTransactions(ctx, params.Term, txnType)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	return txns, nil
}

func (s *poultryService) GetPaymentHistory(ctx context.Context, transactionID int64) ([]domain.PaymentHistory, error) {
	if _, err := s.poultryRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return nil, fmt.Errorf("failed to load transaction %d: %w", transactionID, err)
	}

	history, err := s.poultryRepo.FindPaymentHistory(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment history for transaction %d: %w", transactionID, err)
	}
	return history, nil
}

func (s *poultryService) UpdateTransaction(ctx context.Context, callerID int64, transactionID int64, req dto.UpdatePoultryTransactionRequest) (*domain.PoultryTransaction, error) {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}

	txn, err := s.poultryRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %d for update: %w", transactionID, err)
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if req.Quantity != nil {
		if req.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
		}
		txn.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		if req.PricePerUnit.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: price per unit must be positive", apperrors.ErrValidation)
		}
		txn.PricePerUnit = *req.PricePerUnit
	}
	if req.VehicleNumber != nil {
		txn.VehicleNumber = *req.VehicleNumber
	}
	if req.DriverName != nil {
		txn.DriverName = *req.DriverName
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}

	// Total always follows quantity and price; payment fields are only ever
	// moved by AppendPayment.
	txn.TotalAmount = txn.Quantity.Mul(txn.PricePerUnit)
	txn.PaymentStatus = domain.DerivePaymentStatus(txn.TotalAmount, txn.PaymentAmount)

	if err := s.poultryRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction %d: %w", transactionID, err)
	}
	return txn, nil
}

func (s *poultryService) DeleteTransaction(ctx context.Context, callerID int64, transactionID int64) error {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return err
	}

	if _, err := s.poultryRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to load transaction %d for deletion: %w", transactionID, err)
	}

	if err := s.poultryRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return nil
}

// filterFromParams converts string query parameters into a repository filter.
func filterFromParams(fromDate, toDate, txnType string, farmerID int64) (domain.PoultryTransactionFilter, error) {
	var filter domain.PoultryTransactionFilter

	if fromDate != "" {
		from, err := parseDate(fromDate)
		if err != nil {
			return filter, err
		}
		filter.FromDate = &from
	}
	if toDate != "" {
		to, err := parseDate(toDate)
		if err != nil {
			return filter, err
		}
		filter.ToDate = &to
	}
	if txnType != "" {
		t := domain.PoultryTransactionType(txnType)
		filter.Type = &t
	}
	if farmerID != 0 {
		filter.FarmerID = &farmerID
	}

	return filter, nil
}
