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

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewExpenseService creates the expense tracking service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, userRepo: userRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) RecordExpense(ctx context.Context, callerID int64, req dto.RecordExpenseRequest) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		UserID:       callerID,
		Amount:       req.Amount,
		Category:     req.Category,
		Description:  req.Description,
		Date:         date,
		ReceiptImage: req.ReceiptImage,
		CreatedAt:    now,
	}

	transfer := domain.MoneyTransaction{
		Date:        date,
		FromUserID:  callerID,
		ToUserID:    domain.SystemPartyID,
		Amount:      req.Amount,
		Description: fmt.Sprintf("expense: %s", req.Category),
		Type:        domain.MoneyExpense,
		CreatedAt:   now,
	}

	// Both rows land in one database transaction; the balance check happens
	// there under the user's row lock.
	expenseID, err := s.expenseRepo.SaveExpenseWithTransfer(ctx, expense, transfer)
	if err != nil {
		return nil, fmt.Errorf("failed to record expense for user %d: %w", callerID, err)
	}
	expense.ExpenseID = expenseID
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, callerID int64, targetUserID int64) ([]domain.Expense, error) {
	if targetUserID != callerID {
		if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
			return nil, err
		}
	}

	if targetUserID == 0 {
		expenses, err := s.expenseRepo.FindAllExpenses(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list all expenses: %w", err)
		}
		return expenses, nil
	}

	expenses, err := s.expenseRepo.FindExpensesByUser(ctx, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for user %d: %w", targetUserID, err)
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, callerID int64, expenseID int64) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("failed to load expense %d for deletion: %w", expenseID, err)
	}

	if expense.UserID != callerID {
		if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
			return err
		}
	}

	// The compensating system -> user entry restores the balance in the same
	// database transaction that removes the expense.
	if err := s.expenseRepo.DeleteExpenseWithReversal(ctx, expenseID, expense.UserID); err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	return nil
}
