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

type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewLedgerService creates the internal money ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo, userRepo: userRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// authorizeRead allows a user to read their own party and admins to read any.
func (s *ledgerService) authorizeRead(ctx context.Context, callerID, partyID int64) error {
	if callerID == partyID {
		return nil
	}
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return err
	}
	return nil
}

func (s *ledgerService) GetBalance(ctx context.Context, callerID int64, partyID int64) (decimal.Decimal, error) {
	if err := s.authorizeRead(ctx, callerID, partyID); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.ledgerRepo.GetBalance(ctx, partyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance for party %d: %w", partyID, err)
	}
	return balance, nil
}

func (s *ledgerService) GetSystemBalance(ctx context.Context) (decimal.Decimal, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, domain.SystemPartyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get system balance: %w", err)
	}
	return balance, nil
}

func (s *ledgerService) ListTransfers(ctx context.Context, callerID int64, partyID int64) ([]domain.MoneyTransaction, error) {
	if err := s.authorizeRead(ctx, callerID, partyID); err != nil {
		return nil, err
	}

	txns, err := s.ledgerRepo.FindTransfersByParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers for party %d: %w", partyID, err)
	}
	return txns, nil
}

func (s *ledgerService) ListAllTransfers(ctx context.Context, callerID int64) ([]domain.MoneyTransaction, error) {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}

	txns, err := s.ledgerRepo.FindAllTransfers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all transfers: %w", err)
	}
	return txns, nil
}

func (s *ledgerService) RecordTransfer(ctx context.Context, callerID int64, req dto.CreateTransferRequest) (*domain.MoneyTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.FromUserID == req.ToUserID {
		return nil, fmt.Errorf("%w: sender and recipient must differ", apperrors.ErrValidation)
	}

	// Users may only send from their own account. Sending from anyone else,
	// the system pseudo-account included, is an admin action.
	if req.FromUserID != callerID {
		if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
			return nil, err
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if err := s.checkPartyExists(ctx, req.FromUserID); err != nil {
		return nil, err
	}
	if err := s.checkPartyExists(ctx, req.ToUserID); err != nil {
		return nil, err
	}

	txnType := domain.MoneyTransactionType(req.Type)
	if txnType == "" {
		txnType = domain.MoneyNormal
	}
	// system_input rows bypass the funds check, so they are only ever created
	// through AdjustSystemMoney, never through the open transfer surface.
	if txnType == domain.MoneySystemInput {
		return nil, fmt.Errorf("%w: system_input entries are recorded via the system money adjustment", apperrors.ErrValidation)
	}

	txn := domain.MoneyTransaction{
		Date:        date,
		FromUserID:  req.FromUserID,
		ToUserID:    req.ToUserID,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        txnType,
		ProofImage:  req.ProofImage,
		CreatedAt:   time.Now().UTC(),
	}

	// Sufficiency of the sender's balance is checked under a row lock inside
	// the repository transaction; the system party is exempt.
	txnID, err := s.ledgerRepo.SaveTransfer(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to record transfer from %d to %d: %w", req.FromUserID, req.ToUserID, err)
	}
	txn.TransactionID = txnID
	return &txn, nil
}

func (s *ledgerService) AdjustSystemMoney(ctx context.Context, callerID int64, newTotal decimal.Decimal) error {
	admin, err := requireAdmin(ctx, s.userRepo, callerID)
	if err != nil {
		return err
	}
	if newTotal.IsNegative() {
		return fmt.Errorf("%w: system total cannot be negative", apperrors.ErrValidation)
	}

	current, err := s.ledgerRepo.GetBalance(ctx, domain.SystemPartyID)
	if err != nil {
		return fmt.Errorf("failed to read system balance: %w", err)
	}

	delta := newTotal.Sub(current)
	if delta.IsZero() {
		return nil
	}

	// The delta is recorded as a transfer between the admin and the system so
	// the float stays derivable from the ledger alone. system_input entries
	// carry external money and skip the sender funds check, so the initial
	// float on a fresh ledger records cleanly.
	txn := domain.MoneyTransaction{
		Date:        time.Now().UTC(),
		Amount:      delta.Abs(),
		Description: fmt.Sprintf("system money adjusted to %s", newTotal.String()),
		Type:        domain.MoneySystemInput,
		CreatedAt:   time.Now().UTC(),
	}
	if delta.IsPositive() {
		txn.FromUserID = admin.UserID
		txn.ToUserID = domain.SystemPartyID
	} else {
		txn.FromUserID = domain.SystemPartyID
		txn.ToUserID = admin.UserID
	}

	if _, err := s.ledgerRepo.SaveTransfer(ctx, txn); err != nil {
		return fmt.Errorf("failed to adjust system money: %w", err)
	}
	return nil
}

func (s *ledgerService) Reconcile(ctx context.Context, callerID int64) (int, error) {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return 0, err
	}

	corrected, err := s.ledgerRepo.ReconcileBalances(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile balances: %w", err)
	}
	return corrected, nil
}

// checkPartyExists validates a transfer party. ID 0 is always valid.
func (s *ledgerService) checkPartyExists(ctx context.Context, partyID int64) error {
	if partyID == domain.SystemPartyID {
		return nil
	}
	if _, err := s.userRepo.FindUserByID(ctx, partyID); err != nil {
		return fmt.Errorf("failed to load transfer party %d: %w", partyID, err)
	}
	return nil
}
