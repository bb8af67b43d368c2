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
	"github.com/poultrybooks/poultry_books_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user management service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// requireAdmin re-reads the caller's role from the store. Privileged
// operations never trust a role claim carried by the request.
func requireAdmin(ctx context.Context, userRepo portsrepo.UserReader, callerID int64) (*domain.User, error) {
	caller, err := userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caller %d: %w", callerID, err)
	}
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return caller, nil
}

func (s *userService) CreateUser(ctx context.Context, callerID int64, req dto.CreateUserRequest) (*domain.User, error) {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleUser
	}

	user := domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	userID, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", req.Username, err)
	}
	user.UserID = userID

	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, callerID int64) ([]domain.User, error) {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID int64, targetUserID int64) error {
	if _, err := requireAdmin(ctx, s.userRepo, callerID); err != nil {
		return err
	}

	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("failed to load user %d for deletion: %w", targetUserID, err)
	}
	// Admin accounts are never deletable, regardless of who asks.
	if target.IsAdmin() {
		return apperrors.ErrCannotDeleteAdmin
	}

	if err := s.userRepo.DeleteUser(ctx, targetUserID); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", targetUserID, err)
	}
	return nil
}

// EnsureAdminUser seeds the initial administrator from configuration. It is a
// no-op when any user already exists.
func (s *userService) EnsureAdminUser(ctx context.Context, username, password string) (*domain.User, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		admin, err := s.userRepo.FindAdminUser(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to find admin user: %w", err)
		}
		return admin, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash initial admin password: %w", err)
	}

	admin := domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	adminID, err := s.userRepo.SaveUser(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}
	admin.UserID = adminID
	return &admin, nil
}
