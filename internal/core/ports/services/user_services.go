package services

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListUsers retrieves all users. Admin only; the caller's role is
	// re-read from the store.
	ListUsers(ctx context.Context, callerID int64) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user with a hashed password. Admin only.
	CreateUser(ctx context.Context, callerID int64, req dto.CreateUserRequest) (*domain.User, error)

	// DeleteUser removes a user. Admin only; admin accounts can never be
	// deleted.
	DeleteUser(ctx context.Context, callerID int64, targetUserID int64) error

	// EnsureAdminUser seeds the initial administrator when the users table
	// is empty. Returns the admin (existing or created).
	EnsureAdminUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
