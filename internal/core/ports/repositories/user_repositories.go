package repositories

import (
	"context"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves all users, newest first.
	FindUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the number of user rows.
	CountUsers(ctx context.Context) (int64, error)

	// FindAdminUser retrieves the first user holding the admin role.
	FindAdminUser(ctx context.Context) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns the generated ID.
	// Returns apperrors.ErrDuplicate when the username is taken.
	SaveUser(ctx context.Context, user domain.User) (int64, error)

	// DeleteUser removes a user row.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
