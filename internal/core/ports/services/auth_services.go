package services

import (
	"context"
	"time"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
)

// AuthSvcFacade authenticates credentials and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies the username/password pair against the stored hash and
	// returns the user with a signed access token. Returns
	// apperrors.ErrUnauthorized for unknown users or wrong passwords,
	// without distinguishing the two.
	Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error)
}
