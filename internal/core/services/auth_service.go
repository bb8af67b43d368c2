package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/platform/config"
	"github.com/poultrybooks/poultry_books_app/internal/utils"
)

type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates the credential-check and token-issuing service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a bad password so callers cannot enumerate
			// usernames.
			return nil, "", time.Time{}, apperrors.ErrUnauthorized
		}
		return nil, "", time.Time{}, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return user, token, expiresAt, nil
}
