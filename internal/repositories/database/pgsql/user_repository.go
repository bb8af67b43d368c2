package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrybooks/poultry_books_app/internal/apperrors"
	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	portsrepo "github.com/poultrybooks/poultry_books_app/internal/core/ports/repositories"
	"github.com/poultrybooks/poultry_books_app/internal/models"
	"github.com/poultrybooks/poultry_books_app/internal/utils/mapping"
)

const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id;
	`
	var userID int64
	err := r.Pool.QueryRow(ctx, query,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.CreatedAt,
	).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, apperrors.ErrDuplicate
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}
	return userID, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, created_at
		FROM users
		WHERE user_id = $1;
	`
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.PasswordHash,
		&modelUser.Role,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, created_at
		FROM users
		WHERE username = $1;
	`
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.PasswordHash,
		&modelUser.Role,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username %q: %w", username, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, created_at
		FROM users
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		var modelUser models.User
		err := rows.Scan(
			&modelUser.UserID,
			&modelUser.Username,
			&modelUser.PasswordHash,
			&modelUser.Role,
			&modelUser.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		modelUsers = append(modelUsers, modelUser)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) FindAdminUser(ctx context.Context) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, created_at
		FROM users
		WHERE role = $1
		ORDER BY user_id
		LIMIT 1;
	`
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, string(domain.RoleAdmin)).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.PasswordHash,
		&modelUser.Role,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
