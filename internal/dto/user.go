package dto

import (
	"time"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
)

// CreateUserRequest carries the data for creating a new user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID    int64     `json:"userID"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse wraps a user listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain User to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
