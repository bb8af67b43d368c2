package domain

import "time"

// SystemPartyID is the reserved identity used as counterparty for money
// entering or leaving the tracked system. It is not a row in the users table.
const SystemPartyID int64 = 0

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents an application user in the domain.
type User struct {
	UserID       int64     `json:"userID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
