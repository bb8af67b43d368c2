package models

import "time"

// User mirrors a row of the users table.
type User struct {
	UserID       int64     `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
