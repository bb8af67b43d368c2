package dto

import "time"

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	UserID      int64     `json:"userID"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
