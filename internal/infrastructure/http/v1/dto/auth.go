package dto

import "time"

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// MeResponse identifies the authenticated operator.
type MeResponse struct {
	Username string `json:"username"`
}
