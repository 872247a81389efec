package dto

import "time"

// AdminLoginRequest carries the region admin passphrase.
type AdminLoginRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

// AuthResponse carries the issued admin token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
