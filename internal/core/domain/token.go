package domain

import "time"

// TokenClaims is the closed set of claims carried by access and refresh tokens.
type TokenClaims struct {
	UserID    string
	ExpiresAt time.Time
}

// TokenPair is what a successful registration or login hands back.
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}
