package dto

import (
	"time"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
)

// RegisterRequest is the body of POST /auth/register.
// Password is required for the email provider, GoogleToken for the google provider.
type RegisterRequest struct {
	Username     string         `json:"username" binding:"required,notblank,max=50"`
	Email        string         `json:"email" binding:"required,email"`
	Password     string         `json:"password,omitempty"`
	AuthProvider string         `json:"auth_provider,omitempty" binding:"omitempty,oneof=email google"`
	GoogleToken  string         `json:"google_token,omitempty"`
	Preferences  map[string]any `json:"preferences,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the body of POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLoginURLResponse is returned by GET /auth/google/login-url.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	UserID       string         `json:"user_id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	AuthProvider string         `json:"auth_provider"`
	Preferences  map[string]any `json:"preferences"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Email:        user.Email,
		AuthProvider: string(user.AuthProvider),
		Preferences:  user.Preferences,
		CreatedAt:    user.CreatedAt,
	}
}

// TokensResponse is the "tokens" member of auth responses.
type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ToTokensResponse converts a domain.TokenPair to TokensResponse DTO
func ToTokensResponse(pair *domain.TokenPair) *TokensResponse {
	if pair == nil {
		return nil
	}
	return &TokensResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
