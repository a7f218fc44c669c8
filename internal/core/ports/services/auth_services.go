package services

import (
	"context"
	"time"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade issues and verifies access and refresh tokens.
type TokenSvcFacade interface {
	// IssueAccessToken signs a short-lived access token for userID.
	IssueAccessToken(ctx context.Context, userID string) (string, time.Time, error)
	// IssueRefreshToken signs a long-lived refresh token for userID with the refresh secret.
	IssueRefreshToken(ctx context.Context, userID string) (string, time.Time, error)
	// IssueTokenPair issues both tokens.
	IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error)
	// VerifyAccessToken returns the claims of a valid access token or apperrors.ErrUnauthorized.
	VerifyAccessToken(ctx context.Context, token string) (*domain.TokenClaims, error)
	// Refresh mints a new access token from a valid refresh token. The refresh token stays valid.
	Refresh(ctx context.Context, refreshToken string) (string, time.Time, error)
}

// GoogleIdentityVerifier validates Google ID tokens.
type GoogleIdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleIdentity, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	GoogleIdentityVerifier
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
}
