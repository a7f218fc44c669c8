package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/platform/config"
	"github.com/SscSPs/workspace_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	BaseService
	clientID string
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
	validate     func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

// VerifyIDToken validates a Google ID token against the configured client id.
// Every failure, including a missing client id, is reported as ErrUnauthorized.
func (s *googleOAuthHandlerService) VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleIdentity, error) {
	if s.clientID == "" {
		s.LogError(ctx, errors.New("google client id not configured"), "Cannot verify Google ID token")
		return nil, fmt.Errorf("google sign-in is not configured: %w", apperrors.ErrUnauthorized)
	}
	if idToken == "" {
		return nil, fmt.Errorf("empty google id token: %w", apperrors.ErrUnauthorized)
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.LogDebug(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google ID token validation failed: %w", apperrors.ErrUnauthorized)
	}
	return identityFromPayload(payload)
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	// 16 bytes -> 32 char hex string
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
// The returned token carries the ID token under the "id_token" extra.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange Google authorization code")
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", apperrors.ErrUnauthorized)
	}
	return token, nil
}

func identityFromPayload(payload *idtoken.Payload) (*domain.GoogleIdentity, error) {
	if payload == nil {
		return nil, fmt.Errorf("empty google token payload: %w", apperrors.ErrUnauthorized)
	}
	identity := &domain.GoogleIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if identity.Email == "" {
		return nil, fmt.Errorf("google token carries no email: %w", apperrors.ErrUnauthorized)
	}
	return identity, nil
}
