package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/platform/config"
	"github.com/SscSPs/workspace_backend/internal/utils"
)

// tokenService implements TokenSvcFacade. Access and refresh tokens are both
// stateless HS256 JWTs signed with different secrets; nothing is persisted,
// so refresh tokens cannot be revoked before they expire.
type tokenService struct {
	BaseService
	accessSecret  string
	accessTTL     time.Duration
	refreshSecret string
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// TokenServiceOption configures the token service
type TokenServiceOption func(*tokenService)

// WithClock replaces time.Now, mainly for expiry tests.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, opts ...TokenServiceOption) portssvc.TokenSvcFacade {
	s := &tokenService{
		accessSecret:  cfg.JWTSecret,
		accessTTL:     cfg.JWTExpiryDuration,
		refreshSecret: cfg.RefreshTokenSecret,
		refreshTTL:    cfg.RefreshTokenExpiryDuration,
		issuer:        cfg.JWTIssuer,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueAccessToken creates a new JWT access token for the given user.
func (s *tokenService) IssueAccessToken(ctx context.Context, userID string) (string, time.Time, error) {
	return s.issue(userID, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken creates a new JWT refresh token for the given user.
func (s *tokenService) IssueRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	return s.issue(userID, s.refreshSecret, s.refreshTTL)
}

func (s *tokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	access, accessExp, err := s.IssueAccessToken(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", userID))
		return nil, err
	}
	refresh, refreshExp, err := s.IssueRefreshToken(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token", slog.String("user_id", userID))
		return nil, err
	}
	return &domain.TokenPair{
		AccessToken:           access,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refresh,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

func (s *tokenService) VerifyAccessToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.accessSecret, s.issuer, s.now)
	if err != nil {
		s.LogDebug(ctx, "Access token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("invalid or expired access token: %w", apperrors.ErrUnauthorized)
	}
	return &domain.TokenClaims{UserID: claims.UserID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Refresh verifies refreshToken against the refresh secret and mints a new access token.
func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.refreshSecret, s.issuer, s.now)
	if err != nil {
		s.LogDebug(ctx, "Refresh token rejected", slog.String("error", err.Error()))
		return "", time.Time{}, fmt.Errorf("invalid or expired refresh token: %w", apperrors.ErrUnauthorized)
	}
	return s.IssueAccessToken(ctx, claims.UserID)
}

func (s *tokenService) issue(userID, secret string, ttl time.Duration) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, fmt.Errorf("cannot issue token without user id: %w", apperrors.ErrValidation)
	}
	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)
	token, err := utils.GenerateJWT(userID, secret, issuedAt, expiresAt, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}
