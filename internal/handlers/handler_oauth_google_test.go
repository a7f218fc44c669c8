package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func googleUser() *domain.User {
	u := testUser()
	u.AuthProvider = domain.ProviderGoogle
	return u
}

func TestGoogleLoginURL(t *testing.T) {
	env := newTestEnv(t, "100-M")
	env.google.On("GenerateStateString", mock.Anything).Return("state-123", nil).Once()
	env.google.On("GetGoogleLoginURL", mock.Anything, "state-123").Return("https://accounts.google.com/o/oauth2/auth?state=state-123").Once()

	w := env.do(t, http.MethodGet, "/api/v1/auth/google/login-url", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "state-123", data["state"])
	assert.Contains(t, data["url"], "state=state-123")
}

func TestGoogleLogin(t *testing.T) {
	env := newTestEnv(t, "100-M")
	env.users.On("LoginWithGoogle", mock.Anything, "good-id-token").Return(googleUser(), testTokens(), nil).Once()
	env.users.On("LoginWithGoogle", mock.Anything, "bad-id-token").
		Return(nil, nil, apperrors.NewUnauthorizedError("Google authentication failed.")).Once()
	env.users.On("LoginWithGoogle", mock.Anything, "db-down").Return(nil, nil, errors.New("pool closed")).Once()

	w := env.do(t, http.MethodPost, "/api/v1/auth/google/login", dto.GoogleLoginRequest{IDToken: "good-id-token"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "google", body["data"].(map[string]any)["auth_provider"])
	assert.Equal(t, "refresh", body["tokens"].(map[string]any)["refresh_token"])

	w = env.do(t, http.MethodPost, "/api/v1/auth/google/login", dto.GoogleLoginRequest{IDToken: "bad-id-token"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_GOOGLE_TOKEN", decodeBody(t, w)["code"])

	w = env.do(t, http.MethodPost, "/api/v1/auth/google/login", dto.GoogleLoginRequest{IDToken: "db-down"}, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeBody(t, w)["code"])
}

func TestGoogleExchangeCode(t *testing.T) {
	env := newTestEnv(t, "100-M")

	withIDToken := (&oauth2.Token{AccessToken: "google-access"}).WithExtra(map[string]any{"id_token": "exchanged-id-token"})
	env.google.On("ExchangeCodeForToken", mock.Anything, "good-code").Return(withIDToken, nil).Once()
	env.google.On("ExchangeCodeForToken", mock.Anything, "no-id-token").Return(&oauth2.Token{AccessToken: "google-access"}, nil).Once()
	env.google.On("ExchangeCodeForToken", mock.Anything, "expired-code").
		Return(nil, apperrors.NewUnauthorizedError("Invalid or expired authorization code")).Once()
	env.users.On("LoginWithGoogle", mock.Anything, "exchanged-id-token").Return(googleUser(), testTokens(), nil).Once()

	w := env.do(t, http.MethodPost, "/api/v1/auth/google/exchange-code", dto.ExchangeCodeRequest{Code: "good-code"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "access", decodeBody(t, w)["tokens"].(map[string]any)["access_token"])

	w = env.do(t, http.MethodPost, "/api/v1/auth/google/exchange-code", dto.ExchangeCodeRequest{Code: "no-id-token"}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/google/exchange-code", dto.ExchangeCodeRequest{Code: "expired-code"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_GOOGLE_TOKEN", decodeBody(t, w)["code"])

	w = env.do(t, http.MethodPost, "/api/v1/auth/google/exchange-code", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
