package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/core/services"
	"github.com/SscSPs/workspace_backend/internal/handlers"
	"github.com/SscSPs/workspace_backend/internal/middleware"
	"github.com/SscSPs/workspace_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

// testEnv is a fully routed engine with mocked services and a real token service.
type testEnv struct {
	router   *gin.Engine
	users    *MockUserService
	folders  *MockFolderService
	projects *MockProjectService
	google   *MockGoogleOAuthService
	tokens   portssvc.TokenSvcFacade
}

func newTestEnv(t *testing.T, loginRate string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		IsProduction:               true,
		JWTSecret:                  "handler-test-access-secret",
		JWTExpiryDuration:          30 * time.Minute,
		JWTIssuer:                  "workspace-backend-test",
		RefreshTokenSecret:         "handler-test-refresh-secret",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
		DataDir:                    t.TempDir(),
	}

	env := &testEnv{
		router:   gin.New(),
		users:    new(MockUserService),
		folders:  new(MockFolderService),
		projects: new(MockProjectService),
		google:   new(MockGoogleOAuthService),
		tokens:   services.NewTokenService(cfg),
	}

	lim, err := middleware.NewRateLimiter(loginRate)
	require.NoError(t, err)

	container := &portssvc.ServiceContainer{
		User:               env.users,
		Folder:             env.folders,
		Project:            env.projects,
		TokenService:       env.tokens,
		GoogleOAuthHandler: env.google,
	}
	handlers.RegisterRoutes(env.router, cfg, container, lim)

	t.Cleanup(func() {
		env.users.AssertExpectations(t)
		env.folders.AssertExpectations(t)
		env.projects.AssertExpectations(t)
		env.google.AssertExpectations(t)
	})
	return env
}

// bearer issues a real access token for userID.
func (e *testEnv) bearer(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := e.tokens.IssueAccessToken(context.Background(), userID)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, "100-M")
	w := env.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", decodeBody(t, w)["status"])
}
