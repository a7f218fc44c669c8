package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/SscSPs/workspace_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// GoogleOAuthHandler handles Google sign-in for accounts that were registered
// with the google provider. It never creates accounts.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade, userService portssvc.UserSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes under /auth/google.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User)
	googleRoutes := rg.Group("/auth/google")
	{
		googleRoutes.GET("/login-url", h.LoginURL)
		googleRoutes.POST("/login", middleware.RateLimit(loginLimiter), h.LoginGoogle)
		googleRoutes.POST("/exchange-code", middleware.RateLimit(loginLimiter), h.ExchangeCodeGoogle)
	}
}

// LoginURL godoc
// @Summary Google consent URL
// @Description Returns the Google consent screen URL together with the state value the client must echo back.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.GoogleLoginURLResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/google/login-url [get]
func (h *GoogleOAuthHandler) LoginURL(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.GoogleLoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	}))
}

// LoginGoogle godoc
// @Summary Log in with a Google ID token
// @Description Verifies a Google ID token and returns a token pair for the matching google-provider account.
// @Tags oauth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid Google token or no google account"
// @Router /auth/google/login [post]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.completeLogin(c, req.IDToken)
}

// ExchangeCodeGoogle godoc
// @Summary Exchange authorization code for tokens
// @Description Exchanges a Google authorization code, validates the returned ID token and logs the user in.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		respondError(c, err, googleErrorCode(err))
		return
	}

	idToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.ErrorContext(ctx, "ID token not found in Google's token response")
		respondError(c, apperrors.NewInternalServerError("Failed to retrieve ID token from Google."), "")
		return
	}

	h.completeLogin(c, idToken)
}

// googleErrorCode tags rejected Google credentials so clients can tell them
// apart from a bad password.
func googleErrorCode(err error) string {
	if errors.Is(err, apperrors.ErrUnauthorized) {
		return codeInvalidGoogle
	}
	return ""
}

func (h *GoogleOAuthHandler) completeLogin(c *gin.Context, idToken string) {
	user, tokens, err := h.userService.LoginWithGoogle(c.Request.Context(), idToken)
	if err != nil {
		respondError(c, err, googleErrorCode(err))
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status:  dto.StatusSuccess,
		Message: "Login successful",
		Data:    dto.ToUserResponse(user),
		Tokens:  dto.ToTokensResponse(tokens),
	})
}
