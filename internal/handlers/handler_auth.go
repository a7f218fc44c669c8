package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/SscSPs/workspace_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles registration, login, token refresh and profile requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes registers the public auth endpoints on rg and the
// profile endpoint behind authMW. Credential endpoints share loginLimiter.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter, authMW gin.HandlerFunc) {
	h := NewAuthHandler(services.User, services.TokenService)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimit(loginLimiter), h.Register)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.GET("/profile", authMW, h.Profile)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account with the email or google provider and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Google token rejected"
// @Failure 409 {object} dto.ErrorResponse "Email or username already in use"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, tokens, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		code := ""
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			code = codeUserAlreadyExists
		case errors.Is(err, apperrors.ErrUnauthorized) && req.AuthProvider == string(domain.ProviderGoogle):
			code = codeInvalidGoogle
		}
		respondError(c, err, code)
		return
	}

	c.JSON(http.StatusCreated, dto.Envelope{
		Status:  dto.StatusSuccess,
		Message: "User registered successfully",
		Data:    dto.ToUserResponse(user),
		Tokens:  dto.ToTokensResponse(tokens),
	})
}

// Login godoc
// @Summary Log in with email and password
// @Description Authenticates an email-provider user and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Envelope{
		Status:  dto.StatusSuccess,
		Message: "Login successful",
		Tokens:  dto.ToTokensResponse(tokens),
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Mints a new access token from a valid refresh token. The refresh token stays valid until it expires.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh Token"
// @Success 200 {object} dto.Envelope{data=dto.RefreshTokenResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}))
}

// Profile godoc
// @Summary Get current user
// @Description Returns the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToUserResponse(user)))
}
