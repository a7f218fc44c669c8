package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/SscSPs/workspace_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	codeValidation        = "VALIDATION_ERROR"
	codeUnauthorized      = "UNAUTHORIZED"
	codeNotFound          = "NOT_FOUND"
	codeConflict          = "CONFLICT"
	codeInternal          = "INTERNAL_ERROR"
	codeUserAlreadyExists = "USER_ALREADY_EXISTS"
	codeInvalidGoogle     = "INVALID_GOOGLE_TOKEN"
)

// errorCode picks the machine-readable code for an error kind.
func errorCode(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return codeValidation
	case errors.Is(err, apperrors.ErrUnauthorized):
		return codeUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return codeNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return codeConflict
	default:
		return codeInternal
	}
}

// respondError writes the error envelope for err. An empty code means the
// code is derived from the error kind.
// Server-side failures never leak their cause to the client.
func respondError(c *gin.Context, err error, code string) {
	status := apperrors.StatusCode(err)
	if code == "" {
		code = errorCode(err)
	}

	message := http.StatusText(status)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
		if appErr == nil {
			message = "Internal server error"
		}
	} else {
		logger.Debug("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.Failure(code, message))
}

// respondBindError reports a request body or parameter that failed binding.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Invalid request body", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Failure(codeValidation, "Invalid request body: "+err.Error()))
}

// requireUserID reads the authenticated user ID or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(codeUnauthorized, "Unauthorized"))
		return "", false
	}
	return userID, true
}
