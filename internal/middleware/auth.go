package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that requires a valid bearer
// access token and puts its user ID into the request.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("", "Authorization header required"))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("", "Authorization header format must be Bearer {token}"))
			return
		}

		claims, err := tokenSvc.VerifyAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("", "Invalid or expired token"))
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", claims.UserID))
		ctx := WithLogger(WithUserID(c.Request.Context(), claims.UserID), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), claims.UserID)
		c.Set(string(loggerCtxKey), enrichedLogger)

		c.Next()
	}
}
