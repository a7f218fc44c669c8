package handlers

import (
	"github.com/SscSPs/workspace_backend/cmd/docs"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/middleware"
	"github.com/SscSPs/workspace_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter guards the credential endpoints.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	registerValidators()

	registerHealthRoutes(r)

	// Setup API v1 routes, public auth endpoints first
	setupAPIV1Routes(r, services, loginLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	authMW := middleware.AuthMiddleware(services.TokenService)

	v1 := r.Group("/api/v1")
	registerAuthRoutes(v1, services, loginLimiter, authMW)
	registerGoogleOAuthRoutes(v1, services, loginLimiter)

	// Everything below requires a bearer access token
	protected := v1.Group("", authMW)
	registerFolderRoutes(protected, services.Folder)
	registerProjectRoutes(protected, services.Project)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
