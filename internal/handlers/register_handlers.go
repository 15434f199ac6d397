package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/abdout/abushala-backend/cmd/docs"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/middleware"
	"github.com/abdout/abushala-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes (rate limited)
	registerAuthRoutes(r, services.Auth)

	// Open routes: the storefront rate table and the contact form need no
	// session.
	public := r.Group("/api/v1")

	// Everything else sits behind the session resolver.
	authed := r.Group("/api/v1", middleware.SessionAuth(services.Auth))

	registerCurrencyRoutes(public, authed, services.Currency)
	registerContactRoutes(public, authed, services.Contact)
	registerUserRoutes(authed, services.User)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
