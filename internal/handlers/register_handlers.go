package handlers

import (
	"net/http"

	"github.com/SscSPs/pravaha_expense_app/cmd/docs"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/middleware"
	"github.com/SscSPs/pravaha_expense_app/internal/platform/config"
	"github.com/SscSPs/pravaha_expense_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies carries the cross-cutting collaborators the routes need
// besides the services.
type Dependencies struct {
	// LoginLimit guards POST /api/login. Nil disables rate limiting.
	LoginLimit gin.HandlerFunc
	Posthog    *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Dependencies,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Register public authentication routes
	registerAuthRoutes(api, services, deps.LoginLimit)

	// Everything else requires a valid access token
	setupProtectedRoutes(api, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes applies AuthMiddleware and delegates to the specific route registrations
func setupProtectedRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Dependencies,
) {
	authed := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(deps.Posthog))

	registerAdminRoutes(authed, services.User)
	registerExpenseRoutes(authed, services.Expense, deps.Posthog)
	registerReceiptRoutes(authed, services.Receipt)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
