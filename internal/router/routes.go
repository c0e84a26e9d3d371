package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/auth"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/config"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/handler"
	middlewarepkg "github.com/Shazil-Web3/Hanzala-agnecy/internal/middleware"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/service"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Contact *handler.ContactHandler
	Reviews *handler.ReviewsHandler
	Auth    *handler.AuthHandler
}

// Register wires all HTTP routes for the API. Admin routes are guarded only
// when jwtManager is non-nil. gatherer may be nil to skip /metrics.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers, gatherer prometheus.Gatherer) {
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api")
	api.GET("/health", handler.Health)

	submit := middlewarepkg.SubmissionRateLimiter(cfg.RateLimitSubmit)
	api.POST("/contact", handlers.Contact.Create, submit)
	api.POST("/reviews", handlers.Reviews.Create, submit)
	api.GET("/reviews", handlers.Reviews.ListPublic)

	var guards []echo.MiddlewareFunc
	if jwtManager != nil {
		guards = append(guards, middlewarepkg.JWT(jwtManager), middlewarepkg.RequireRole(service.RoleAdmin))
		if handlers.Auth != nil {
			api.POST("/auth/login", handlers.Auth.Login)
		}
	}

	api.GET("/contact", handlers.Contact.List, guards...)
	api.GET("/contact/:id", handlers.Contact.Get, guards...)
	api.GET("/reviews/admin", handlers.Reviews.ListAll, guards...)
	api.PUT("/reviews/admin/:id/status", handlers.Reviews.UpdateStatus, guards...)
	api.DELETE("/reviews/admin/:id", handlers.Reviews.Delete, guards...)
}
