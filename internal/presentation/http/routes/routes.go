package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marianotrogo/client-pos-ind/internal/config"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/handler"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/middleware"
	"github.com/marianotrogo/client-pos-ind/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session  *handler.SessionHandler
	Checkout *handler.CheckoutHandler
	Lookup   *handler.LookupHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes, all authenticated
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.JWTManager))

	rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	v1.Use(rateLimiter.Middleware())

	registerSaleRoutes(v1, h)
	registerLookupRoutes(v1, h)

	v1.GET("/settings", h.Settings.Get)
	v1.GET("/printer/status", h.Printer.Status)
	v1.POST("/printer/test", h.Printer.Test)

	return router
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.Session.Open)
		sessions.GET("/:id", h.Session.View)
		sessions.DELETE("/:id", h.Session.Discard)

		sessions.POST("/:id/lines", h.Session.AddLine)
		sessions.PATCH("/:id/lines/:variantId", h.Session.SetQuantity)
		sessions.POST("/:id/lines/:variantId/return", h.Session.ToggleReturn)
		sessions.DELETE("/:id/lines/:variantId", h.Session.RemoveLine)

		sessions.PUT("/:id/adjustments", h.Session.SetAdjustments)
		sessions.PUT("/:id/client", h.Session.SelectClient)

		sessions.POST("/:id/confirm", h.Checkout.Confirm)
	}
}

func registerLookupRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/products/search", h.Lookup.SearchProducts)
	v1.GET("/clients/search", h.Lookup.SearchClients)
}
