package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/shopbench/storefront-api/internal/handlers"
	"github.com/shopbench/storefront-api/internal/middleware"
)

type RouterConfig struct {
	RequestLogMiddleware *middleware.RequestLogMiddleware
	UserHandler          *handlers.UserHandler
	ProductHandler       *handlers.ProductHandler
	OrderHandler         *handlers.OrderHandler
	AnalyticsHandler     *handlers.AnalyticsHandler
	TracingEnabled       bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware("storefront-api"))
	}
	if cfg.RequestLogMiddleware != nil {
		router.Use(cfg.RequestLogMiddleware.Handler())
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:80", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Users
		api.GET("/users", cfg.UserHandler.List)
		api.POST("/users", cfg.UserHandler.Create)
		api.GET("/users/:id", cfg.UserHandler.Get)
		api.PUT("/users/:id", cfg.UserHandler.Update)
		api.DELETE("/users/:id", cfg.UserHandler.Delete)

		// Products
		api.GET("/products", cfg.ProductHandler.List)
		api.POST("/products", cfg.ProductHandler.Create)
		api.GET("/products/:id", cfg.ProductHandler.Get)
		api.PUT("/products/:id", cfg.ProductHandler.Update)
		api.DELETE("/products/:id", cfg.ProductHandler.Delete)

		// Orders
		api.GET("/orders", cfg.OrderHandler.List)
		api.POST("/orders", cfg.OrderHandler.Create)
		api.GET("/orders/:id", cfg.OrderHandler.Get)
		api.GET("/orders/:id/items", cfg.OrderHandler.GetItems)
		api.PATCH("/orders/:id/status", cfg.OrderHandler.UpdateStatus)
		api.DELETE("/orders/:id", cfg.OrderHandler.Delete)

		// Analytics
		api.GET("/analytics/orders-with-users", cfg.AnalyticsHandler.OrdersWithUsers)
		api.GET("/analytics/user-order-summary", cfg.AnalyticsHandler.UserOrderSummary)
		api.GET("/analytics/category-analytics", cfg.AnalyticsHandler.CategoryAnalytics)
	}

	return router
}
