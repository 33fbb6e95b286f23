package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopbench/storefront-api/internal/cache"
	"github.com/shopbench/storefront-api/internal/db"
	"github.com/shopbench/storefront-api/internal/handlers"
	"github.com/shopbench/storefront-api/internal/logger"
	"github.com/shopbench/storefront-api/internal/middleware"
	"github.com/shopbench/storefront-api/internal/observability"
	"github.com/shopbench/storefront-api/internal/repos"
	"github.com/shopbench/storefront-api/internal/server"
	"github.com/shopbench/storefront-api/internal/services"
	"github.com/shopbench/storefront-api/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	tracingEnabled := utils.GetEnvAsBool("OTEL_ENABLED", false, log)
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "storefront-api",
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
		Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
	})

	// Database
	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	productRepo := repos.NewProductRepo(theDB, log)
	orderRepo := repos.NewOrderRepo(theDB, log)
	orderItemRepo := repos.NewOrderItemRepo(theDB, log)

	// Analytics config
	var statusFilter *string
	if filter := utils.GetEnv("ANALYTICS_STATUS_FILTER", "completed", log); filter != "" {
		statusFilter = &filter
	}
	cacheTTL := time.Duration(utils.GetEnvAsInt("ANALYTICS_CACHE_TTL", 30, log)) * time.Second

	// View cache (off unless REDIS_ADDR is set)
	var viewCache cache.Cache
	if redisAddr := utils.GetEnv("REDIS_ADDR", "", log); redisAddr != "" {
		viewCache = cache.NewRedisCache(redisAddr, "storefront-api", log)
		log.Info("Analytics view cache enabled", "addr", redisAddr, "ttl", cacheTTL)
	}

	// Services
	log.Info("Setting up services from main...")
	userService := services.NewUserService(theDB, log, userRepo)
	productService := services.NewProductService(theDB, log, productRepo)
	orderService := services.NewOrderService(theDB, log, orderRepo, orderItemRepo, userRepo, productRepo)
	analyticsService := services.NewAnalyticsService(
		theDB,
		log,
		userRepo,
		orderRepo,
		orderItemRepo,
		productRepo,
		viewCache,
		services.AnalyticsConfig{StatusFilter: statusFilter, CacheTTL: cacheTTL},
	)

	// Handlers
	log.Info("Setting up handlers from main...")
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Middleware
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		RequestLogMiddleware: requestLogMiddleware,
		UserHandler:          userHandler,
		ProductHandler:       productHandler,
		OrderHandler:         orderHandler,
		AnalyticsHandler:     analyticsHandler,
		TracingEnabled:       tracingEnabled,
	})

	port := utils.GetEnv("PORT", "8080", log)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Server shutdown failed", "error", err)
	}
	if otelShutdown != nil {
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Warn("Tracer shutdown failed", "error", err)
		}
	}
}
