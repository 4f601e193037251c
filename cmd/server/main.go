package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commerce-insights/internal/config"
	"commerce-insights/internal/database"
	"commerce-insights/internal/handlers"
	"commerce-insights/internal/middleware"
	"commerce-insights/internal/repositories"
	"commerce-insights/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// --- Load .env file (for local development) ---
	_ = godotenv.Load()

	// --- Logger ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// --- Config ---
	cfg := config.Load()
	logger.Info("configuration loaded",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_host", cfg.Database.Host,
		"db_name", cfg.Database.Name,
		"import_max_upload_bytes", cfg.Import.MaxUploadBytes,
	)

	// --- Database ---
	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// --- Metrics ---
	metrics := services.NewPrometheusMetrics()

	// --- Repositories ---
	orderRepo := repositories.NewOrderRepository(db)

	// --- Services ---
	tokenService := services.NewTokenService(&cfg.JWT)
	authService, err := services.NewAuthService(&cfg.Auth, tokenService, metrics, logger)
	if err != nil {
		logger.Error("failed to initialize auth service", "error", err)
		os.Exit(1)
	}
	orderService := services.NewOrderService(orderRepo)
	salesMetricsService := services.NewSalesMetricsService(orderRepo)
	segmentationService := services.NewSegmentationService(orderRepo, metrics)
	importService := services.NewImportService(orderRepo, &cfg.Import, metrics)
	datasetService := services.NewDatasetService(
		orderRepo,
		services.NewOrderGeneratorWithSeed,
		cfg.Import.BatchSize,
		metrics,
	)

	// --- Handlers ---
	healthHandler := handlers.NewHealthCheckHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)
	salesMetricsHandler := handlers.NewSalesMetricsHandler(salesMetricsService)
	segmentHandler := handlers.NewSegmentHandler(segmentationService)
	importHandler := handlers.NewImportHandler(importService, cfg.Import.MaxUploadBytes)
	devHandler := handlers.NewDevHandler(datasetService)
	docsHandler := handlers.NewDocsHandler()

	// --- Router ---
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/swagger.json", docsHandler.ServeOAS3JSON)

	// --- API v1 ---
	api := e.Group("/api/v1")

	// Token issuing is rate limited per IP to slow down credential guessing.
	api.POST("/auth/token", authHandler.IssueToken,
		middleware.RateLimiterWithConfig(cfg.Auth.RateLimitPerSecond, cfg.Auth.RateLimitPerSecond*2))

	// Read endpoints are open; the dashboard queries them without a token.
	api.GET("/orders", orderHandler.ListOrders)
	api.GET("/orders/facets", orderHandler.GetFacets)
	api.GET("/orders/:orderRef", orderHandler.GetOrder)
	api.GET("/metrics/summary", salesMetricsHandler.GetSummary)
	api.GET("/metrics/revenue-series", salesMetricsHandler.GetRevenueSeries)
	api.GET("/rankings/countries", salesMetricsHandler.GetTopCountries)
	api.GET("/rankings/products", salesMetricsHandler.GetTopProducts)
	api.GET("/segments/customers", segmentHandler.GetScoredCustomers)
	api.GET("/segments/histogram", segmentHandler.GetCompositeHistogram)
	api.GET("/segments/distribution", segmentHandler.GetSegmentDistribution)

	// Mutating endpoints replace the dataset and require an ingest-scoped token.
	api.POST("/orders/import", importHandler.ImportOrders,
		middleware.RequireAuth(tokenService), middleware.RequireIngest())

	if cfg.IsDevelopment() {
		api.POST("/dev/generate-data", devHandler.GenerateData,
			middleware.RequireAuth(tokenService), middleware.RequireIngest())
		logger.Info("development data generator endpoint enabled")
	}

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := e.StartServer(srv); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
