// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/pantryos/pantry-be/internal/adapters/db"
	redis_a "github.com/pantryos/pantry-be/internal/adapters/redis_adapter"
	"github.com/pantryos/pantry-be/internal/adapters/upc"
	"github.com/pantryos/pantry-be/internal/adapters/vision"
	"github.com/pantryos/pantry-be/internal/core/ports"
	"github.com/pantryos/pantry-be/internal/core/services"
	"github.com/pantryos/pantry-be/internal/handlers"
	"github.com/pantryos/pantry-be/internal/handlers/middleware"
	"github.com/pantryos/pantry-be/internal/pkg/config"
	"github.com/pantryos/pantry-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	// Initialize structured logger
	appLogger := logger.SetupLogger("debug", "json")
	slogger := appLogger.Logger

	slogger.Info("starting pantry inventory backend",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	// Load configuration
	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	appLogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = appLogger.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	// Create application context
	ctx := context.Background()

	// Resolve external API credentials
	if err := cfg.ResolveSecrets(ctx, slogger); err != nil {
		slogger.Error("failed to resolve secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize dependencies
	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations if enabled
	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	// Setup HTTP server
	server := setupHTTPServer(cfg, deps, appLogger)

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		// Create shutdown context with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		// Gracefully shutdown HTTP server
		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database        *db.Database
	redisClient     *redis.Client
	redisCache      ports.CacheRepository
	itemService     *services.ItemService
	locationService *services.LocationService
	barcodeService  *services.BarcodeService
	itemHandler     *handlers.ItemHandler
	locationHandler *handlers.LocationHandler
	barcodeHandler  *handlers.BarcodeHandler
	healthHandler   *handlers.HealthHandler
	exportHandler   *handlers.ExportHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	// Initialize database connection
	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	// Initialize Redis client. When disabled the server runs without it
	// and rate limiting falls back to the in-process limiter.
	if cfg.Redis.Enabled {
		logger.Info("connecting to Redis",
			slog.String("host", cfg.Redis.Host),
			slog.String("port", cfg.Redis.Port),
		)

		redisOpts := &redis.Options{
			Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password:        cfg.Redis.Password,
			DB:              cfg.Redis.DB,
			MaxRetries:      cfg.Redis.MaxRetries,
			MinRetryBackoff: cfg.Redis.MinRetryBackoff,
			MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
			DialTimeout:     cfg.Redis.DialTimeout,
			ReadTimeout:     cfg.Redis.ReadTimeout,
			WriteTimeout:    cfg.Redis.WriteTimeout,
			PoolSize:        cfg.Redis.PoolSize,
			MinIdleConns:    cfg.Redis.MinIdleConns,
			ConnMaxLifetime: cfg.Redis.MaxConnAge,
			PoolTimeout:     cfg.Redis.PoolTimeout,
			ConnMaxIdleTime: cfg.Redis.IdleTimeout,
		}

		redisClient := redis.NewClient(redisOpts)

		// Test Redis connection
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		deps.redisClient = redisClient

		// Create Redis cache wrapper
		deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)
	} else {
		logger.Warn("redis disabled, rate limiting will be per-process")
	}

	// Initialize external product collaborators
	upcClient := upc.NewClient(cfg.UPC.APIKey, logger, upc.WithBaseURL(cfg.UPC.BaseURL))
	recognizerOpts := []vision.Option{}
	if cfg.Vision.BaseURL != "" {
		recognizerOpts = append(recognizerOpts, vision.WithBaseURL(cfg.Vision.BaseURL))
	}
	recognizer := vision.NewRecognizer(cfg.Vision.APIKey, cfg.Vision.Model, logger, recognizerOpts...)

	// Initialize repositories
	itemRepo := db.NewItemRepository(database, logger)
	locationRepo := db.NewLocationRepository(database, logger)
	brandRepo := db.NewBrandRepository(database, logger)
	manufacturerRepo := db.NewManufacturerRepository(database, logger)

	// Initialize services
	deps.itemService = services.NewItemService(itemRepo, locationRepo, brandRepo, manufacturerRepo, upcClient, logger)
	deps.locationService = services.NewLocationService(locationRepo, logger)
	deps.barcodeService = services.NewBarcodeService(recognizer, logger)

	// Initialize handlers
	deps.itemHandler = handlers.NewItemHandler(deps.itemService, logger)
	deps.locationHandler = handlers.NewLocationHandler(deps.locationService, logger)
	deps.barcodeHandler = handlers.NewBarcodeHandler(deps.barcodeService, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, deps.redisClient, cfg, logger)
	deps.exportHandler = handlers.NewExportHandler(database, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, appLogger *logger.Logger) *http.Server {
	slogger := appLogger.Logger

	// Create new ServeMux using Go 1.22+ features
	mux := http.NewServeMux()

	// Setup middleware chain
	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(appLogger)(handler)
		handler = middleware.Recovery(slogger)(handler)
	}

	// Rate limiting: shared fixed-window counters when redis is available,
	// otherwise a per-process token bucket.
	if cfg.Security.RateLimitRequests > 0 {
		if deps.redisCache != nil {
			handler = middleware.RedisRateLimit(deps.redisCache, cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration, slogger)(handler)
		} else {
			handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
		}
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	// Register routes using Go 1.22 method-specific routing
	registerRoutes(mux, deps, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}

	return server
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// All pantry routes require an authenticated caller
	auth := middleware.Authenticate(cfg.Security.JWTSecret)
	authed := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	// Item endpoints. The {id} route doubles as the legacy barcode
	// lookup-and-create path for non-numeric values.
	mux.Handle("GET "+apiV1+"/items", authed(deps.itemHandler.ListItems))
	mux.Handle("POST "+apiV1+"/items", authed(deps.itemHandler.CreateItem))
	mux.Handle("GET "+apiV1+"/items/export/excel", authed(deps.exportHandler.ExportExcel))
	mux.Handle("GET "+apiV1+"/items/lookup/{upc}", authed(deps.itemHandler.LookupAndCreate))
	mux.Handle("GET "+apiV1+"/items/lookup-product/{upc}", authed(deps.itemHandler.LookupProduct))
	mux.Handle("GET "+apiV1+"/items/{id}", authed(deps.itemHandler.GetItem))
	mux.Handle("PUT "+apiV1+"/items/{id}", authed(deps.itemHandler.UpdateItem))
	mux.Handle("DELETE "+apiV1+"/items/{id}", authed(deps.itemHandler.DeleteItem))
	mux.Handle("POST "+apiV1+"/items/{id}/add-to-user", authed(deps.itemHandler.AddToUser))
	mux.Handle("PATCH "+apiV1+"/items/{id}/quantity", authed(deps.itemHandler.UpdateQuantity))

	// Location endpoints
	mux.Handle("GET "+apiV1+"/locations", authed(deps.locationHandler.ListLocations))
	mux.Handle("POST "+apiV1+"/locations", authed(deps.locationHandler.CreateLocation))
	mux.Handle("POST "+apiV1+"/locations/provision", authed(deps.locationHandler.ProvisionLocations))

	// Barcode image recognition
	mux.Handle("POST "+apiV1+"/barcode/process", authed(deps.barcodeHandler.ProcessBarcode))

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
