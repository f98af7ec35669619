package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
	userUseCase "github.com/amirhossein-jamali/rewards-portal/internal/domain/usecase/user"
	withdrawalUseCase "github.com/amirhossein-jamali/rewards-portal/internal/domain/usecase/withdrawal"

	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/locale"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/security"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/session"
	timeProvider "github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction(), coreport.ParseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx := context.Background()
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	promMetrics := metrics.NewPrometheus()
	if sqlDB, err := dbManager.SQLDB(); err == nil {
		if err := promMetrics.RegisterDBStats(sqlDB, cfg.Database.Driver); err != nil {
			appLogger.Warn("Failed to register database metrics", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize use cases
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	hasher := security.NewBcryptHasher(cfg.App.BcryptCost)
	users := userUseCase.NewUserUseCase(userRepo, hasher, tp, appLogger)
	withdrawals := withdrawalUseCase.NewWithdrawalService(dbManager.CreateUnitOfWork(), tp, appLogger, promMetrics)

	if _, err := users.SeedAdministrator(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword); err != nil {
		return fmt.Errorf("seed administrator: %w", err)
	}

	// Sessions
	store, closeStore, err := openSessionStore(ctx, cfg, tp)
	if err != nil {
		return err
	}
	defer closeStore()

	signer := session.NewTokenSigner(cfg.Session.Secret, cfg.Session.TTL, tp)
	sessions := session.NewManager(store, signer, cfg.Session.TTL, appLogger)

	// Views
	locales, err := locale.NewStore()
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}
	renderer, err := view.NewRenderer(locales, cfg.App.SupportContact)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	cookies := handler.CookieConfig{
		SessionName: session.CookieName,
		Secure:      cfg.Session.CookieSecure,
	}

	// Initialize Gin router
	router := gin.New()
	router.SetHTMLTemplate(renderer.Template())

	routes.SetupMiddlewares(router, routes.MiddlewareDeps{
		Logger:       appLogger,
		TimeProvider: tp,
		Errors:       renderer,
		Observer:     promMetrics,
		Sessions:     sessions,
		Users:        users,
	})
	routes.SetupRoutes(router, routes.Handlers{
		Auth:    handler.NewAuthHandler(users, sessions, renderer, cookies, appLogger),
		Account: handler.NewAccountHandler(withdrawals, renderer, appLogger),
		Admin:   handler.NewAdminHandler(users, withdrawals, renderer, appLogger),
		Page:    handler.NewPageHandler(renderer, cookies),
		Metrics: promMetrics.Handler(),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"session_store": cfg.Session.Store,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// openSessionStore builds the configured session backend and its release func
func openSessionStore(ctx context.Context, cfg *config.Config, tp coreport.TimeProvider) (persistence.SessionStore, func(), error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		return session.NewMemoryStore(cfg.Session.TTL, tp), func() {}, nil
	}

	store, err := session.NewRedisStore(ctx, cfg.Redis, cfg.Session.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}
