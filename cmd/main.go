package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/codealpha/backend/docs"
	"github.com/codealpha/backend/internal/auth"
	"github.com/codealpha/backend/internal/catalog"
	"github.com/codealpha/backend/internal/config"
	"github.com/codealpha/backend/internal/handlers"
	"github.com/codealpha/backend/internal/logger"
	"github.com/codealpha/backend/internal/middleware"
	"github.com/codealpha/backend/internal/repositories"
	"github.com/codealpha/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title CodeAlpha Progress API
// @version 1.0
// @description API for lesson progress, quiz grading and achievement badges

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CodeAlpha Progress Service")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis for guest sessions
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Load the course catalog
	courses, err := catalog.Load()
	if err != nil {
		logger.Logger.Fatal("Failed to load course catalog", zap.Error(err))
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.Guest.SessionTTL)
	retry := services.RetryConfig{
		MaxRetries:      cfg.Retry.MaxRetries,
		InitialInterval: cfg.Retry.InitialInterval,
	}

	// Learners are kept in MySQL
	progressRepo := repositories.NewProgressRepository(db, logger.Logger)
	badgeRepo := repositories.NewBadgeRepository(db, logger.Logger)
	learnerProgress := services.NewProgressService(progressRepo, badgeRepo, logger.Logger, retry)
	learnerHandler := handlers.NewProgressHandler(
		learnerProgress,
		services.NewLessonService(courses, learnerProgress, logger.Logger),
		services.NewDashboardService(courses, learnerProgress),
		logger.Logger,
	)

	// Guests are kept in Redis and expire with their session
	guestStore := repositories.NewGuestStore(rdb, cfg.Guest.SessionTTL, logger.Logger)
	guestProgress := services.NewProgressService(guestStore, guestStore, logger.Logger, retry)
	guestProgressHandler := handlers.NewProgressHandler(
		guestProgress,
		services.NewLessonService(courses, guestProgress, logger.Logger),
		services.NewDashboardService(courses, guestProgress),
		logger.Logger,
	)

	catalogHandler := handlers.NewCatalogHandler(courses, services.BadgeCatalog(), logger.Logger)
	guestHandler := handlers.NewGuestHandler(services.NewGuestService(tokens, logger.Logger), logger.Logger)

	learnerAuth := middleware.AuthMiddleware(tokens, auth.TokenTypeAccess)
	guestAuth := middleware.AuthMiddleware(tokens, auth.TokenTypeGuest)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Get("/health", healthHandler(db, rdb))

	r.Route("/api/v1", func(r chi.Router) {
		catalogHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(learnerAuth)
			learnerHandler.RegisterRoutes(r)
		})

		r.Route("/guest", func(r chi.Router) {
			guestHandler.RegisterRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(guestAuth)
				guestProgressHandler.RegisterRoutes(r)
			})
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// healthHandler reports whether both stores are reachable
func healthHandler(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, code := "ok", http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			status, code = "database unavailable", http.StatusServiceUnavailable
		} else if err := rdb.Ping(ctx).Err(); err != nil {
			status, code = "redis unavailable", http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		fmt.Fprintf(w, `{"status":%q}`, status)
	}
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	// Use service-specific migration table name to avoid conflicts with other services
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "progress_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
