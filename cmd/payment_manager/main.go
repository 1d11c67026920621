package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/splitgem/payment-manager/cmd/docs"
	"github.com/splitgem/payment-manager/internal/clients/rest"
	"github.com/splitgem/payment-manager/internal/core/services"
	"github.com/splitgem/payment-manager/internal/dto"
	"github.com/splitgem/payment-manager/internal/handlers"
	"github.com/splitgem/payment-manager/internal/middleware"
	"github.com/splitgem/payment-manager/internal/repositories/database/pgsql"
	"github.com/splitgem/payment-manager/pkg/config"
	"github.com/splitgem/payment-manager/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Payment Manager API
// @version 1.0
// @description Payment tracking service for shared expense groups.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.IsProduction)
	slog.SetDefault(logger)

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RateLimit(newRateLimiter(logger, cfg.RateLimit)))
	r.Use(middleware.Metrics())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Register the request validations the DTO binding tags rely on
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterCustomValidations(v); err != nil {
			logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Collaborator clients
	groupClient := rest.NewGroupManagerClient(cfg.GroupManagerURL, cfg.ClientTimeout)
	currencyClient := rest.NewCurrencyManagerClient(cfg.CurrencyManagerURL, cfg.ClientTimeout)
	attachmentClient := rest.NewAttachmentStoreClient(cfg.AttachmentStoreURL, cfg.ClientTimeout)

	// Repositories and services
	paymentRepo := pgsql.NewPaymentRepository(dbPool)
	archiveRepo := pgsql.NewArchivedPaymentRepository(dbPool)
	serviceContainer := services.NewServiceContainer(
		groupClient,
		currencyClient,
		attachmentClient,
		paymentRepo,
		archiveRepo,
		services.ContainerConfig{RejectNoopUpdates: cfg.RejectNoopUpdates},
	)

	handlers.RegisterRoutes(r, cfg, serviceContainer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newLogger builds the process logger: JSON in production, colorized text
// for local development.
func newLogger(isProduction bool) *slog.Logger {
	if isProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}

func newRateLimiter(logger *slog.Logger, format string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		logger.Warn("Invalid rate limit format, defaulting to 100-M", slog.String("value", format))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return limiter.New(memory.NewStore(), rate)
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
