package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/share_registry_app/internal/core/services"
	"github.com/SscSPs/share_registry_app/internal/events"
	"github.com/SscSPs/share_registry_app/internal/events/kafka"
	"github.com/SscSPs/share_registry_app/internal/handlers"
	"github.com/SscSPs/share_registry_app/internal/middleware"
	"github.com/SscSPs/share_registry_app/internal/platform/config"
	"github.com/SscSPs/share_registry_app/internal/platform/email"
	"github.com/SscSPs/share_registry_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/share_registry_app/internal/scheduler"
	"github.com/SscSPs/share_registry_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Share Registry API
// @version 1.0
// @description Shareholder register, share ledger and transfer-request workflow.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	// Wire platform adapters
	var publisher portssvc.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaEventTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error("Failed to close kafka publisher", slog.String("error", err.Error()))
			}
		}()
		publisher = kafkaPublisher
		logger.Info("Kafka event publishing enabled", slog.String("topic", cfg.KafkaEventTopic))
	}

	var mailer portssvc.EmailSender = email.SimulatedSender{}
	if cfg.SendGridAPIKey != "" {
		mailer = email.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFromEmail, cfg.MailFromName)
		logger.Info("SendGrid mail delivery enabled")
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, publisher, mailer)

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Seed the well-known admin account on first boot
	if err := serviceContainer.AuthSvc.EnsureSeedAdmin(bootstrapCtx); err != nil {
		logger.Error("Failed to seed admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repair intents left behind by a previous crash before serving traffic
	if repaired, err := serviceContainer.LedgerSvc.RecoverStalePending(bootstrapCtx); err != nil {
		logger.Error("Startup pending sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	} else if repaired > 0 {
		logger.Warn("Startup sweep abandoned stale transfers", slog.Int64("count", repaired))
	}

	// Keep sweeping on a schedule
	sweepScheduler := scheduler.NewScheduler(serviceContainer.LedgerSvc, logger)
	if err := sweepScheduler.Register(cfg.PendingSweepSchedule); err != nil {
		logger.Error("Failed to register pending sweep job", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sweepScheduler.Start()
	defer sweepScheduler.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending schema migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
