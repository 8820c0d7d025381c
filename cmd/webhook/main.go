package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/giving/internal/pkg/config"
	"github.com/piresc/giving/internal/pkg/database"
	"github.com/piresc/giving/internal/pkg/health"
	"github.com/piresc/giving/internal/pkg/logger"
	"github.com/piresc/giving/internal/pkg/middleware"
	"github.com/piresc/giving/internal/pkg/nats"
	nrpkg "github.com/piresc/giving/internal/pkg/newrelic"
	"github.com/piresc/giving/internal/pkg/server"
	"github.com/piresc/giving/internal/pkg/signature"
	"github.com/piresc/giving/services/webhook/gateway"
	"github.com/piresc/giving/services/webhook/handler"
	"github.com/piresc/giving/services/webhook/repository"
	"github.com/piresc/giving/services/webhook/usecase"
)

func main() {
	appName := "giving-webhook"
	configPath := "config/webhook.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.Stripe.WebhookSecret == "" {
		zapLogger.Fatal("STRIPE_WEBHOOK_SECRET is required")
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	logger.Info("NATS client initialized successfully",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	// Repositories
	db := postgresClient.GetDB()
	ledgerRepo := repository.NewEventLedgerRepository(configs, db)
	cacheRepo := repository.NewProcessedCacheRepository(configs, redisClient)
	transactionRepo := repository.NewTransactionRepository(configs, db)
	donationRepo := repository.NewRecurringDonationRepository(configs, db)
	contactRepo := repository.NewContactRepository(db)

	// Gateways
	verifier := signature.NewVerifier(configs.Stripe.WebhookSecret, configs.Stripe.WebhookTolerance)
	provider := gateway.NewStripeProvider(configs, zapLogger)
	notifier := gateway.NewAcknowledgmentNotifier(natsClient)

	webhookUC, err := usecase.NewWebhookUC(
		configs,
		ledgerRepo,
		cacheRepo,
		transactionRepo,
		donationRepo,
		contactRepo,
		verifier,
		provider,
		notifier,
	)
	if err != nil {
		zapLogger.Fatal("Failed to initialize webhook use case", logger.Err(err))
	}

	webhookHandler := handler.NewHandler(webhookUC, configs)

	e := echo.New()
	e.HideBanner = true

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	webhookHandler.RegisterRoutes(e, &configs.APIKey, redisClient.GetClient())

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(ctx context.Context) error {
		zapLogger.Info("Closing NATS connection...")
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(ctx context.Context) error {
		zapLogger.Info("Closing Redis connection...")
		return redisClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		zapLogger.Info("Closing PostgreSQL connection...")
		return postgresClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		if nrApp != nil {
			zapLogger.Info("Shutting down New Relic...")
			nrApp.Shutdown(10 * time.Second)
		}
		return nil
	})

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
