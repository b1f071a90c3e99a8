package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/refanfc/FounderBooking/internal/di"
	"github.com/refanfc/FounderBooking/internal/service"
	"github.com/refanfc/FounderBooking/pkg/config"
	"github.com/refanfc/FounderBooking/pkg/database"
	"github.com/refanfc/FounderBooking/pkg/logger"
	"github.com/refanfc/FounderBooking/pkg/middleware"
	pkgredis "github.com/refanfc/FounderBooking/pkg/redis"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       logLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("starting founderbooking",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version))

	ctx := context.Background()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		appLog.Warn("telemetry init failed, continuing without tracing", zap.Error(err))
	}

	// Database. An empty host means in-memory storage, the
	// development default. Production requires Postgres.
	var db *database.PostgresDB
	if cfg.Database.Host != "" {
		db, err = database.NewPostgres(ctx, &cfg.Database, database.DefaultOptions())
		if err != nil {
			appLog.Fatal("database connection failed", zap.Error(err))
		}
		defer db.Close()
		appLog.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Int32("max_conns", cfg.Database.MaxConns))
	} else if cfg.IsProduction() {
		appLog.Fatal("DATABASE_HOST is required in production")
	} else {
		appLog.Warn("no database configured, using in-memory storage")
	}

	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			appLog.Fatal("redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		appLog.Info("redis connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		appLog.Warn("redis disabled, idempotency keys will not be enforced")
	}

	var eventPublisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		eventPublisher, err = service.NewKafkaEventPublisher(ctx, &cfg.Kafka, cfg.App.Name)
		if err != nil {
			appLog.Warn("kafka connection failed, using no-op publisher", zap.Error(err))
			eventPublisher = service.NewNoOpEventPublisher()
		} else {
			appLog.Info("kafka event publisher connected",
				zap.Strings("brokers", cfg.Kafka.Brokers),
				zap.String("topic", cfg.Kafka.Topic))
		}
	} else {
		eventPublisher = service.NewNoOpEventPublisher()
	}
	defer eventPublisher.Close()

	container := di.NewContainer(&di.ContainerConfig{
		DB:             db,
		Redis:          redisClient,
		EventPublisher: eventPublisher,
		Stripe:         &cfg.Stripe,
		Payment:        &cfg.Payment,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())
	router.Use(telemetry.TracingMiddleware())

	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	api := router.Group("/api")
	{
		api.POST("/users", container.UserHandler.GetOrCreate)
		api.PATCH("/users/:id/wallet", container.UserHandler.UpdateWallet)

		api.GET("/creators", container.CreatorHandler.List)
		api.POST("/creators", container.CreatorHandler.Create)
		api.GET("/creators/:id", container.CreatorHandler.GetByID)
		api.GET("/creators/:id/timeslots", container.CreatorHandler.ListTimeSlots)
		api.POST("/creators/:id/timeslots", container.CreatorHandler.CreateTimeSlot)

		// Booking creation is the race-prone write, so it gets
		// idempotency protection when Redis is available.
		if redisClient != nil {
			idemCfg := middleware.DefaultIdempotencyConfig(redisClient)
			api.POST("/bookings", middleware.Idempotency(idemCfg), container.BookingHandler.Create)
		} else {
			api.POST("/bookings", container.BookingHandler.Create)
		}
		api.GET("/bookings/user/:userId", container.BookingHandler.ListByUser)
		api.GET("/bookings/creator/:creatorId", container.BookingHandler.ListByCreator)
		api.POST("/bookings/:id/cancel", container.BookingHandler.Cancel)

		api.POST("/create-payment-intent", container.PaymentHandler.CreateIntent)
		api.POST("/confirm-payment", container.PaymentHandler.ConfirmPayment)
		api.POST("/confirm-crypto-payment", container.PaymentHandler.ConfirmCryptoPayment)

		api.POST("/webhooks/stripe", container.WebhookHandler.HandleStripe)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		appLog.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		appLog.Warn("telemetry shutdown failed", zap.Error(err))
	}

	appLog.Info("server exited gracefully")
}
