package di

import (
	"time"

	"github.com/refanfc/FounderBooking/internal/handler"
	"github.com/refanfc/FounderBooking/internal/payment"
	"github.com/refanfc/FounderBooking/internal/repository"
	"github.com/refanfc/FounderBooking/internal/service"
	"github.com/refanfc/FounderBooking/pkg/config"
	"github.com/refanfc/FounderBooking/pkg/database"
	"github.com/refanfc/FounderBooking/pkg/redis"
)

// Container holds all dependencies for the booking service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	UserRepo     repository.UserRepository
	CreatorRepo  repository.CreatorRepository
	TimeSlotRepo repository.TimeSlotRepository
	BookingRepo  repository.BookingRepository

	// Publishers
	EventPublisher service.EventPublisher

	// Payment gateways
	CardGateway   payment.Gateway
	WalletGateway payment.Gateway

	// Services
	UserService    service.UserService
	CreatorService service.CreatorService
	SlotService    service.SlotService
	BookingService service.BookingService
	PaymentService service.PaymentService

	// Handlers
	HealthHandler  *handler.HealthHandler
	UserHandler    *handler.UserHandler
	CreatorHandler *handler.CreatorHandler
	BookingHandler *handler.BookingHandler
	PaymentHandler *handler.PaymentHandler
	WebhookHandler *handler.WebhookHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	// DB is optional. When nil the container falls back to in-memory
	// repositories, which is the development default.
	DB             *database.PostgresDB
	Redis          *redis.Client
	EventPublisher service.EventPublisher
	Stripe         *config.StripeConfig
	Payment        *config.PaymentConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:             cfg.DB,
		Redis:          cfg.Redis,
		EventPublisher: cfg.EventPublisher,
	}
	if c.EventPublisher == nil {
		c.EventPublisher = service.NewNoOpEventPublisher()
	}

	// Repositories
	if cfg.DB != nil {
		c.UserRepo = repository.NewPostgresUserRepository(cfg.DB)
		c.CreatorRepo = repository.NewPostgresCreatorRepository(cfg.DB)
		c.TimeSlotRepo = repository.NewPostgresTimeSlotRepository(cfg.DB)
		c.BookingRepo = repository.NewPostgresBookingRepository(cfg.DB)
	} else {
		c.UserRepo = repository.NewMemoryUserRepository()
		c.CreatorRepo = repository.NewMemoryCreatorRepository(c.UserRepo)
		c.TimeSlotRepo = repository.NewMemoryTimeSlotRepository()
		c.BookingRepo = repository.NewMemoryBookingRepository()
	}

	// Payment gateways. A missing Stripe key swaps in the mock
	// gateway so card flows stay testable locally.
	if cfg.Stripe != nil && cfg.Stripe.SecretKey != "" {
		gw, err := payment.NewStripeGateway(&payment.StripeConfig{
			SecretKey: cfg.Stripe.SecretKey,
			Currency:  cfg.Stripe.Currency,
		})
		if err == nil {
			c.CardGateway = gw
		}
	}
	if c.CardGateway == nil {
		c.CardGateway = payment.NewMockGateway(payment.DefaultMockConfig())
	}
	c.WalletGateway = payment.NewWalletGateway()

	providerTimeout := 15 * time.Second
	if cfg.Payment != nil && cfg.Payment.ProviderTimeout > 0 {
		providerTimeout = cfg.Payment.ProviderTimeout
	}

	// Services
	c.UserService = service.NewUserService(c.UserRepo)
	c.CreatorService = service.NewCreatorService(c.CreatorRepo, c.UserRepo)
	c.SlotService = service.NewSlotService(c.TimeSlotRepo, c.CreatorRepo)
	c.BookingService = service.NewBookingService(
		c.BookingRepo,
		c.CreatorRepo,
		c.TimeSlotRepo,
		c.EventPublisher,
	)
	c.PaymentService = service.NewPaymentService(
		c.BookingService,
		c.CardGateway,
		c.WalletGateway,
		providerTimeout,
	)

	// Handlers
	webhookSecret := ""
	if cfg.Stripe != nil {
		webhookSecret = cfg.Stripe.WebhookSecret
	}
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.CreatorHandler = handler.NewCreatorHandler(c.CreatorService, c.SlotService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)
	c.PaymentHandler = handler.NewPaymentHandler(c.PaymentService)
	c.WebhookHandler = handler.NewWebhookHandler(c.PaymentService, webhookSecret)

	return c
}
