package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// MockGateway implements Gateway for testing and load testing
type MockGateway struct {
	config  *MockConfig
	intents sync.Map // reference -> status
}

// MockConfig holds configuration for the mock gateway
type MockConfig struct {
	// SuccessRate is the probability a confirm succeeds (0.0 to 1.0)
	SuccessRate float64
	// Delay is the simulated provider latency
	Delay time.Duration
}

// DefaultMockConfig returns a gateway that always succeeds instantly
func DefaultMockConfig() *MockConfig {
	return &MockConfig{SuccessRate: 1.0}
}

// NewMockGateway creates a new mock gateway
func NewMockGateway(config *MockConfig) *MockGateway {
	if config == nil {
		config = DefaultMockConfig()
	}
	if config.SuccessRate < 0 {
		config.SuccessRate = 0
	}
	if config.SuccessRate > 1 {
		config.SuccessRate = 1
	}

	return &MockGateway{config: config}
}

// Initiate mints a mock payment reference
func (g *MockGateway) Initiate(ctx context.Context, req *InitiateRequest) (*Intent, error) {
	if req == nil {
		return nil, fmt.Errorf("initiate request is required")
	}

	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}

	reference := fmt.Sprintf("mock_%d_%d", req.BookingID, time.Now().UnixNano())
	g.intents.Store(reference, "requires_payment")

	return &Intent{
		Reference:    reference,
		ClientSecret: reference + "_secret",
		Status:       "requires_payment",
	}, nil
}

// Confirm resolves a mock payment according to the configured success rate
func (g *MockGateway) Confirm(ctx context.Context, req *ConfirmRequest) (*Confirmation, error) {
	if req == nil || req.Reference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}

	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if _, exists := g.intents.Load(req.Reference); !exists {
		return &Confirmation{Verified: false, Status: "not_found"}, nil
	}

	if rand.Float64() < g.config.SuccessRate {
		g.intents.Store(req.Reference, "succeeded")
		return &Confirmation{Verified: true, Status: "succeeded"}, nil
	}

	g.intents.Store(req.Reference, "failed")
	return &Confirmation{Verified: false, Status: "card_declined"}, nil
}

// Name returns the gateway name
func (g *MockGateway) Name() string {
	return "mock"
}

func (g *MockGateway) simulateLatency(ctx context.Context) error {
	if g.config.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(g.config.Delay):
		return nil
	}
}
