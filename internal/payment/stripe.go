package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// StripeGateway implements Gateway using Stripe PaymentIntents
type StripeGateway struct {
	currency string
}

// StripeConfig holds configuration for the Stripe gateway
type StripeConfig struct {
	SecretKey string
	Currency  string
}

// NewStripeGateway creates a new Stripe gateway
func NewStripeGateway(cfg *StripeConfig) (*StripeGateway, error) {
	if cfg == nil || cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}

	stripe.Key = cfg.SecretKey

	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}

	return &StripeGateway{currency: currency}, nil
}

// Initiate creates a PaymentIntent and returns its id and client secret
func (g *StripeGateway) Initiate(ctx context.Context, req *InitiateRequest) (*Intent, error) {
	if req == nil {
		return nil, fmt.Errorf("initiate request is required")
	}

	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"booking_id": strconv.FormatInt(req.BookingID, 10),
			"user_id":    strconv.FormatInt(req.UserID, 10),
		},
	}
	params.Context = ctx

	for k, v := range req.Metadata {
		params.Metadata[k] = v
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}

	return &Intent{
		Reference:    pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

// Confirm fetches the PaymentIntent and reports whether it succeeded.
// The provider's answer is authoritative; the client's claim of success
// is never trusted on its own.
func (g *StripeGateway) Confirm(ctx context.Context, req *ConfirmRequest) (*Confirmation, error) {
	if req == nil || req.Reference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(req.Reference, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}

	return &Confirmation{
		Verified: pi.Status == stripe.PaymentIntentStatusSucceeded,
		Status:   string(pi.Status),
	}, nil
}

// Name returns the gateway name
func (g *StripeGateway) Name() string {
	return "stripe"
}
