package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/internal/dto"
	"github.com/refanfc/FounderBooking/internal/payment"
	"github.com/refanfc/FounderBooking/pkg/logger"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// PaymentService orchestrates payment gateways against the booking
// lifecycle. Every provider call is bounded by the configured timeout.
type PaymentService interface {
	// CreateIntent starts a card payment for a pending booking and
	// moves it to payment_pending
	CreateIntent(ctx context.Context, bookingID int64) (*payment.Intent, *domain.Booking, error)

	// ConfirmCard verifies a card payment with the provider. Verified
	// payments confirm the booking; provider-reported failures cancel
	// it and release the slot.
	ConfirmCard(ctx context.Context, paymentIntentID string) (*domain.Booking, *payment.Confirmation, error)

	// ConfirmCrypto records a wallet transfer and confirms the booking
	ConfirmCrypto(ctx context.Context, req *dto.ConfirmCryptoPaymentRequest) (*domain.Booking, *payment.Confirmation, error)

	// ReconcileSucceeded confirms the booking holding the reference.
	// Driven by provider webhooks.
	ReconcileSucceeded(ctx context.Context, reference string) error

	// ReconcileFailed cancels the booking holding the reference and
	// releases its slot. Driven by provider webhooks.
	ReconcileFailed(ctx context.Context, reference string) error
}

type paymentService struct {
	bookings        BookingService
	cardGateway     payment.Gateway
	walletGateway   payment.Gateway
	providerTimeout time.Duration
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	bookings BookingService,
	cardGateway payment.Gateway,
	walletGateway payment.Gateway,
	providerTimeout time.Duration,
) PaymentService {
	if providerTimeout <= 0 {
		providerTimeout = 15 * time.Second
	}
	return &paymentService{
		bookings:        bookings,
		cardGateway:     cardGateway,
		walletGateway:   walletGateway,
		providerTimeout: providerTimeout,
	}
}

// CreateIntent starts a card payment for a pending booking
func (s *paymentService) CreateIntent(ctx context.Context, bookingID int64) (*payment.Intent, *domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.payment.create_intent")
	defer span.End()

	span.SetAttributes(attribute.Int64("booking_id", bookingID))

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if !booking.CanMarkPaymentPending() {
		return nil, nil, domain.ErrInvalidTransition
	}

	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	intent, err := s.cardGateway.Initiate(callCtx, &payment.InitiateRequest{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Amount:    booking.TotalAmount,
	})
	if err != nil {
		return nil, nil, err
	}

	booking, err = s.bookings.MarkPaymentPending(ctx, booking.ID, intent.Reference)
	if err != nil {
		return nil, nil, err
	}

	return intent, booking, nil
}

// ConfirmCard verifies a card payment with the provider
func (s *paymentService) ConfirmCard(ctx context.Context, paymentIntentID string) (*domain.Booking, *payment.Confirmation, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.payment.confirm_card")
	defer span.End()

	booking, err := s.bookings.GetByPaymentReference(ctx, paymentIntentID)
	if err != nil {
		return nil, nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	confirmation, err := s.cardGateway.Confirm(callCtx, &payment.ConfirmRequest{Reference: paymentIntentID})
	if err != nil {
		return nil, nil, err
	}

	if confirmation.Verified {
		booking, err = s.bookings.Confirm(ctx, booking.ID)
		if err != nil {
			return nil, nil, err
		}
		return booking, confirmation, nil
	}

	// A definitive provider failure cancels the booking so the slot
	// goes back on sale; in-flight statuses leave it payment_pending
	if isTerminalFailure(confirmation.Status) {
		booking, err = s.bookings.Cancel(ctx, booking.ID)
		if err != nil {
			return nil, nil, err
		}
	}

	return booking, confirmation, nil
}

// ConfirmCrypto records a wallet transfer and confirms the booking
func (s *paymentService) ConfirmCrypto(ctx context.Context, req *dto.ConfirmCryptoPaymentRequest) (*domain.Booking, *payment.Confirmation, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.payment.confirm_crypto")
	defer span.End()

	span.SetAttributes(attribute.Int64("booking_id", req.BookingID))

	booking, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, nil, err
	}
	if !booking.CanConfirm() && !booking.IsConfirmed() {
		return nil, nil, domain.ErrInvalidTransition
	}

	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	confirmation, err := s.walletGateway.Confirm(callCtx, &payment.ConfirmRequest{
		Reference:       booking.PaymentReference,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		return nil, nil, err
	}

	if !confirmation.Verified {
		return booking, confirmation, nil
	}

	if booking.CanMarkPaymentPending() {
		booking, err = s.bookings.MarkPaymentPending(ctx, booking.ID, req.TransactionHash)
		if err != nil {
			return nil, nil, err
		}
	}

	booking, err = s.bookings.Confirm(ctx, booking.ID)
	if err != nil {
		return nil, nil, err
	}

	return booking, confirmation, nil
}

// ReconcileSucceeded confirms the booking holding the reference
func (s *paymentService) ReconcileSucceeded(ctx context.Context, reference string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.payment.reconcile_succeeded")
	defer span.End()

	booking, err := s.bookings.GetByPaymentReference(ctx, reference)
	if err != nil {
		return err
	}

	if _, err := s.bookings.Confirm(ctx, booking.ID); err != nil {
		return err
	}

	logger.Get().Info("payment reconciled as succeeded",
		zap.Int64("booking_id", booking.ID),
		zap.String("payment_reference", reference),
	)
	return nil
}

// ReconcileFailed cancels the booking holding the reference
func (s *paymentService) ReconcileFailed(ctx context.Context, reference string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.payment.reconcile_failed")
	defer span.End()

	booking, err := s.bookings.GetByPaymentReference(ctx, reference)
	if err != nil {
		return err
	}

	if _, err := s.bookings.Cancel(ctx, booking.ID); err != nil {
		return err
	}

	logger.Get().Info("payment reconciled as failed, booking cancelled",
		zap.Int64("booking_id", booking.ID),
		zap.String("payment_reference", reference),
	)
	return nil
}

// isTerminalFailure reports whether a provider status means the payment
// can no longer succeed
func isTerminalFailure(status string) bool {
	switch status {
	case "canceled", "failed", "card_declined":
		return true
	}
	return false
}
