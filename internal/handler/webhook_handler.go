package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/refanfc/FounderBooking/internal/service"
	"github.com/refanfc/FounderBooking/pkg/logger"
	"github.com/refanfc/FounderBooking/pkg/response"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// WebhookHandler handles Stripe webhook events. Webhooks are the
// source of truth for card payment outcomes; client confirmations are
// a fast path on top of them.
type WebhookHandler struct {
	paymentService service.PaymentService
	webhookSecret  string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(paymentService service.PaymentService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		paymentService: paymentService,
		webhookSecret:  webhookSecret,
	}
}

// HandleStripe handles POST /api/webhooks/stripe
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.webhook.stripe")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	log := logger.Get()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error("failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, response.Error("INVALID_REQUEST", "failed to read request body"))
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if sigHeader == "" {
		log.Warn("missing Stripe-Signature header")
		c.JSON(http.StatusBadRequest, response.Error("INVALID_SIGNATURE", "missing Stripe-Signature header"))
		return
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, h.webhookSecret)
	if err != nil {
		span.RecordError(err)
		log.Error("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, response.Error("INVALID_SIGNATURE", "invalid signature"))
		return
	}

	log.Info("received stripe webhook event", zap.String("event_type", string(event.Type)))

	var paymentIntent stripe.PaymentIntent
	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed", "payment_intent.canceled":
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			log.Error("failed to parse webhook event data",
				zap.String("event_type", string(event.Type)),
				zap.Error(err))
			c.JSON(http.StatusBadRequest, response.Error("INVALID_REQUEST", "failed to parse event data"))
			return
		}
	default:
		log.Info("unhandled stripe event type", zap.String("event_type", string(event.Type)))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		err = h.paymentService.ReconcileSucceeded(ctx, paymentIntent.ID)
	case "payment_intent.payment_failed", "payment_intent.canceled":
		err = h.paymentService.ReconcileFailed(ctx, paymentIntent.ID)
	}
	if err != nil {
		// Ack anyway so Stripe does not retry indefinitely. Failures
		// surface in logs and traces for manual reconciliation.
		span.RecordError(err)
		log.Error("webhook reconciliation failed",
			zap.String("event_type", string(event.Type)),
			zap.String("payment_intent_id", paymentIntent.ID),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
