package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/refanfc/FounderBooking/internal/dto"
	"github.com/refanfc/FounderBooking/internal/service"
	"github.com/refanfc/FounderBooking/pkg/response"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent handles POST /api/create-payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.payment.create_intent")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	span.SetAttributes(attribute.Int64("booking_id", req.BookingID))

	intent, booking, err := h.paymentService.CreateIntent(ctx, req.BookingID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.CreatePaymentIntentResponse{
		PaymentIntentID: intent.Reference,
		ClientSecret:    intent.ClientSecret,
		Amount:          booking.TotalAmount,
	}))
}

// ConfirmPayment handles POST /api/confirm-payment
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.payment.confirm")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	booking, confirmation, err := h.paymentService.ConfirmCard(ctx, req.PaymentIntentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.ConfirmPaymentResponse{
		Success: confirmation.Verified,
		Status:  confirmation.Status,
		Booking: dto.BookingFromDomain(booking),
	}))
}

// ConfirmCryptoPayment handles POST /api/confirm-crypto-payment
func (h *PaymentHandler) ConfirmCryptoPayment(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.payment.confirm_crypto")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.ConfirmCryptoPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	span.SetAttributes(attribute.Int64("booking_id", req.BookingID))

	booking, confirmation, err := h.paymentService.ConfirmCrypto(ctx, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.ConfirmPaymentResponse{
		Success: confirmation.Verified,
		Status:  confirmation.Status,
		Booking: dto.BookingFromDomain(booking),
	}))
}
