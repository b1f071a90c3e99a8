package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/refanfc/FounderBooking/internal/dto"
	"github.com/refanfc/FounderBooking/internal/service"
	"github.com/refanfc/FounderBooking/pkg/response"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	span.SetAttributes(
		attribute.Int64("user_id", req.UserID),
		attribute.Int64("creator_id", req.CreatorID),
		attribute.Int64("time_slot_id", req.TimeSlotID),
	)

	booking, err := h.bookingService.Create(ctx, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	span.SetAttributes(attribute.Int64("booking_id", booking.ID))
	c.JSON(http.StatusCreated, response.Success(dto.BookingFromDomain(booking)))
}

// GetByID handles GET /api/bookings/:id
func (h *BookingHandler) GetByID(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.BookingFromDomain(booking)))
}

// ListByUser handles GET /api/bookings/user/:userId
func (h *BookingHandler) ListByUser(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.list_by_user")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	limit, offset := pagination(c)
	bookings, err := h.bookingService.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		span.RecordError(err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.BookingsFromDomain(bookings)))
}

// ListByCreator handles GET /api/bookings/creator/:creatorId
func (h *BookingHandler) ListByCreator(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.list_by_creator")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	creatorID, ok := pathID(c, "creatorId")
	if !ok {
		return
	}

	limit, offset := pagination(c)
	bookings, err := h.bookingService.ListByCreator(ctx, creatorID, limit, offset)
	if err != nil {
		span.RecordError(err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.BookingsFromDomain(bookings)))
}

// Cancel handles POST /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.cancel")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	span.SetAttributes(attribute.Int64("booking_id", id))

	booking, err := h.bookingService.Cancel(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.BookingFromDomain(booking)))
}

// pathID parses an int64 path parameter, writing the 400 itself when the
// value is not a positive integer
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_REQUEST", "invalid "+name))
		return 0, false
	}
	return id, true
}

// pagination reads limit/offset query params with sane bounds
func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
