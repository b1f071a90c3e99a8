package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/refanfc/FounderBooking/internal/dto"
	"github.com/refanfc/FounderBooking/internal/service"
	"github.com/refanfc/FounderBooking/pkg/response"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// CreatorHandler handles creator profile and availability HTTP requests
type CreatorHandler struct {
	creatorService service.CreatorService
	slotService    service.SlotService
}

// NewCreatorHandler creates a new creator handler
func NewCreatorHandler(creatorService service.CreatorService, slotService service.SlotService) *CreatorHandler {
	return &CreatorHandler{
		creatorService: creatorService,
		slotService:    slotService,
	}
}

// List handles GET /api/creators
func (h *CreatorHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.creator.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	limit, offset := pagination(c)
	creators, err := h.creatorService.ListActive(ctx, c.Query("category"), limit, offset)
	if err != nil {
		span.RecordError(err)
		handleError(c, err)
		return
	}

	out := make([]*dto.CreatorResponse, 0, len(creators))
	for _, cw := range creators {
		out = append(out, dto.CreatorWithUserFromDomain(cw))
	}

	c.JSON(http.StatusOK, response.Success(out))
}

// Create handles POST /api/creators
func (h *CreatorHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.creator.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	span.SetAttributes(attribute.Int64("user_id", req.UserID))

	creator, err := h.creatorService.Create(ctx, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.CreatorFromDomain(creator)))
}

// GetByID handles GET /api/creators/:id
func (h *CreatorHandler) GetByID(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.creator.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	creator, err := h.creatorService.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.CreatorWithUserFromDomain(creator)))
}

// ListTimeSlots handles GET /api/creators/:id/timeslots
func (h *CreatorHandler) ListTimeSlots(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.creator.list_timeslots")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	from, ok := timeQuery(c, "startDate")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "endDate")
	if !ok {
		return
	}

	slots, err := h.slotService.ListAvailable(ctx, id, from, to)
	if err != nil {
		span.RecordError(err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.TimeSlotsFromDomain(slots)))
}

// CreateTimeSlot handles POST /api/creators/:id/timeslots
func (h *CreatorHandler) CreateTimeSlot(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.creator.create_timeslot")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	slot, err := h.slotService.CreateSlot(ctx, id, req.StartTime, req.EndTime)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.TimeSlotFromDomain(slot)))
}

// timeQuery parses an optional RFC3339 query param. A missing param
// yields the zero time, meaning unbounded.
func timeQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_REQUEST", name+" must be RFC3339"))
		return time.Time{}, false
	}
	return t, true
}
