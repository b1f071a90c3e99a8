package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"

	"github.com/refanfc/FounderBooking/internal/dto"
	"github.com/refanfc/FounderBooking/internal/service"
	"github.com/refanfc/FounderBooking/pkg/response"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// UserHandler handles user account HTTP requests
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetOrCreate handles POST /api/users. Repeated calls with the same
// fid return the existing account.
func (h *UserHandler) GetOrCreate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.user.get_or_create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	user, err := h.userService.GetOrCreate(ctx, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.UserFromDomain(user)))
}

// UpdateWallet handles PATCH /api/users/:id/wallet
func (h *UserHandler) UpdateWallet(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.user.update_wallet")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails("INVALID_REQUEST", "invalid request body", err.Error()))
		return
	}

	user, err := h.userService.UpdateWallet(ctx, id, req.WalletAddress)
	if err != nil {
		span.RecordError(err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.UserFromDomain(user)))
}
