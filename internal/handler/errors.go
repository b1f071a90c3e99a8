package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/pkg/logger"
	"github.com/refanfc/FounderBooking/pkg/response"
)

// handleError maps domain errors onto HTTP statuses. Unknown errors are
// logged and surfaced as 500 without leaking internals.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCreatorNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, response.Error("NOT_FOUND", err.Error()))

	case errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusBadRequest, response.Error("SLOT_UNAVAILABLE", err.Error()))

	case errors.Is(err, domain.ErrAmountMismatch):
		c.JSON(http.StatusBadRequest, response.Error("AMOUNT_MISMATCH", err.Error()))

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyConfirmed):
		c.JSON(http.StatusConflict, response.Error("INVALID_TRANSITION", err.Error()))

	case errors.Is(err, domain.ErrCreatorExists),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, response.Error("CONFLICT", err.Error()))

	case errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidCreatorID),
		errors.Is(err, domain.ErrInvalidTitle),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, response.Error("VALIDATION_ERROR", err.Error()))

	case errors.Is(err, domain.ErrPaymentProvider):
		c.JSON(http.StatusBadGateway, response.Error("PAYMENT_PROVIDER_ERROR", "payment provider request failed"))

	default:
		logger.Get().Error("unhandled error", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, response.Error("INTERNAL_ERROR", "internal server error"))
	}
}
