package dto

import (
	"time"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// CreateBookingRequest claims a slot and opens a booking
type CreateBookingRequest struct {
	UserID     int64  `json:"userId" binding:"required"`
	CreatorID  int64  `json:"creatorId" binding:"required"`
	TimeSlotID int64  `json:"timeSlotId" binding:"required"`
	Message    string `json:"message,omitempty"`
	// ExpectedAmount is the price the client showed the user, in cents.
	// It must match the creator's current rate.
	ExpectedAmount int64 `json:"expectedAmount" binding:"required,min=1"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	CreatorID        int64     `json:"creatorId"`
	TimeSlotID       int64     `json:"timeSlotId"`
	Message          string    `json:"message,omitempty"`
	TotalAmount      int64     `json:"totalAmount"`
	Status           string    `json:"status"`
	PaymentReference string    `json:"paymentReference,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BookingFromDomain converts a domain Booking to BookingResponse
func BookingFromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		CreatorID:        b.CreatorID,
		TimeSlotID:       b.TimeSlotID,
		Message:          b.Message,
		TotalAmount:      b.TotalAmount,
		Status:           b.Status.String(),
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// BookingsFromDomain converts a slice of domain Bookings
func BookingsFromDomain(bookings []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingFromDomain(b))
	}
	return out
}
