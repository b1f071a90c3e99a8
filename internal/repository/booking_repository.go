package repository

import (
	"context"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	// Create persists a new booking and assigns its id
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by its id
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)

	// GetByPaymentReference retrieves a booking by its payment provider
	// reference. Used by webhook reconciliation.
	GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error)

	// Update persists the booking's status, payment reference and
	// updated_at fields
	Update(ctx context.Context, booking *domain.Booking) error

	// ListByUser retrieves bookings made by a user, newest first
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error)

	// ListByCreator retrieves bookings against a creator, newest first
	ListByCreator(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error)
}
