package repository

import (
	"context"
	"time"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// TimeSlotRepository defines the interface for time slot data access
type TimeSlotRepository interface {
	// Create persists a new time slot and assigns its id
	Create(ctx context.Context, slot *domain.TimeSlot) error

	// GetByID retrieves a time slot by its id
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)

	// ListByCreator retrieves a creator's slots overlapping the window.
	// Zero time bounds mean unbounded on that side.
	ListByCreator(ctx context.Context, creatorID int64, from, to time.Time, availableOnly bool) ([]*domain.TimeSlot, error)

	// Claim atomically flips an available slot to unavailable. Returns
	// domain.ErrSlotNotFound when the slot does not exist and
	// domain.ErrSlotUnavailable when it was already claimed.
	Claim(ctx context.Context, id int64) error

	// Release flips a slot back to available. Releasing an already
	// available slot is a no-op.
	Release(ctx context.Context, id int64) error
}
