package repository

import (
	"context"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// CreatorRepository defines the interface for creator profile data access
type CreatorRepository interface {
	// Create persists a new creator profile and assigns its id
	Create(ctx context.Context, creator *domain.Creator) error

	// GetByID retrieves a creator by its id
	GetByID(ctx context.Context, id int64) (*domain.Creator, error)

	// GetByUserID retrieves the creator profile owned by a user
	GetByUserID(ctx context.Context, userID int64) (*domain.Creator, error)

	// ListActive retrieves active creators joined with their users
	ListActive(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error)

	// Update updates a creator's mutable fields
	Update(ctx context.Context, creator *domain.Creator) error
}
