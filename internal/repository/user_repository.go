package repository

import (
	"context"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user and assigns its id
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by its id
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByFid retrieves a user by external social id
	GetByFid(ctx context.Context, fid int64) (*domain.User, error)

	// UpdateWallet sets the user's wallet address
	UpdateWallet(ctx context.Context, id int64, walletAddress string) error
}
