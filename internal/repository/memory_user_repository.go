package repository

import (
	"context"
	"sync"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// MemoryUserRepository implements UserRepository using in-memory storage.
// Useful for testing and development.
type MemoryUserRepository struct {
	users      map[int64]*domain.User
	byUsername map[string]int64
	byFid      map[int64]int64
	nextID     int64
	mu         sync.RWMutex
}

// NewMemoryUserRepository creates a new in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:      make(map[int64]*domain.User),
		byUsername: make(map[string]int64),
		byFid:      make(map[int64]int64),
	}
}

// Create persists a new user and assigns its id
func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return domain.ErrUsernameTaken
	}

	r.nextID++
	user.ID = r.nextID

	u := *user
	r.users[user.ID] = &u
	r.byUsername[user.Username] = user.ID
	if user.Fid != nil {
		r.byFid[*user.Fid] = user.ID
	}

	return nil
}

// GetByID retrieves a user by its id
func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	u := *user
	return &u, nil
}

// GetByUsername retrieves a user by username
func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byUsername[username]
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	u := *r.users[id]
	return &u, nil
}

// GetByFid retrieves a user by external social id
func (r *MemoryUserRepository) GetByFid(ctx context.Context, fid int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byFid[fid]
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	u := *r.users[id]
	return &u, nil
}

// UpdateWallet sets the user's wallet address
func (r *MemoryUserRepository) UpdateWallet(ctx context.Context, id int64, walletAddress string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[id]
	if !exists {
		return domain.ErrUserNotFound
	}

	user.WalletAddress = walletAddress
	return nil
}
