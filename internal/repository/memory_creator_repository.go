package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// MemoryCreatorRepository implements CreatorRepository using in-memory
// storage. ListActive needs a user lookup so it holds a reference to the
// user repository it was built with.
type MemoryCreatorRepository struct {
	creators map[int64]*domain.Creator
	byUser   map[int64]int64
	users    UserRepository
	nextID   int64
	mu       sync.RWMutex
}

// NewMemoryCreatorRepository creates a new in-memory creator repository
func NewMemoryCreatorRepository(users UserRepository) *MemoryCreatorRepository {
	return &MemoryCreatorRepository{
		creators: make(map[int64]*domain.Creator),
		byUser:   make(map[int64]int64),
		users:    users,
	}
}

// Create persists a new creator profile and assigns its id
func (r *MemoryCreatorRepository) Create(ctx context.Context, creator *domain.Creator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUser[creator.UserID]; exists {
		return domain.ErrCreatorExists
	}

	r.nextID++
	creator.ID = r.nextID

	c := *creator
	r.creators[creator.ID] = &c
	r.byUser[creator.UserID] = creator.ID

	return nil
}

// GetByID retrieves a creator by its id
func (r *MemoryCreatorRepository) GetByID(ctx context.Context, id int64) (*domain.Creator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	creator, exists := r.creators[id]
	if !exists {
		return nil, domain.ErrCreatorNotFound
	}

	c := *creator
	return &c, nil
}

// GetByUserID retrieves the creator profile owned by a user
func (r *MemoryCreatorRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Creator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byUser[userID]
	if !exists {
		return nil, domain.ErrCreatorNotFound
	}

	c := *r.creators[id]
	return &c, nil
}

// ListActive retrieves active creators joined with their users
func (r *MemoryCreatorRepository) ListActive(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error) {
	r.mu.RLock()
	var matched []*domain.Creator
	for _, creator := range r.creators {
		if !creator.IsActive {
			continue
		}
		if category != "" && creator.Category != category {
			continue
		}
		c := *creator
		matched = append(matched, &c)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	result := make([]*domain.CreatorWithUser, 0, len(matched))
	for _, creator := range matched {
		user, err := r.users.GetByID(ctx, creator.UserID)
		if err != nil {
			return nil, err
		}
		result = append(result, &domain.CreatorWithUser{Creator: *creator, User: user})
	}

	return result, nil
}

// Update updates a creator's mutable fields
func (r *MemoryCreatorRepository) Update(ctx context.Context, creator *domain.Creator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.creators[creator.ID]; !exists {
		return domain.ErrCreatorNotFound
	}

	c := *creator
	r.creators[creator.ID] = &c

	return nil
}
