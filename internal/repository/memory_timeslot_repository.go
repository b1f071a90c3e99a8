package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// MemoryTimeSlotRepository implements TimeSlotRepository using in-memory
// storage. Claim holds the write lock for the read-check-write sequence,
// which gives the same atomicity as the conditional UPDATE in the
// PostgreSQL implementation.
type MemoryTimeSlotRepository struct {
	slots  map[int64]*domain.TimeSlot
	nextID int64
	mu     sync.RWMutex
}

// NewMemoryTimeSlotRepository creates a new in-memory time slot repository
func NewMemoryTimeSlotRepository() *MemoryTimeSlotRepository {
	return &MemoryTimeSlotRepository{
		slots: make(map[int64]*domain.TimeSlot),
	}
}

// Create persists a new time slot and assigns its id
func (r *MemoryTimeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	slot.ID = r.nextID

	s := *slot
	r.slots[slot.ID] = &s

	return nil
}

// GetByID retrieves a time slot by its id
func (r *MemoryTimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, exists := r.slots[id]
	if !exists {
		return nil, domain.ErrSlotNotFound
	}

	s := *slot
	return &s, nil
}

// ListByCreator retrieves a creator's slots whose start time falls within
// the inclusive [from, to] window. A zero bound leaves that side open.
func (r *MemoryTimeSlotRepository) ListByCreator(ctx context.Context, creatorID int64, from, to time.Time, availableOnly bool) ([]*domain.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var slots []*domain.TimeSlot
	for _, slot := range r.slots {
		if slot.CreatorID != creatorID {
			continue
		}
		if availableOnly && !slot.IsAvailable {
			continue
		}
		if !from.IsZero() && slot.StartTime.Before(from) {
			continue
		}
		if !to.IsZero() && slot.StartTime.After(to) {
			continue
		}
		s := *slot
		slots = append(slots, &s)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime.Before(slots[j].StartTime) })

	return slots, nil
}

// Claim atomically flips an available slot to unavailable
func (r *MemoryTimeSlotRepository) Claim(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, exists := r.slots[id]
	if !exists {
		return domain.ErrSlotNotFound
	}
	if !slot.IsAvailable {
		return domain.ErrSlotUnavailable
	}

	slot.IsAvailable = false
	return nil
}

// Release flips a slot back to available. Releasing an already available
// slot is a no-op.
func (r *MemoryTimeSlotRepository) Release(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, exists := r.slots[id]
	if !exists {
		return domain.ErrSlotNotFound
	}

	slot.IsAvailable = true
	return nil
}
