package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// MemoryBookingRepository implements BookingRepository using in-memory
// storage. Useful for testing and development.
type MemoryBookingRepository struct {
	bookings    map[int64]*domain.Booking
	byReference map[string]int64
	nextID      int64
	mu          sync.RWMutex
}

// NewMemoryBookingRepository creates a new in-memory booking repository
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings:    make(map[int64]*domain.Booking),
		byReference: make(map[string]int64),
	}
}

// Create persists a new booking and assigns its id
func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	booking.ID = r.nextID

	b := *booking
	r.bookings[booking.ID] = &b
	if booking.PaymentReference != "" {
		r.byReference[booking.PaymentReference] = booking.ID
	}

	return nil
}

// GetByID retrieves a booking by its id
func (r *MemoryBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, exists := r.bookings[id]
	if !exists {
		return nil, domain.ErrBookingNotFound
	}

	b := *booking
	return &b, nil
}

// GetByPaymentReference retrieves a booking by payment provider reference
func (r *MemoryBookingRepository) GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byReference[reference]
	if !exists {
		return nil, domain.ErrBookingNotFound
	}

	b := *r.bookings[id]
	return &b, nil
}

// Update persists the booking's status, payment reference and updated_at
func (r *MemoryBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.bookings[booking.ID]
	if !exists {
		return domain.ErrBookingNotFound
	}

	if existing.PaymentReference != "" && existing.PaymentReference != booking.PaymentReference {
		delete(r.byReference, existing.PaymentReference)
	}

	b := *booking
	r.bookings[booking.ID] = &b
	if booking.PaymentReference != "" {
		r.byReference[booking.PaymentReference] = booking.ID
	}

	return nil
}

// ListByUser retrieves bookings made by a user, newest first
func (r *MemoryBookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.UserID == userID }, limit, offset)
}

// ListByCreator retrieves bookings against a creator, newest first
func (r *MemoryBookingRepository) ListByCreator(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error) {
	return r.list(func(b *domain.Booking) bool { return b.CreatorID == creatorID }, limit, offset)
}

func (r *MemoryBookingRepository) list(match func(*domain.Booking) bool, limit, offset int) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*domain.Booking
	for _, booking := range r.bookings {
		if match(booking) {
			b := *booking
			bookings = append(bookings, &b)
		}
	}

	// Newest first, id breaks ties for bookings created in the same instant
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	if offset >= len(bookings) {
		return nil, nil
	}
	bookings = bookings[offset:]
	if limit > 0 && limit < len(bookings) {
		bookings = bookings[:limit]
	}

	return bookings, nil
}
