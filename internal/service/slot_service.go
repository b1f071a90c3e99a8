package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/internal/repository"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// SlotService defines the interface for time slot business logic
type SlotService interface {
	// ListAvailable retrieves a creator's available slots inside the
	// window, ordered by start time
	ListAvailable(ctx context.Context, creatorID int64, from, to time.Time) ([]*domain.TimeSlot, error)

	// Claim atomically reserves a slot for a booking
	Claim(ctx context.Context, slotID int64) error

	// Release returns a claimed slot to the available pool
	Release(ctx context.Context, slotID int64) error

	// CreateSlot adds availability to a creator's calendar
	CreateSlot(ctx context.Context, creatorID int64, start, end time.Time) (*domain.TimeSlot, error)
}

type slotService struct {
	slotRepo    repository.TimeSlotRepository
	creatorRepo repository.CreatorRepository
}

// NewSlotService creates a new slot service
func NewSlotService(slotRepo repository.TimeSlotRepository, creatorRepo repository.CreatorRepository) SlotService {
	return &slotService{
		slotRepo:    slotRepo,
		creatorRepo: creatorRepo,
	}
}

// ListAvailable retrieves a creator's available slots inside the window
func (s *slotService) ListAvailable(ctx context.Context, creatorID int64, from, to time.Time) ([]*domain.TimeSlot, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.slot.list_available")
	defer span.End()

	span.SetAttributes(attribute.Int64("creator_id", creatorID))

	if _, err := s.creatorRepo.GetByID(ctx, creatorID); err != nil {
		return nil, err
	}

	return s.slotRepo.ListByCreator(ctx, creatorID, from, to, true)
}

// Claim atomically reserves a slot for a booking
func (s *slotService) Claim(ctx context.Context, slotID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.slot.claim")
	defer span.End()

	span.SetAttributes(attribute.Int64("slot_id", slotID))

	return s.slotRepo.Claim(ctx, slotID)
}

// Release returns a claimed slot to the available pool
func (s *slotService) Release(ctx context.Context, slotID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.slot.release")
	defer span.End()

	span.SetAttributes(attribute.Int64("slot_id", slotID))

	return s.slotRepo.Release(ctx, slotID)
}

// CreateSlot adds availability to a creator's calendar
func (s *slotService) CreateSlot(ctx context.Context, creatorID int64, start, end time.Time) (*domain.TimeSlot, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.slot.create")
	defer span.End()

	span.SetAttributes(attribute.Int64("creator_id", creatorID))

	if _, err := s.creatorRepo.GetByID(ctx, creatorID); err != nil {
		return nil, err
	}

	slot := &domain.TimeSlot{
		CreatorID:   creatorID,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}
