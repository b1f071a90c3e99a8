package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/internal/dto"
	"github.com/refanfc/FounderBooking/internal/repository"
	"github.com/refanfc/FounderBooking/pkg/logger"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// BookingService defines the interface for booking business logic
type BookingService interface {
	// Create claims the slot and opens a pending booking
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error)

	// MarkPaymentPending attaches a payment reference to a pending booking
	MarkPaymentPending(ctx context.Context, bookingID int64, paymentReference string) (*domain.Booking, error)

	// Confirm transitions a booking to confirmed after payment verification
	Confirm(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// Cancel transitions a booking to cancelled and releases its slot
	Cancel(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// Complete transitions a confirmed booking to completed
	Complete(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// GetByID retrieves a booking
	GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// GetByPaymentReference retrieves a booking by provider reference
	GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error)

	// ListByUser retrieves a user's bookings, newest first
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error)

	// ListByCreator retrieves a creator's bookings, newest first
	ListByCreator(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error)
}

type bookingService struct {
	bookingRepo    repository.BookingRepository
	creatorRepo    repository.CreatorRepository
	slotRepo       repository.TimeSlotRepository
	eventPublisher EventPublisher
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	creatorRepo repository.CreatorRepository,
	slotRepo repository.TimeSlotRepository,
	eventPublisher EventPublisher,
) BookingService {
	if eventPublisher == nil {
		eventPublisher = NewNoOpEventPublisher()
	}
	return &bookingService{
		bookingRepo:    bookingRepo,
		creatorRepo:    creatorRepo,
		slotRepo:       slotRepo,
		eventPublisher: eventPublisher,
	}
}

// Create claims the slot and opens a pending booking. The amount check
// runs before the claim so a mismatch leaves the slot untouched. If the
// insert fails after a successful claim, the slot is released so the two
// writes behave as one.
func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.create")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("user_id", req.UserID),
		attribute.Int64("creator_id", req.CreatorID),
		attribute.Int64("time_slot_id", req.TimeSlotID),
	)

	creator, err := s.creatorRepo.GetByID(ctx, req.CreatorID)
	if err != nil {
		return nil, err
	}
	if !creator.IsActive {
		return nil, domain.ErrCreatorNotFound
	}

	slot, err := s.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if slot.CreatorID != creator.ID {
		return nil, domain.ErrSlotNotFound
	}

	// Price is always the creator's current rate; the client's expected
	// amount must agree before anything is mutated
	if req.ExpectedAmount != creator.Rate {
		return nil, domain.ErrAmountMismatch
	}

	if err := s.slotRepo.Claim(ctx, req.TimeSlotID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		UserID:      req.UserID,
		CreatorID:   req.CreatorID,
		TimeSlotID:  req.TimeSlotID,
		Message:     req.Message,
		TotalAmount: creator.Rate,
		Status:      domain.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if releaseErr := s.slotRepo.Release(ctx, req.TimeSlotID); releaseErr != nil {
			logger.Get().Error("failed to release slot after booking insert failure",
				zap.Int64("time_slot_id", req.TimeSlotID),
				zap.Error(releaseErr),
			)
		}
		return nil, err
	}

	if err := s.eventPublisher.PublishBookingCreated(ctx, booking); err != nil {
		logger.Get().Warn("failed to publish booking created event",
			zap.Int64("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	return booking, nil
}

// MarkPaymentPending attaches a payment reference to a pending booking
func (s *bookingService) MarkPaymentPending(ctx context.Context, bookingID int64, paymentReference string) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.mark_payment_pending")
	defer span.End()

	span.SetAttributes(attribute.Int64("booking_id", bookingID))

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.MarkPaymentPending(paymentReference); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// Confirm transitions a booking to confirmed. Confirming an already
// confirmed booking is an idempotent success.
func (s *bookingService) Confirm(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.confirm")
	defer span.End()

	span.SetAttributes(attribute.Int64("booking_id", bookingID))

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsConfirmed() {
		return booking, nil
	}

	if err := booking.Confirm(); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.PublishBookingConfirmed(ctx, booking); err != nil {
		logger.Get().Warn("failed to publish booking confirmed event",
			zap.Int64("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	return booking, nil
}

// Cancel transitions a booking to cancelled and releases its slot. The
// release fires on every cancel path, including payment failure, so a
// failed payment never strands the slot.
func (s *bookingService) Cancel(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.cancel")
	defer span.End()

	span.SetAttributes(attribute.Int64("booking_id", bookingID))

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.Cancel(); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.slotRepo.Release(ctx, booking.TimeSlotID); err != nil {
		logger.Get().Error("failed to release slot on booking cancel",
			zap.Int64("booking_id", booking.ID),
			zap.Int64("time_slot_id", booking.TimeSlotID),
			zap.Error(err),
		)
	}

	if err := s.eventPublisher.PublishBookingCancelled(ctx, booking); err != nil {
		logger.Get().Warn("failed to publish booking cancelled event",
			zap.Int64("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	return booking, nil
}

// Complete transitions a confirmed booking to completed
func (s *bookingService) Complete(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.complete")
	defer span.End()

	span.SetAttributes(attribute.Int64("booking_id", bookingID))

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.Complete(); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByID retrieves a booking
func (s *bookingService) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetByPaymentReference retrieves a booking by provider reference
func (s *bookingService) GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookingRepo.GetByPaymentReference(ctx, reference)
}

// ListByUser retrieves a user's bookings, newest first
func (s *bookingService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID, limit, offset)
}

// ListByCreator retrieves a creator's bookings, newest first
func (s *bookingService) ListByCreator(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCreator(ctx, creatorID, limit, offset)
}
