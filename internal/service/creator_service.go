package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/internal/dto"
	"github.com/refanfc/FounderBooking/internal/repository"
	"github.com/refanfc/FounderBooking/pkg/telemetry"
)

// CreatorService defines the interface for creator profile business logic
type CreatorService interface {
	// Create opens a bookable profile for a user. One profile per user.
	Create(ctx context.Context, req *dto.CreateCreatorRequest) (*domain.Creator, error)

	// GetByID retrieves a creator joined with its user
	GetByID(ctx context.Context, id int64) (*domain.CreatorWithUser, error)

	// ListActive retrieves active creators joined with their users
	ListActive(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error)
}

type creatorService struct {
	creatorRepo repository.CreatorRepository
	userRepo    repository.UserRepository
}

// NewCreatorService creates a new creator service
func NewCreatorService(creatorRepo repository.CreatorRepository, userRepo repository.UserRepository) CreatorService {
	return &creatorService{
		creatorRepo: creatorRepo,
		userRepo:    userRepo,
	}
}

// Create opens a bookable profile for a user
func (s *creatorService) Create(ctx context.Context, req *dto.CreateCreatorRequest) (*domain.Creator, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.creator.create")
	defer span.End()

	span.SetAttributes(attribute.Int64("user_id", req.UserID))

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	if _, err := s.creatorRepo.GetByUserID(ctx, req.UserID); err == nil {
		return nil, domain.ErrCreatorExists
	} else if !errors.Is(err, domain.ErrCreatorNotFound) {
		return nil, err
	}

	creator := &domain.Creator{
		UserID:   req.UserID,
		Title:    req.Title,
		Rate:     req.Rate,
		Duration: req.Duration,
		Category: req.Category,
		IsActive: true,
		Timezone: req.Timezone,
	}
	if err := creator.Validate(); err != nil {
		return nil, err
	}

	if err := s.creatorRepo.Create(ctx, creator); err != nil {
		return nil, err
	}

	return creator, nil
}

// GetByID retrieves a creator joined with its user
func (s *creatorService) GetByID(ctx context.Context, id int64) (*domain.CreatorWithUser, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.creator.get")
	defer span.End()

	span.SetAttributes(attribute.Int64("creator_id", id))

	creator, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, creator.UserID)
	if err != nil {
		return nil, err
	}

	return &domain.CreatorWithUser{Creator: *creator, User: user}, nil
}

// ListActive retrieves active creators joined with their users
func (s *creatorService) ListActive(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.creator.list_active")
	defer span.End()

	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return s.creatorRepo.ListActive(ctx, category, limit, offset)
}
