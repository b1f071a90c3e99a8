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

// UserService defines the interface for user business logic
type UserService interface {
	// GetOrCreate returns the user matching the request's fid or
	// username, creating one on first sign-in
	GetOrCreate(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error)

	// GetByID retrieves a user
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// UpdateWallet sets the user's wallet address
	UpdateWallet(ctx context.Context, id int64, walletAddress string) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetOrCreate returns the existing user for the identity or creates one
func (s *userService) GetOrCreate(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.get_or_create")
	defer span.End()

	if req.Fid != nil {
		span.SetAttributes(attribute.Int64("fid", *req.Fid))
		user, err := s.userRepo.GetByFid(ctx, *req.Fid)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user = &domain.User{
		Username:     req.Username,
		Fid:          req.Fid,
		ProfileImage: req.ProfileImage,
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user
func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateWallet sets the user's wallet address
func (s *userService) UpdateWallet(ctx context.Context, id int64, walletAddress string) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.update_wallet")
	defer span.End()

	span.SetAttributes(attribute.Int64("user_id", id))

	if err := s.userRepo.UpdateWallet(ctx, id, walletAddress); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, id)
}
