package service

import (
	"context"
	"time"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/internal/dto"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	CreateFunc                func(ctx context.Context, booking *domain.Booking) error
	GetByIDFunc               func(ctx context.Context, id int64) (*domain.Booking, error)
	GetByPaymentReferenceFunc func(ctx context.Context, reference string) (*domain.Booking, error)
	UpdateFunc                func(ctx context.Context, booking *domain.Booking) error
	ListByUserFunc            func(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error)
	ListByCreatorFunc         func(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	booking.ID = 1
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingRepository) GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error) {
	if m.GetByPaymentReferenceFunc != nil {
		return m.GetByPaymentReferenceFunc(ctx, reference)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingRepository) ListByCreator(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, creatorID, limit, offset)
	}
	return []*domain.Booking{}, nil
}

// MockCreatorRepository is a mock implementation of CreatorRepository
type MockCreatorRepository struct {
	CreateFunc      func(ctx context.Context, creator *domain.Creator) error
	GetByIDFunc     func(ctx context.Context, id int64) (*domain.Creator, error)
	GetByUserIDFunc func(ctx context.Context, userID int64) (*domain.Creator, error)
	ListActiveFunc  func(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error)
	UpdateFunc      func(ctx context.Context, creator *domain.Creator) error
}

func (m *MockCreatorRepository) Create(ctx context.Context, creator *domain.Creator) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, creator)
	}
	creator.ID = 1
	return nil
}

func (m *MockCreatorRepository) GetByID(ctx context.Context, id int64) (*domain.Creator, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrCreatorNotFound
}

func (m *MockCreatorRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Creator, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrCreatorNotFound
}

func (m *MockCreatorRepository) ListActive(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, category, limit, offset)
	}
	return []*domain.CreatorWithUser{}, nil
}

func (m *MockCreatorRepository) Update(ctx context.Context, creator *domain.Creator) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, creator)
	}
	return nil
}

// MockTimeSlotRepository is a mock implementation of TimeSlotRepository
type MockTimeSlotRepository struct {
	CreateFunc        func(ctx context.Context, slot *domain.TimeSlot) error
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.TimeSlot, error)
	ListByCreatorFunc func(ctx context.Context, creatorID int64, from, to time.Time, availableOnly bool) ([]*domain.TimeSlot, error)
	ClaimFunc         func(ctx context.Context, id int64) error
	ReleaseFunc       func(ctx context.Context, id int64) error
}

func (m *MockTimeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, slot)
	}
	slot.ID = 1
	return nil
}

func (m *MockTimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrSlotNotFound
}

func (m *MockTimeSlotRepository) ListByCreator(ctx context.Context, creatorID int64, from, to time.Time, availableOnly bool) ([]*domain.TimeSlot, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, creatorID, from, to, availableOnly)
	}
	return []*domain.TimeSlot{}, nil
}

func (m *MockTimeSlotRepository) Claim(ctx context.Context, id int64) error {
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, id)
	}
	return nil
}

func (m *MockTimeSlotRepository) Release(ctx context.Context, id int64) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, id)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	GetByFidFunc      func(ctx context.Context, fid int64) (*domain.User, error)
	UpdateWalletFunc  func(ctx context.Context, id int64, walletAddress string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByFid(ctx context.Context, fid int64) (*domain.User, error) {
	if m.GetByFidFunc != nil {
		return m.GetByFidFunc(ctx, fid)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) UpdateWallet(ctx context.Context, id int64, walletAddress string) error {
	if m.UpdateWalletFunc != nil {
		return m.UpdateWalletFunc(ctx, id, walletAddress)
	}
	return nil
}

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	CreateFunc                func(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error)
	MarkPaymentPendingFunc    func(ctx context.Context, bookingID int64, paymentReference string) (*domain.Booking, error)
	ConfirmFunc               func(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CancelFunc                func(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CompleteFunc              func(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetByIDFunc               func(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetByPaymentReferenceFunc func(ctx context.Context, reference string) (*domain.Booking, error)
	ListByUserFunc            func(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error)
	ListByCreatorFunc         func(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error)
}

func (m *MockBookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockBookingService) MarkPaymentPending(ctx context.Context, bookingID int64, paymentReference string) (*domain.Booking, error) {
	if m.MarkPaymentPendingFunc != nil {
		return m.MarkPaymentPendingFunc(ctx, bookingID, paymentReference)
	}
	return &domain.Booking{ID: bookingID, Status: domain.BookingStatusPaymentPending, PaymentReference: paymentReference}, nil
}

func (m *MockBookingService) Confirm(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, bookingID)
	}
	return &domain.Booking{ID: bookingID, Status: domain.BookingStatusConfirmed}, nil
}

func (m *MockBookingService) Cancel(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, bookingID)
	}
	return &domain.Booking{ID: bookingID, Status: domain.BookingStatusCancelled}, nil
}

func (m *MockBookingService) Complete(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, bookingID)
	}
	return &domain.Booking{ID: bookingID, Status: domain.BookingStatusCompleted}, nil
}

func (m *MockBookingService) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, bookingID)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingService) GetByPaymentReference(ctx context.Context, reference string) (*domain.Booking, error) {
	if m.GetByPaymentReferenceFunc != nil {
		return m.GetByPaymentReferenceFunc(ctx, reference)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Booking, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingService) ListByCreator(ctx context.Context, creatorID int64, limit, offset int) ([]*domain.Booking, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, creatorID, limit, offset)
	}
	return []*domain.Booking{}, nil
}

// MockEventPublisher records published events for assertions
type MockEventPublisher struct {
	CreatedFunc   func(ctx context.Context, booking *domain.Booking) error
	ConfirmedFunc func(ctx context.Context, booking *domain.Booking) error
	CancelledFunc func(ctx context.Context, booking *domain.Booking) error

	Created   []int64
	Confirmed []int64
	Cancelled []int64
}

func (m *MockEventPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	m.Created = append(m.Created, booking.ID)
	if m.CreatedFunc != nil {
		return m.CreatedFunc(ctx, booking)
	}
	return nil
}

func (m *MockEventPublisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	m.Confirmed = append(m.Confirmed, booking.ID)
	if m.ConfirmedFunc != nil {
		return m.ConfirmedFunc(ctx, booking)
	}
	return nil
}

func (m *MockEventPublisher) PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error {
	m.Cancelled = append(m.Cancelled, booking.ID)
	if m.CancelledFunc != nil {
		return m.CancelledFunc(ctx, booking)
	}
	return nil
}

func (m *MockEventPublisher) Close() error { return nil }
