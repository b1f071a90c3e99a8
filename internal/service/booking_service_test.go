package service

import (
	"context"
	"errors"
	"testing"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/internal/dto"
)

func activeCreator() *domain.Creator {
	return &domain.Creator{
		ID:       10,
		UserID:   2,
		Title:    "Founder office hours",
		Rate:     15000,
		Duration: 30,
		IsActive: true,
	}
}

func availableSlot() *domain.TimeSlot {
	return &domain.TimeSlot{ID: 5, CreatorID: 10, IsAvailable: true}
}

func TestBookingServiceCreate(t *testing.T) {
	validReq := &dto.CreateBookingRequest{
		UserID:         1,
		CreatorID:      10,
		TimeSlotID:     5,
		Message:        "Looking forward to it",
		ExpectedAmount: 15000,
	}

	tests := []struct {
		name        string
		req         *dto.CreateBookingRequest
		setupMocks  func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository)
		wantErr     error
		wantClaims  int
		wantRelease int
	}{
		{
			name: "successful booking snapshots the rate",
			req:  validReq,
			setupMocks: func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository) {
				cr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Creator, error) {
					return activeCreator(), nil
				}
				sr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
					return availableSlot(), nil
				}
			},
			wantClaims: 1,
		},
		{
			name: "unknown creator",
			req:  validReq,
			setupMocks: func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository) {
				cr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Creator, error) {
					return nil, domain.ErrCreatorNotFound
				}
			},
			wantErr: domain.ErrCreatorNotFound,
		},
		{
			name: "inactive creator is not bookable",
			req:  validReq,
			setupMocks: func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository) {
				cr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Creator, error) {
					c := activeCreator()
					c.IsActive = false
					return c, nil
				}
			},
			wantErr: domain.ErrCreatorNotFound,
		},
		{
			name: "slot owned by another creator",
			req:  validReq,
			setupMocks: func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository) {
				cr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Creator, error) {
					return activeCreator(), nil
				}
				sr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
					s := availableSlot()
					s.CreatorID = 99
					return s, nil
				}
			},
			wantErr: domain.ErrSlotNotFound,
		},
		{
			name: "amount mismatch leaves the slot untouched",
			req: &dto.CreateBookingRequest{
				UserID:         1,
				CreatorID:      10,
				TimeSlotID:     5,
				ExpectedAmount: 12000,
			},
			setupMocks: func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository) {
				cr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Creator, error) {
					return activeCreator(), nil
				}
				sr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
					return availableSlot(), nil
				}
			},
			wantErr:    domain.ErrAmountMismatch,
			wantClaims: 0,
		},
		{
			name: "slot already claimed",
			req:  validReq,
			setupMocks: func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository) {
				cr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Creator, error) {
					return activeCreator(), nil
				}
				sr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
					return availableSlot(), nil
				}
				sr.ClaimFunc = func(ctx context.Context, id int64) error {
					return domain.ErrSlotUnavailable
				}
			},
			wantErr:    domain.ErrSlotUnavailable,
			wantClaims: 1,
		},
		{
			name: "insert failure releases the claimed slot",
			req:  validReq,
			setupMocks: func(br *MockBookingRepository, cr *MockCreatorRepository, sr *MockTimeSlotRepository) {
				cr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.Creator, error) {
					return activeCreator(), nil
				}
				sr.GetByIDFunc = func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
					return availableSlot(), nil
				}
				br.CreateFunc = func(ctx context.Context, booking *domain.Booking) error {
					return errors.New("connection reset")
				}
			},
			wantErr:     errors.New("connection reset"),
			wantClaims:  1,
			wantRelease: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &MockBookingRepository{}
			creatorRepo := &MockCreatorRepository{}
			slotRepo := &MockTimeSlotRepository{}
			publisher := &MockEventPublisher{}

			claims := 0
			releases := 0
			baseClaim := func(ctx context.Context, id int64) error { return nil }
			if tt.setupMocks != nil {
				tt.setupMocks(bookingRepo, creatorRepo, slotRepo)
			}
			if slotRepo.ClaimFunc != nil {
				baseClaim = slotRepo.ClaimFunc
			}
			slotRepo.ClaimFunc = func(ctx context.Context, id int64) error {
				claims++
				return baseClaim(ctx, id)
			}
			baseRelease := func(ctx context.Context, id int64) error { return nil }
			if slotRepo.ReleaseFunc != nil {
				baseRelease = slotRepo.ReleaseFunc
			}
			slotRepo.ReleaseFunc = func(ctx context.Context, id int64) error {
				releases++
				return baseRelease(ctx, id)
			}

			svc := NewBookingService(bookingRepo, creatorRepo, slotRepo, publisher)
			booking, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("Create() error = nil, want %v", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) && err.Error() != tt.wantErr.Error() {
					t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Create() unexpected error = %v", err)
				}
				if booking.TotalAmount != 15000 {
					t.Errorf("TotalAmount = %d, want 15000 (creator rate)", booking.TotalAmount)
				}
				if booking.Status != domain.BookingStatusPending {
					t.Errorf("status = %q, want pending", booking.Status)
				}
				if len(publisher.Created) != 1 {
					t.Errorf("published created events = %d, want 1", len(publisher.Created))
				}
			}

			if claims != tt.wantClaims {
				t.Errorf("claims = %d, want %d", claims, tt.wantClaims)
			}
			if releases != tt.wantRelease {
				t.Errorf("releases = %d, want %d", releases, tt.wantRelease)
			}
		})
	}
}

func TestBookingServiceCreatePublishFailureStillSucceeds(t *testing.T) {
	creatorRepo := &MockCreatorRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Creator, error) {
			return activeCreator(), nil
		},
	}
	slotRepo := &MockTimeSlotRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return availableSlot(), nil
		},
	}
	publisher := &MockEventPublisher{
		CreatedFunc: func(ctx context.Context, booking *domain.Booking) error {
			return errors.New("broker unreachable")
		},
	}

	svc := NewBookingService(&MockBookingRepository{}, creatorRepo, slotRepo, publisher)
	booking, err := svc.Create(context.Background(), &dto.CreateBookingRequest{
		UserID:         1,
		CreatorID:      10,
		TimeSlotID:     5,
		ExpectedAmount: 15000,
	})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	if booking == nil || booking.Status != domain.BookingStatusPending {
		t.Errorf("booking = %+v, want pending booking despite publish failure", booking)
	}
}

func TestBookingServiceConfirm(t *testing.T) {
	t.Run("confirms a payment_pending booking", func(t *testing.T) {
		updated := false
		bookingRepo := &MockBookingRepository{
			GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return &domain.Booking{ID: id, TimeSlotID: 5, Status: domain.BookingStatusPaymentPending}, nil
			},
			UpdateFunc: func(ctx context.Context, booking *domain.Booking) error {
				updated = true
				return nil
			},
		}
		publisher := &MockEventPublisher{}

		svc := NewBookingService(bookingRepo, &MockCreatorRepository{}, &MockTimeSlotRepository{}, publisher)
		booking, err := svc.Confirm(context.Background(), 1)
		if err != nil {
			t.Fatalf("Confirm() unexpected error = %v", err)
		}
		if booking.Status != domain.BookingStatusConfirmed {
			t.Errorf("status = %q, want confirmed", booking.Status)
		}
		if !updated {
			t.Error("booking was not persisted")
		}
		if len(publisher.Confirmed) != 1 {
			t.Errorf("published confirmed events = %d, want 1", len(publisher.Confirmed))
		}
	})

	t.Run("confirming twice is idempotent", func(t *testing.T) {
		updates := 0
		bookingRepo := &MockBookingRepository{
			GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return &domain.Booking{ID: id, Status: domain.BookingStatusConfirmed}, nil
			},
			UpdateFunc: func(ctx context.Context, booking *domain.Booking) error {
				updates++
				return nil
			},
		}
		publisher := &MockEventPublisher{}

		svc := NewBookingService(bookingRepo, &MockCreatorRepository{}, &MockTimeSlotRepository{}, publisher)
		booking, err := svc.Confirm(context.Background(), 1)
		if err != nil {
			t.Fatalf("Confirm() unexpected error = %v", err)
		}
		if booking.Status != domain.BookingStatusConfirmed {
			t.Errorf("status = %q, want confirmed", booking.Status)
		}
		if updates != 0 {
			t.Errorf("updates = %d, want 0 for already confirmed booking", updates)
		}
		if len(publisher.Confirmed) != 0 {
			t.Errorf("published confirmed events = %d, want 0", len(publisher.Confirmed))
		}
	})

	t.Run("cancelled booking cannot confirm", func(t *testing.T) {
		bookingRepo := &MockBookingRepository{
			GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return &domain.Booking{ID: id, Status: domain.BookingStatusCancelled}, nil
			},
		}

		svc := NewBookingService(bookingRepo, &MockCreatorRepository{}, &MockTimeSlotRepository{}, &MockEventPublisher{})
		if _, err := svc.Confirm(context.Background(), 1); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("Confirm() error = %v, want %v", err, domain.ErrInvalidTransition)
		}
	})
}

func TestBookingServiceCancelReleasesSlot(t *testing.T) {
	var releasedSlot int64
	bookingRepo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return &domain.Booking{ID: id, TimeSlotID: 5, Status: domain.BookingStatusPaymentPending}, nil
		},
	}
	slotRepo := &MockTimeSlotRepository{
		ReleaseFunc: func(ctx context.Context, id int64) error {
			releasedSlot = id
			return nil
		},
	}
	publisher := &MockEventPublisher{}

	svc := NewBookingService(bookingRepo, &MockCreatorRepository{}, slotRepo, publisher)
	booking, err := svc.Cancel(context.Background(), 1)
	if err != nil {
		t.Fatalf("Cancel() unexpected error = %v", err)
	}
	if booking.Status != domain.BookingStatusCancelled {
		t.Errorf("status = %q, want cancelled", booking.Status)
	}
	if releasedSlot != 5 {
		t.Errorf("released slot = %d, want 5", releasedSlot)
	}
	if len(publisher.Cancelled) != 1 {
		t.Errorf("published cancelled events = %d, want 1", len(publisher.Cancelled))
	}
}

func TestBookingServiceCancelConfirmedFails(t *testing.T) {
	releases := 0
	bookingRepo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return &domain.Booking{ID: id, TimeSlotID: 5, Status: domain.BookingStatusConfirmed}, nil
		},
	}
	slotRepo := &MockTimeSlotRepository{
		ReleaseFunc: func(ctx context.Context, id int64) error {
			releases++
			return nil
		},
	}

	svc := NewBookingService(bookingRepo, &MockCreatorRepository{}, slotRepo, &MockEventPublisher{})
	if _, err := svc.Cancel(context.Background(), 1); !errors.Is(err, domain.ErrAlreadyConfirmed) {
		t.Errorf("Cancel() error = %v, want %v", err, domain.ErrAlreadyConfirmed)
	}
	if releases != 0 {
		t.Errorf("releases = %d, want 0 when cancel is rejected", releases)
	}
}

func TestBookingServiceMarkPaymentPending(t *testing.T) {
	bookingRepo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return &domain.Booking{ID: id, Status: domain.BookingStatusPending}, nil
		},
	}

	svc := NewBookingService(bookingRepo, &MockCreatorRepository{}, &MockTimeSlotRepository{}, &MockEventPublisher{})
	booking, err := svc.MarkPaymentPending(context.Background(), 1, "pi_123")
	if err != nil {
		t.Fatalf("MarkPaymentPending() unexpected error = %v", err)
	}
	if booking.Status != domain.BookingStatusPaymentPending {
		t.Errorf("status = %q, want payment_pending", booking.Status)
	}
	if booking.PaymentReference != "pi_123" {
		t.Errorf("payment reference = %q, want pi_123", booking.PaymentReference)
	}
}
