package service

import (
	"context"
	"errors"
	"testing"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/internal/dto"
)

func TestCreatorServiceCreate(t *testing.T) {
	validReq := &dto.CreateCreatorRequest{
		UserID:   1,
		Title:    "Founder office hours",
		Rate:     15000,
		Duration: 30,
		Category: "startups",
	}

	tests := []struct {
		name       string
		req        *dto.CreateCreatorRequest
		setupMocks func(ur *MockUserRepository, cr *MockCreatorRepository)
		wantErr    error
	}{
		{
			name: "new profile is created active",
			req:  validReq,
			setupMocks: func(ur *MockUserRepository, cr *MockCreatorRepository) {
				ur.GetByIDFunc = func(ctx context.Context, id int64) (*domain.User, error) {
					return &domain.User{ID: id, Username: "alice"}, nil
				}
			},
		},
		{
			name:    "unknown user",
			req:     validReq,
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "second profile for the same user",
			req:  validReq,
			setupMocks: func(ur *MockUserRepository, cr *MockCreatorRepository) {
				ur.GetByIDFunc = func(ctx context.Context, id int64) (*domain.User, error) {
					return &domain.User{ID: id, Username: "alice"}, nil
				}
				cr.GetByUserIDFunc = func(ctx context.Context, userID int64) (*domain.Creator, error) {
					return &domain.Creator{ID: 9, UserID: userID}, nil
				}
			},
			wantErr: domain.ErrCreatorExists,
		},
		{
			name: "lookup failure propagates",
			req:  validReq,
			setupMocks: func(ur *MockUserRepository, cr *MockCreatorRepository) {
				ur.GetByIDFunc = func(ctx context.Context, id int64) (*domain.User, error) {
					return &domain.User{ID: id, Username: "alice"}, nil
				}
				cr.GetByUserIDFunc = func(ctx context.Context, userID int64) (*domain.Creator, error) {
					return nil, errors.New("connection reset")
				}
			},
			wantErr: errors.New("connection reset"),
		},
		{
			name: "zero rate is rejected",
			req: &dto.CreateCreatorRequest{
				UserID:   1,
				Title:    "Founder office hours",
				Rate:     0,
				Duration: 30,
			},
			setupMocks: func(ur *MockUserRepository, cr *MockCreatorRepository) {
				ur.GetByIDFunc = func(ctx context.Context, id int64) (*domain.User, error) {
					return &domain.User{ID: id, Username: "alice"}, nil
				}
			},
			wantErr: domain.ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &MockUserRepository{}
			creatorRepo := &MockCreatorRepository{}
			if tt.setupMocks != nil {
				tt.setupMocks(userRepo, creatorRepo)
			}

			svc := NewCreatorService(creatorRepo, userRepo)
			creator, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("Create() error = nil, want %v", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) && err.Error() != tt.wantErr.Error() {
					t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Create() unexpected error = %v", err)
			}
			if !creator.IsActive {
				t.Error("new creator not active")
			}
			if creator.Rate != 15000 {
				t.Errorf("rate = %d, want 15000", creator.Rate)
			}
		})
	}
}

func TestCreatorServiceGetByIDJoinsUser(t *testing.T) {
	creatorRepo := &MockCreatorRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Creator, error) {
			return &domain.Creator{ID: id, UserID: 3, Title: "Office hours", Rate: 15000, Duration: 30, IsActive: true}, nil
		},
	}
	userRepo := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Username: "alice"}, nil
		},
	}

	svc := NewCreatorService(creatorRepo, userRepo)
	got, err := svc.GetByID(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetByID() unexpected error = %v", err)
	}
	if got.User == nil || got.User.Username != "alice" {
		t.Errorf("joined user = %+v, want alice", got.User)
	}
}

func TestCreatorServiceListActiveBoundsLimit(t *testing.T) {
	var gotLimit int
	creatorRepo := &MockCreatorRepository{
		ListActiveFunc: func(ctx context.Context, category string, limit, offset int) ([]*domain.CreatorWithUser, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	svc := NewCreatorService(creatorRepo, &MockUserRepository{})
	if _, err := svc.ListActive(context.Background(), "", 1000, 0); err != nil {
		t.Fatalf("ListActive() unexpected error = %v", err)
	}
	if gotLimit != 100 {
		t.Errorf("limit passed to repo = %d, want clamp to 100", gotLimit)
	}

	if _, err := svc.ListActive(context.Background(), "", 0, 0); err != nil {
		t.Fatalf("ListActive() unexpected error = %v", err)
	}
	if gotLimit != 50 {
		t.Errorf("limit passed to repo = %d, want default 50", gotLimit)
	}
}

func TestUserServiceGetOrCreate(t *testing.T) {
	fid := int64(777)

	t.Run("existing fid returns the same user", func(t *testing.T) {
		creates := 0
		userRepo := &MockUserRepository{
			GetByFidFunc: func(ctx context.Context, f int64) (*domain.User, error) {
				return &domain.User{ID: 4, Username: "alice", Fid: &f}, nil
			},
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				creates++
				return nil
			},
		}

		svc := NewUserService(userRepo)
		user, err := svc.GetOrCreate(context.Background(), &dto.CreateUserRequest{Username: "alice", Fid: &fid})
		if err != nil {
			t.Fatalf("GetOrCreate() unexpected error = %v", err)
		}
		if user.ID != 4 || creates != 0 {
			t.Errorf("user = %+v creates = %d, want existing user and no create", user, creates)
		}
	})

	t.Run("unknown identity creates a user", func(t *testing.T) {
		userRepo := &MockUserRepository{
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				user.ID = 11
				return nil
			},
		}

		svc := NewUserService(userRepo)
		user, err := svc.GetOrCreate(context.Background(), &dto.CreateUserRequest{Username: "bob", Fid: &fid})
		if err != nil {
			t.Fatalf("GetOrCreate() unexpected error = %v", err)
		}
		if user.ID != 11 || user.Username != "bob" {
			t.Errorf("user = %+v, want newly created bob", user)
		}
	})

	t.Run("empty username is rejected", func(t *testing.T) {
		svc := NewUserService(&MockUserRepository{})
		if _, err := svc.GetOrCreate(context.Background(), &dto.CreateUserRequest{}); !errors.Is(err, domain.ErrInvalidUsername) {
			t.Errorf("GetOrCreate() error = %v, want %v", err, domain.ErrInvalidUsername)
		}
	})
}

func TestUserServiceUpdateWallet(t *testing.T) {
	var gotAddr string
	userRepo := &MockUserRepository{
		UpdateWalletFunc: func(ctx context.Context, id int64, walletAddress string) error {
			gotAddr = walletAddress
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Username: "alice", WalletAddress: gotAddr}, nil
		},
	}

	svc := NewUserService(userRepo)
	user, err := svc.UpdateWallet(context.Background(), 1, "0xabc")
	if err != nil {
		t.Fatalf("UpdateWallet() unexpected error = %v", err)
	}
	if user.WalletAddress != "0xabc" {
		t.Errorf("wallet = %q, want 0xabc", user.WalletAddress)
	}
}
