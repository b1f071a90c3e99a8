package dto

import "github.com/refanfc/FounderBooking/internal/domain"

// CreateUserRequest is the get-or-create payload sent on first sign-in
type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Fid          *int64 `json:"fid,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

// UpdateWalletRequest sets a user's wallet address
type UpdateWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Fid           *int64 `json:"fid,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Bio           string `json:"bio,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

// UserFromDomain converts a domain User to UserResponse
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Fid:           u.Fid,
		ProfileImage:  u.ProfileImage,
		DisplayName:   u.DisplayName,
		Bio:           u.Bio,
		WalletAddress: u.WalletAddress,
	}
}
