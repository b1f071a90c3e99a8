package domain

// User is an identity record. Created on first sign-in, never deleted.
// Fid is the optional external social id carried over from the client's
// identity provider.
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Fid           *int64 `json:"fid,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Bio           string `json:"bio,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

// Validate checks required fields on a new user.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrInvalidUsername
	}
	return nil
}
