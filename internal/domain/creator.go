package domain

// Creator is a user's bookable offering. One creator profile per user,
// enforced by lookup at creation time. Never hard-deleted; deactivation
// flips IsActive.
type Creator struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Title    string `json:"title"`
	Rate     int64  `json:"rate"`     // minor currency units (cents)
	Duration int    `json:"duration"` // minutes
	Category string `json:"category"`
	IsActive bool   `json:"isActive"`
	Timezone string `json:"timezone"`
}

// Validate checks required fields on a new creator profile.
func (c *Creator) Validate() error {
	if c.UserID <= 0 {
		return ErrInvalidUserID
	}
	if c.Title == "" {
		return ErrInvalidTitle
	}
	if c.Rate <= 0 {
		return ErrInvalidRate
	}
	if c.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// CreatorWithUser is a creator joined with its owning user, the shape the
// browse endpoints return.
type CreatorWithUser struct {
	Creator
	User *User `json:"user"`
}
