package dto

import (
	"time"

	"github.com/refanfc/FounderBooking/internal/domain"
)

// CreateCreatorRequest creates a bookable profile for a user
type CreateCreatorRequest struct {
	UserID   int64  `json:"userId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Rate     int64  `json:"rate" binding:"required,min=1"`
	Duration int    `json:"duration" binding:"required,min=1"`
	Category string `json:"category,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// CreatorResponse represents a creator in API responses
type CreatorResponse struct {
	ID       int64         `json:"id"`
	UserID   int64         `json:"userId"`
	Title    string        `json:"title"`
	Rate     int64         `json:"rate"`
	Duration int           `json:"duration"`
	Category string        `json:"category,omitempty"`
	IsActive bool          `json:"isActive"`
	Timezone string        `json:"timezone,omitempty"`
	User     *UserResponse `json:"user,omitempty"`
}

// CreateTimeSlotRequest adds availability to a creator's calendar
type CreateTimeSlotRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// TimeSlotResponse represents a time slot in API responses
type TimeSlotResponse struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creatorId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
}

// CreatorFromDomain converts a domain Creator to CreatorResponse
func CreatorFromDomain(c *domain.Creator) *CreatorResponse {
	return &CreatorResponse{
		ID:       c.ID,
		UserID:   c.UserID,
		Title:    c.Title,
		Rate:     c.Rate,
		Duration: c.Duration,
		Category: c.Category,
		IsActive: c.IsActive,
		Timezone: c.Timezone,
	}
}

// CreatorWithUserFromDomain converts a joined creator row to CreatorResponse
func CreatorWithUserFromDomain(cw *domain.CreatorWithUser) *CreatorResponse {
	resp := CreatorFromDomain(&cw.Creator)
	if cw.User != nil {
		resp.User = UserFromDomain(cw.User)
	}
	return resp
}

// TimeSlotFromDomain converts a domain TimeSlot to TimeSlotResponse
func TimeSlotFromDomain(t *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:          t.ID,
		CreatorID:   t.CreatorID,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		IsAvailable: t.IsAvailable,
	}
}

// TimeSlotsFromDomain converts a slice of domain TimeSlots
func TimeSlotsFromDomain(slots []*domain.TimeSlot) []*TimeSlotResponse {
	out := make([]*TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlotFromDomain(s))
	}
	return out
}
