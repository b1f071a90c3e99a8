package domain

import "time"

// TimeSlot is a bookable interval owned by exactly one creator.
// Availability flips false when claimed for a booking and back to true
// when the booking is cancelled before confirmation.
type TimeSlot struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creatorId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
}

// Validate checks the end > start invariant.
func (t *TimeSlot) Validate() error {
	if t.CreatorID <= 0 {
		return ErrInvalidCreatorID
	}
	if !t.EndTime.After(t.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
