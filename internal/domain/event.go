package domain

import (
	"fmt"
	"time"
)

// BookingEventType identifies the kind of booking lifecycle event
type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "booking.created"
	BookingEventConfirmed BookingEventType = "booking.confirmed"
	BookingEventCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is the payload published on booking lifecycle transitions.
type BookingEvent struct {
	EventID          string           `json:"event_id"`
	EventType        BookingEventType `json:"event_type"`
	BookingID        int64            `json:"booking_id"`
	UserID           int64            `json:"user_id"`
	CreatorID        int64            `json:"creator_id"`
	TimeSlotID       int64            `json:"time_slot_id"`
	TotalAmount      int64            `json:"total_amount"`
	Status           BookingStatus    `json:"status"`
	PaymentReference string           `json:"payment_reference,omitempty"`
	OccurredAt       time.Time        `json:"occurred_at"`
}

// NewBookingEvent builds an event from the booking's current state.
func NewBookingEvent(eventType BookingEventType, booking *Booking, eventID string) *BookingEvent {
	return &BookingEvent{
		EventID:          eventID,
		EventType:        eventType,
		BookingID:        booking.ID,
		UserID:           booking.UserID,
		CreatorID:        booking.CreatorID,
		TimeSlotID:       booking.TimeSlotID,
		TotalAmount:      booking.TotalAmount,
		Status:           booking.Status,
		PaymentReference: booking.PaymentReference,
		OccurredAt:       time.Now().UTC(),
	}
}

// Key returns the partitioning key for the event. Keyed by booking id so
// events for one booking stay ordered.
func (e *BookingEvent) Key() string {
	return fmt.Sprintf("booking-%d", e.BookingID)
}
