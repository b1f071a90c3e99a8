package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusPaymentPending BookingStatus = "payment_pending"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusCompleted      BookingStatus = "completed"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusPaymentPending, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// Booking represents a user's reservation of one time slot with an
// associated payment lifecycle. TotalAmount is snapshotted from the
// creator's rate at creation time and never recalculated.
type Booking struct {
	ID               int64         `json:"id"`
	UserID           int64         `json:"userId"`
	CreatorID        int64         `json:"creatorId"`
	TimeSlotID       int64         `json:"timeSlotId"`
	Message          string        `json:"message,omitempty"`
	TotalAmount      int64         `json:"totalAmount"` // minor currency units (cents)
	Status           BookingStatus `json:"status"`
	PaymentReference string        `json:"paymentReference,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// CanMarkPaymentPending reports whether a payment attempt may be attached.
func (b *Booking) CanMarkPaymentPending() bool {
	return b.Status == BookingStatusPending
}

// CanConfirm reports whether the booking may transition to confirmed.
// Both pending and payment_pending are valid sources: wallet payments
// confirm out-of-band without an intermediate payment reference.
func (b *Booking) CanConfirm() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusPaymentPending
}

// CanCancel reports whether the booking may transition to cancelled.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusPaymentPending
}

// CanComplete reports whether the booking may transition to completed.
func (b *Booking) CanComplete() bool {
	return b.Status == BookingStatusConfirmed
}

// IsConfirmed checks if the booking is in confirmed status
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if the booking is in cancelled status
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsTerminal reports whether no further transition is possible.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}

// MarkPaymentPending attaches a provider reference and moves the booking
// into payment_pending.
func (b *Booking) MarkPaymentPending(paymentReference string) error {
	if !b.CanMarkPaymentPending() {
		return ErrInvalidTransition
	}
	b.Status = BookingStatusPaymentPending
	b.PaymentReference = paymentReference
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// Confirm marks the booking as confirmed. Confirming an already-confirmed
// booking is a no-op.
func (b *Booking) Confirm() error {
	if b.IsConfirmed() {
		return nil
	}
	if !b.CanConfirm() {
		return ErrInvalidTransition
	}
	b.Status = BookingStatusConfirmed
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// Cancel marks the booking as cancelled.
func (b *Booking) Cancel() error {
	if !b.CanCancel() {
		if b.IsConfirmed() {
			return ErrAlreadyConfirmed
		}
		return ErrInvalidTransition
	}
	b.Status = BookingStatusCancelled
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// Complete marks a confirmed booking as completed once the session time
// has passed. Driven by an out-of-core process, not the payment flow.
func (b *Booking) Complete() error {
	if !b.CanComplete() {
		return ErrInvalidTransition
	}
	b.Status = BookingStatusCompleted
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// BelongsToUser checks if the booking belongs to the specified user
func (b *Booking) BelongsToUser(userID int64) bool {
	return b.UserID == userID
}
