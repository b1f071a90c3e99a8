package domain

import "errors"

// Domain errors
var (
	// Not-found errors
	ErrUserNotFound    = errors.New("user not found")
	ErrCreatorNotFound = errors.New("creator not found")
	ErrSlotNotFound    = errors.New("time slot not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Slot reservation errors
	ErrSlotUnavailable = errors.New("time slot is not available")

	// Booking lifecycle errors
	ErrAmountMismatch    = errors.New("expected amount does not match creator rate")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAlreadyConfirmed  = errors.New("booking already confirmed")

	// Conflict errors
	ErrCreatorExists = errors.New("creator profile already exists for this user")
	ErrUsernameTaken = errors.New("username already taken")

	// Validation errors
	ErrInvalidUsername  = errors.New("username is required")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidCreatorID = errors.New("invalid creator id")
	ErrInvalidTitle     = errors.New("title is required")
	ErrInvalidRate      = errors.New("rate must be positive")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidAmount    = errors.New("amount must be positive")

	// Payment errors
	ErrPaymentProvider = errors.New("payment provider error")
)
