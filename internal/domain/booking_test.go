package domain

import (
	"errors"
	"testing"
)

func TestBookingStatusIsValid(t *testing.T) {
	valid := []BookingStatus{
		BookingStatusPending,
		BookingStatusPaymentPending,
		BookingStatusConfirmed,
		BookingStatusCancelled,
		BookingStatusCompleted,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("IsValid() = false for %q, want true", s)
		}
	}
	if BookingStatus("expired").IsValid() {
		t.Error("IsValid() = true for unknown status, want false")
	}
}

func TestBookingMarkPaymentPending(t *testing.T) {
	tests := []struct {
		name       string
		status     BookingStatus
		wantErr    error
		wantStatus BookingStatus
	}{
		{
			name:       "from pending",
			status:     BookingStatusPending,
			wantStatus: BookingStatusPaymentPending,
		},
		{
			name:       "from payment_pending",
			status:     BookingStatusPaymentPending,
			wantErr:    ErrInvalidTransition,
			wantStatus: BookingStatusPaymentPending,
		},
		{
			name:       "from confirmed",
			status:     BookingStatusConfirmed,
			wantErr:    ErrInvalidTransition,
			wantStatus: BookingStatusConfirmed,
		},
		{
			name:       "from cancelled",
			status:     BookingStatusCancelled,
			wantErr:    ErrInvalidTransition,
			wantStatus: BookingStatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			err := b.MarkPaymentPending("pi_123")

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("MarkPaymentPending() error = %v, want %v", err, tt.wantErr)
			}
			if b.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", b.Status, tt.wantStatus)
			}
			if tt.wantErr == nil && b.PaymentReference != "pi_123" {
				t.Errorf("payment reference = %q, want pi_123", b.PaymentReference)
			}
		})
	}
}

func TestBookingConfirm(t *testing.T) {
	tests := []struct {
		name       string
		status     BookingStatus
		wantErr    error
		wantStatus BookingStatus
	}{
		{
			name:       "from pending",
			status:     BookingStatusPending,
			wantStatus: BookingStatusConfirmed,
		},
		{
			name:       "from payment_pending",
			status:     BookingStatusPaymentPending,
			wantStatus: BookingStatusConfirmed,
		},
		{
			name:       "already confirmed is a no-op",
			status:     BookingStatusConfirmed,
			wantStatus: BookingStatusConfirmed,
		},
		{
			name:       "from cancelled",
			status:     BookingStatusCancelled,
			wantErr:    ErrInvalidTransition,
			wantStatus: BookingStatusCancelled,
		},
		{
			name:       "from completed",
			status:     BookingStatusCompleted,
			wantErr:    ErrInvalidTransition,
			wantStatus: BookingStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			err := b.Confirm()

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Confirm() error = %v, want %v", err, tt.wantErr)
			}
			if b.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", b.Status, tt.wantStatus)
			}
		})
	}
}

func TestBookingCancel(t *testing.T) {
	tests := []struct {
		name       string
		status     BookingStatus
		wantErr    error
		wantStatus BookingStatus
	}{
		{
			name:       "from pending",
			status:     BookingStatusPending,
			wantStatus: BookingStatusCancelled,
		},
		{
			name:       "from payment_pending",
			status:     BookingStatusPaymentPending,
			wantStatus: BookingStatusCancelled,
		},
		{
			name:       "from confirmed",
			status:     BookingStatusConfirmed,
			wantErr:    ErrAlreadyConfirmed,
			wantStatus: BookingStatusConfirmed,
		},
		{
			name:       "from completed",
			status:     BookingStatusCompleted,
			wantErr:    ErrInvalidTransition,
			wantStatus: BookingStatusCompleted,
		},
		{
			name:       "from cancelled",
			status:     BookingStatusCancelled,
			wantErr:    ErrInvalidTransition,
			wantStatus: BookingStatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			err := b.Cancel()

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Cancel() error = %v, want %v", err, tt.wantErr)
			}
			if b.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", b.Status, tt.wantStatus)
			}
		})
	}
}

func TestBookingComplete(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}
	if err := b.Complete(); err != nil {
		t.Fatalf("Complete() unexpected error = %v", err)
	}
	if b.Status != BookingStatusCompleted {
		t.Errorf("status = %q, want %q", b.Status, BookingStatusCompleted)
	}

	for _, status := range []BookingStatus{
		BookingStatusPending,
		BookingStatusPaymentPending,
		BookingStatusCancelled,
		BookingStatusCompleted,
	} {
		b := &Booking{Status: status}
		if err := b.Complete(); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Complete() from %q error = %v, want %v", status, err, ErrInvalidTransition)
		}
	}
}

func TestBookingIsTerminal(t *testing.T) {
	terminal := map[BookingStatus]bool{
		BookingStatusPending:        false,
		BookingStatusPaymentPending: false,
		BookingStatusConfirmed:      false,
		BookingStatusCancelled:      true,
		BookingStatusCompleted:      true,
	}
	for status, want := range terminal {
		b := &Booking{Status: status}
		if got := b.IsTerminal(); got != want {
			t.Errorf("IsTerminal() for %q = %v, want %v", status, got, want)
		}
	}
}
