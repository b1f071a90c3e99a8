package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(maxRetries int) *Config {
	return &Config{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func TestRetrierSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return nil
	})

	if result.Err != nil {
		t.Fatalf("Do() error = %v, want nil", result.Err)
	}
	if calls != 1 || result.Attempts != 1 {
		t.Errorf("calls = %d attempts = %d, want 1 and 1", calls, result.Attempts)
	}
}

func TestRetrierRecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	result := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if result.Err != nil {
		t.Fatalf("Do() error = %v, want nil", result.Err)
	}
	if result.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", result.Attempts)
	}
}

func TestRetrierExhaustsBudget(t *testing.T) {
	transient := errors.New("transient")
	calls := 0
	result := Do(context.Background(), fastConfig(2), func(ctx context.Context) error {
		calls++
		return transient
	})

	if !errors.Is(result.Err, ErrMaxRetriesExceeded) {
		t.Fatalf("Do() error = %v, want %v", result.Err, ErrMaxRetriesExceeded)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3 (initial plus two retries)", calls)
	}
	if !errors.Is(result.LastError, transient) {
		t.Errorf("LastError = %v, want the operation error", result.LastError)
	}
}

func TestRetrierPermanentErrorShortCircuits(t *testing.T) {
	fatal := errors.New("bad payload")
	calls := 0
	result := Do(context.Background(), fastConfig(5), func(ctx context.Context) error {
		calls++
		return Permanent(fatal)
	})

	if !errors.Is(result.Err, fatal) {
		t.Fatalf("Do() error = %v, want %v", result.Err, fatal)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 for a permanent error", calls)
	}
}

func TestRetrierHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	result := Do(ctx, &Config{MaxRetries: 10, InitialInterval: 50 * time.Millisecond, MaxInterval: time.Second, Multiplier: 2.0}, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})

	if !errors.Is(result.Err, ErrContextCanceled) {
		t.Fatalf("Do() error = %v, want %v", result.Err, ErrContextCanceled)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 after cancellation", calls)
	}
}

func TestPermanentNil(t *testing.T) {
	if Permanent(nil) != nil {
		t.Error("Permanent(nil) != nil")
	}
}

func TestIntervalCapped(t *testing.T) {
	r := New(&Config{
		MaxRetries:      10,
		InitialInterval: time.Second,
		MaxInterval:     4 * time.Second,
		Multiplier:      2.0,
	})

	if got := r.interval(8); got > 4*time.Second {
		t.Errorf("interval(8) = %v, want at most 4s", got)
	}
}
