package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

var fast = Policy{Attempts: 3, Delay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func TestRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fast, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fast, func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errors.New("503")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("404")
	calls := 0
	err := Retry(context.Background(), fast, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Errorf("Retry() error = %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryReturnsLastError(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fast, func() error {
		calls++
		return &RetryableError{Err: errors.New("timeout")}
	})
	if err == nil || err.Error() != "timeout" {
		t.Errorf("Retry() error = %v, want timeout", err)
	}
	if calls != fast.Attempts {
		t.Errorf("calls = %d, want %d", calls, fast.Attempts)
	}
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), Policy{}, func() error {
		calls++
		return &RetryableError{Err: errors.New("x")}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, Policy{Attempts: 5, Delay: time.Hour}, func() error {
		return &RetryableError{Err: errors.New("x")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
}
