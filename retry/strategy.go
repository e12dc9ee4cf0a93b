// Package retry provides retry strategies and a circuit breaker for resilient
// RPC interactions.
package retry

import (
	"context"
	"time"
)

// Strategy defines a retry policy.
type Strategy interface {
	// Next returns the delay before the next retry attempt.
	// Returns false if no more retries should be attempted.
	Next(attempt int) (delay time.Duration, ok bool)
}

// Do executes fn, retrying according to the given strategy on non-nil errors.
// It respects context cancellation.
func Do(ctx context.Context, s Strategy, fn func(ctx context.Context) error) error {
	var attempt int
	for {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		attempt++
		delay, ok := s.Next(attempt)
		if !ok {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// Fixed is a Strategy that waits the same delay between every attempt,
// up to MaxAttempts retries.
type Fixed struct {
	MaxAttempts int
	Delay       time.Duration
}

// Constant creates a fixed-delay strategy.
func Constant(maxAttempts int, delay time.Duration) *Fixed {
	return &Fixed{MaxAttempts: maxAttempts, Delay: delay}
}

// Next returns the fixed delay while attempts remain.
func (f *Fixed) Next(attempt int) (time.Duration, bool) {
	if attempt > f.MaxAttempts {
		return 0, false
	}
	return f.Delay, true
}

// None is a Strategy that never retries.
type None struct{}

// Next always reports that no retry should be attempted.
func (None) Next(int) (time.Duration, bool) {
	return 0, false
}
