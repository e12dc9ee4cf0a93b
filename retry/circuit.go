package retry

import (
	"sync"
	"time"
)

// State represents the circuit breaker state.
type State int

const (
	// Closed means the endpoint is healthy; requests flow normally.
	Closed State = iota
	// Open means too many consecutive failures; requests are rejected.
	Open
	// HalfOpen means the breaker is probing whether the endpoint has recovered.
	HalfOpen
)

// CircuitBreaker halts requests to an endpoint after consecutive failures,
// letting a probe through once the reset timeout has elapsed. The poller
// consults it per tick so a dead endpoint is not hammered on every interval.
type CircuitBreaker struct {
	mu           sync.Mutex
	state        State
	failures     int
	threshold    int
	resetTimeout time.Duration
	lastFailure  time.Time
}

// NewCircuitBreaker creates a circuit breaker that opens after threshold
// consecutive failures and probes again after resetTimeout.
func NewCircuitBreaker(threshold int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold:    threshold,
		resetTimeout: resetTimeout,
	}
}

// Allow reports whether a request is permitted. An Open breaker transitions
// to HalfOpen once the reset timeout has elapsed and permits one probe.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case Closed:
		return true
	case Open:
		if time.Since(cb.lastFailure) > cb.resetTimeout {
			cb.state = HalfOpen
			return true
		}
		return false
	case HalfOpen:
		return true
	default:
		return false
	}
}

// RecordSuccess resets the breaker to Closed.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures = 0
	cb.state = Closed
}

// RecordFailure counts a failed operation. Reaching the threshold opens
// the breaker; a failed HalfOpen probe reopens it immediately.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures++
	cb.lastFailure = time.Now()
	if cb.state == HalfOpen || cb.failures >= cb.threshold {
		cb.state = Open
	}
}

// CurrentState returns the current state of the circuit breaker.
func (cb *CircuitBreaker) CurrentState() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
