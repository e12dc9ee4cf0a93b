package subscriber

import (
	"github.com/hedeqiang/beacon/event"
)

// CallbackFunc is the function signature for event callbacks.
type CallbackFunc func(event.Event)

// Callback delivers events by invoking a callback function.
type Callback struct {
	fn   CallbackFunc
	done chan struct{}
}

// NewCallback creates a callback-based subscriber.
func NewCallback(fn CallbackFunc) *Callback {
	return &Callback{
		fn:   fn,
		done: make(chan struct{}),
	}
}

// Send invokes the callback with the event. No-op if closed.
func (c *Callback) Send(ev event.Event) {
	select {
	case <-c.done:
		return
	default:
	}
	c.fn(ev)
}

// Close stops the subscriber.
func (c *Callback) Close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}
