package subscriber

import (
	"github.com/hedeqiang/beacon/event"
)

// Channel delivers events through a Go channel.
type Channel struct {
	ch   chan event.Event
	done chan struct{}
}

// NewChannel creates a channel-based subscriber with the given buffer size.
func NewChannel(bufSize int) *Channel {
	if bufSize <= 0 {
		bufSize = 128
	}
	return &Channel{
		ch:   make(chan event.Event, bufSize),
		done: make(chan struct{}),
	}
}

// Events returns the channel to read events from.
func (c *Channel) Events() <-chan event.Event {
	return c.ch
}

// Send delivers an event to the channel. Drops the event if the channel is full.
func (c *Channel) Send(ev event.Event) {
	select {
	case c.ch <- ev:
	case <-c.done:
	default:
		// drop: subscriber is not keeping up
	}
}

// Close shuts down the subscriber.
func (c *Channel) Close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}
