// Package watcher provides event monitoring implementations.
package watcher

import (
	"github.com/hedeqiang/beacon/event"
)

// Watcher monitors a network for contract events.
type Watcher interface {
	// Watch begins monitoring for events. Blocks until the watcher completes,
	// Stop is called, or an unrecoverable error occurs. Returns nil on
	// graceful stop.
	Watch() error

	// Stop gracefully shuts down the watcher.
	Stop() error

	// OnEvent registers a callback invoked for each received event.
	OnEvent(fn func(event.Event))

	// OnError registers a callback invoked when a recoverable error occurs.
	OnError(fn func(error))
}
