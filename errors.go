package beacon

import "errors"

var (
	// ErrNetworkNotFound is returned when operating on an unregistered network.
	ErrNetworkNotFound = errors.New("beacon: network not found")

	// ErrAlreadyRunning is returned when attempting to start a watcher that is already running.
	ErrAlreadyRunning = errors.New("beacon: watcher already running")

	// ErrNotRunning is returned when attempting to stop a watcher that is not running.
	ErrNotRunning = errors.New("beacon: watcher not running")

	// ErrShutdown is returned when operating on a shut-down Beacon instance.
	ErrShutdown = errors.New("beacon: instance has been shut down")
)
