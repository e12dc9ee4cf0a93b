// Package beacon provides a Soroban contract event monitoring SDK.
//
// Beacon — a steady light on every contract event signal.
//
// Usage:
//
//	b := beacon.New(
//	    beacon.WithCheckpoint(checkpoint.NewMemory()),
//	    beacon.WithRetry(retry.Exponential(3)),
//	)
//
//	b.AddNetwork(soroban.Testnet())
//
//	q := filter.NewQuery(
//	    filter.WithContracts(contractID),
//	)
//
//	b.Watch("testnet", q, func(ev event.Event) {
//	    fmt.Println("event:", ev.ID, "ledger:", ev.Ledger)
//	})
package beacon

import (
	"context"
	"fmt"
	"sync"

	"github.com/inconshreveable/log15"

	"github.com/hedeqiang/beacon/checkpoint"
	"github.com/hedeqiang/beacon/decoder"
	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	"github.com/hedeqiang/beacon/middleware"
	"github.com/hedeqiang/beacon/network"
	"github.com/hedeqiang/beacon/watcher"
)

// Beacon is the main SDK entry point for contract event monitoring.
type Beacon struct {
	registry    *network.Registry
	store       checkpoint.Store
	decoder     decoder.Decoder
	middlewares []middleware.Middleware
	config      Config
	logger      log15.Logger

	mu       sync.Mutex
	watchers map[string]watcher.Watcher
	shutdown bool
}

// New creates a new Beacon instance with the given options.
func New(opts ...Option) *Beacon {
	b := &Beacon{
		registry: network.NewRegistry(),
		store:    checkpoint.NewMemory(),
		config:   DefaultConfig(),
		logger:   log15.New("module", "beacon"),
		watchers: make(map[string]watcher.Watcher),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddNetwork registers a network implementation. Returns an error if the
// network ID is already registered.
func (b *Beacon) AddNetwork(n network.Network) error {
	return b.registry.Register(n)
}

// Health probes the named network's endpoint, when it supports probing.
func (b *Beacon) Health(ctx context.Context, networkID string) error {
	n, ok := b.registry.Get(networkID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNetworkNotFound, networkID)
	}
	hc, ok := n.(network.HealthChecker)
	if !ok {
		return nil
	}
	return hc.Health(ctx)
}

// Watch begins monitoring the specified network for events matching the query.
// The handler is called for each event that passes through the middleware
// pipeline. This method launches a background goroutine and returns immediately.
func (b *Beacon) Watch(networkID string, query filter.Query, handler func(event.Event)) error {
	b.mu.Lock()
	if b.shutdown {
		b.mu.Unlock()
		return ErrShutdown
	}
	b.mu.Unlock()

	n, ok := b.registry.Get(networkID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNetworkNotFound, networkID)
	}

	if err := query.Validate(); err != nil {
		return err
	}

	// Build the middleware pipeline
	finalHandler := buildHandler(handler, b.middlewares)

	p := watcher.NewPoller(n, query, b.store, b.config.Poller)
	p.OnEvent(func(ev event.Event) {
		finalHandler(ev)
	})
	p.OnError(func(err error) {
		b.logger.Warn("poll failed", "network", networkID, "err", err)
	})

	b.mu.Lock()
	if _, exists := b.watchers[networkID]; exists {
		b.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyRunning, networkID)
	}
	b.watchers[networkID] = p
	b.mu.Unlock()

	go func() {
		if err := p.Watch(); err != nil {
			b.logger.Error("watch stopped", "network", networkID, "err", err)
		}
	}()

	return nil
}

// WatchAll begins monitoring all registered networks with the same query and handler.
func (b *Beacon) WatchAll(query filter.Query, handler func(event.Event)) error {
	for _, n := range b.registry.All() {
		if err := b.Watch(n.ID(), query, handler); err != nil {
			return err
		}
	}
	return nil
}

// WatchDecoded begins monitoring the specified network and delivers decoded
// events. Events that cannot be decoded are silently skipped.
func (b *Beacon) WatchDecoded(networkID string, query filter.Query, handler func(*decoder.DecodedEvent)) error {
	dec := b.decoder
	if dec == nil {
		dec = decoder.NewXDR()
	}

	return b.Watch(networkID, query, func(ev event.Event) {
		decoded, err := dec.Decode(ev)
		if err != nil {
			return // skip undecodable events
		}
		handler(decoded)
	})
}

// Backfill replays every event in ledgers [from, to] on the specified network
// through the middleware pipeline. It blocks until the range has been fully
// drained and returns the classified error that interrupted it, if any.
func (b *Beacon) Backfill(networkID string, query filter.Query, from, to uint32, handler func(event.Event)) error {
	n, ok := b.registry.Get(networkID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNetworkNotFound, networkID)
	}

	if err := query.Validate(); err != nil {
		return err
	}

	finalHandler := buildHandler(handler, b.middlewares)

	r := watcher.NewReplay(n, query, from, to, b.config.Poller)
	r.OnEvent(func(ev event.Event) {
		finalHandler(ev)
	})

	return r.Watch()
}

// Use appends middleware to the processing pipeline.
// Must be called before Watch.
func (b *Beacon) Use(mw ...middleware.Middleware) {
	b.middlewares = append(b.middlewares, mw...)
}

// Shutdown gracefully stops all watchers.
func (b *Beacon) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	b.shutdown = true
	watchers := make(map[string]watcher.Watcher, len(b.watchers))
	for k, v := range b.watchers {
		watchers[k] = v
	}
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, w := range watchers {
			w.Stop()
		}
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Networks returns the IDs of all registered networks.
func (b *Beacon) Networks() []string {
	return b.registry.IDs()
}

// Decoder returns the configured decoder, or nil if none is set.
func (b *Beacon) Decoder() decoder.Decoder {
	return b.decoder
}

// buildHandler constructs the middleware pipeline with the user handler at the end.
func buildHandler(handler func(event.Event), mws []middleware.Middleware) middleware.Handler {
	terminal := func(ev event.Event) *event.Event {
		handler(ev)
		return &ev
	}
	return middleware.Chain(terminal, mws...)
}
