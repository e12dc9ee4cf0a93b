package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hedeqiang/beacon/checkpoint"
	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	"github.com/hedeqiang/beacon/network"
	"github.com/hedeqiang/beacon/retry"
)

// PollerConfig configures a Poller.
type PollerConfig struct {
	// Interval between polling cycles.
	Interval time.Duration

	// PageLimit is the maximum number of events to request per page.
	PageLimit int

	// StartLedger is the first ledger to scan when no checkpoint exists.
	// Zero means start at the current tip.
	StartLedger uint32

	// Retry, when set, repeats page requests that fail with a connectivity
	// error before the tick is given up.
	Retry retry.Strategy

	// Breaker, when set, gates polling: ticks are skipped while it is open.
	Breaker *retry.CircuitBreaker
}

// DefaultPollerConfig returns sensible defaults for polling.
func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		Interval:  5 * time.Second,
		PageLimit: 100,
	}
}

// Poller monitors a network by periodically draining all events between the
// last processed ledger and the current tip.
//
// Each tick queries the tip and, if it has not fallen behind the scan
// position, pages through the range [next, tip]. The scan position advances
// to tip+1 only after the whole range drained cleanly; a failed tick leaves
// it untouched so the next tick retries the same range.
type Poller struct {
	network network.Network
	query   filter.Query
	store   checkpoint.Store
	config  PollerConfig

	mu      sync.Mutex
	onEvent func(event.Event)
	onError func(error)
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewPoller creates a polling watcher for the given network.
func NewPoller(n network.Network, query filter.Query, store checkpoint.Store, cfg PollerConfig) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 100
	}
	return &Poller{
		network: n,
		query:   query,
		store:   store,
		config:  cfg,
		stopped: make(chan struct{}),
	}
}

// OnEvent registers a callback for received events.
func (p *Poller) OnEvent(fn func(event.Event)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEvent = fn
}

// OnError registers a callback for recoverable errors.
func (p *Poller) OnError(fn func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onError = fn
}

// Watch begins polling. Blocks until Stop is called or an unrecoverable
// error occurs. Classified RPC failures (connectivity, remote fault, payload
// shape, request shape) are reported through OnError and polling continues
// on the next tick; anything else ends the watch.
func (p *Poller) Watch() error {
	ctx, cancel := context.WithCancel(context.Background())
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	defer close(p.stopped)
	defer cancel()

	nextLedger, err := p.startLedger(ctx)
	if err != nil {
		return fmt.Errorf("poller: determine start ledger: %w", err)
	}

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	// Run the first poll immediately instead of waiting for the first tick
	if err := p.poll(ctx, &nextLedger); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if !recoverable(err) {
			return err
		}
		p.emitError(err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.poll(ctx, &nextLedger); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				if !recoverable(err) {
					return err
				}
				p.emitError(err)
			}
		}
	}
}

// Stop terminates the polling loop. Any in-flight page request is cancelled;
// the scan resumes from the last fully drained range on the next Watch.
func (p *Poller) Stop() error {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-p.stopped
	}
	return nil
}

// startLedger determines where scanning begins: after the saved checkpoint
// when one exists, at the configured start ledger otherwise, or at the
// current tip when neither is set.
func (p *Poller) startLedger(ctx context.Context) (uint32, error) {
	last, err := p.store.Load(p.network.ID())
	if err != nil {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}
	if last > 0 {
		return last + 1, nil
	}

	if p.config.StartLedger > 0 {
		return p.config.StartLedger, nil
	}

	tip, err := p.network.LatestLedger(ctx)
	if err != nil {
		return 0, err
	}
	return tip, nil
}

func (p *Poller) poll(ctx context.Context, nextLedger *uint32) error {
	if p.config.Breaker != nil && !p.config.Breaker.Allow() {
		return nil // circuit open: skip this tick
	}

	err := p.pollOnce(ctx, nextLedger)
	if p.config.Breaker != nil {
		if err != nil {
			p.config.Breaker.RecordFailure()
		} else {
			p.config.Breaker.RecordSuccess()
		}
	}
	return err
}

func (p *Poller) pollOnce(ctx context.Context, nextLedger *uint32) error {
	tip, err := p.network.LatestLedger(ctx)
	if err != nil {
		return err
	}

	if tip < *nextLedger {
		return nil // nothing new closed yet
	}

	from, to := *nextLedger, tip
	err = drainRange(ctx, p.network, p.query, from, to, p.config.PageLimit, p.config.Retry, p.emitEvent)
	if err != nil {
		return err
	}

	// Advance only after the whole range drained cleanly, never mid-page.
	*nextLedger = to + 1
	if err := p.store.Save(p.network.ID(), to); err != nil {
		return fmt.Errorf("poller: save checkpoint: %w", err)
	}
	return nil
}

func (p *Poller) emitEvent(ev event.Event) {
	p.mu.Lock()
	fn := p.onEvent
	p.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

func (p *Poller) emitError(err error) {
	p.mu.Lock()
	fn := p.onError
	p.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// recoverable reports whether the error belongs to one of the classified
// RPC failure classes that the poll loop is expected to ride out. Unknown
// failures are not masked; they end the watch.
func recoverable(err error) bool {
	return errors.Is(err, network.ErrConnectivity) ||
		errors.Is(err, network.ErrRemoteFault) ||
		errors.Is(err, network.ErrPayloadShape) ||
		errors.Is(err, network.ErrRequestShape)
}
