package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	"github.com/hedeqiang/beacon/network"
)

// Replay fetches historical events for a fixed ledger range. Unlike Poller,
// it runs once and completes — useful for backfilling data.
type Replay struct {
	network network.Network
	query   filter.Query
	from    uint32
	to      uint32
	config  PollerConfig

	mu      sync.Mutex
	onEvent func(event.Event)
	onError func(error)
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewReplay creates a replay watcher that scans ledgers [from, to].
// Only the PageLimit and Retry fields of the config are used.
func NewReplay(n network.Network, query filter.Query, from, to uint32, cfg PollerConfig) *Replay {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 100
	}
	return &Replay{
		network: n,
		query:   query,
		from:    from,
		to:      to,
		config:  cfg,
		stopped: make(chan struct{}),
	}
}

// OnEvent registers a callback for received events.
func (r *Replay) OnEvent(fn func(event.Event)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEvent = fn
}

// OnError registers a callback for errors.
func (r *Replay) OnError(fn func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = fn
}

// Watch replays historical events. Completes when the entire range has been
// drained, or returns the classified error that interrupted it; rerunning
// covers the same range again.
func (r *Replay) Watch() error {
	ctx, cancel := context.WithCancel(context.Background())
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	defer close(r.stopped)
	defer cancel()

	if r.from == 0 || r.from > r.to {
		return fmt.Errorf("replay: invalid ledger range [%d, %d]", r.from, r.to)
	}

	err := drainRange(ctx, r.network, r.query, r.from, r.to, r.config.PageLimit, r.config.Retry, r.emitEvent)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		r.emitError(err)
		return err
	}

	return nil
}

// Stop cancels the replay.
func (r *Replay) Stop() error {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		<-r.stopped
	}
	return nil
}

func (r *Replay) emitEvent(ev event.Event) {
	r.mu.Lock()
	fn := r.onEvent
	r.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

func (r *Replay) emitError(err error) {
	r.mu.Lock()
	fn := r.onError
	r.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}
