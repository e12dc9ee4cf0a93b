package beacon

import (
	"time"

	"github.com/inconshreveable/log15"

	"github.com/hedeqiang/beacon/checkpoint"
	"github.com/hedeqiang/beacon/decoder"
	"github.com/hedeqiang/beacon/middleware"
	"github.com/hedeqiang/beacon/retry"
	"github.com/hedeqiang/beacon/watcher"
)

// Option configures a Beacon instance.
type Option func(*Beacon)

// WithCheckpoint sets the progress store for resumable scanning.
func WithCheckpoint(s checkpoint.Store) Option {
	return func(b *Beacon) {
		b.store = s
	}
}

// WithRetry sets the retry strategy for page requests that fail with a
// connectivity error.
func WithRetry(strategy retry.Strategy) Option {
	return func(b *Beacon) {
		b.config.Poller.Retry = strategy
	}
}

// WithCircuitBreaker gates polling behind the given breaker.
func WithCircuitBreaker(cb *retry.CircuitBreaker) Option {
	return func(b *Beacon) {
		b.config.Poller.Breaker = cb
	}
}

// WithMiddleware adds middleware to the event processing pipeline.
func WithMiddleware(mw ...middleware.Middleware) Option {
	return func(b *Beacon) {
		b.middlewares = append(b.middlewares, mw...)
	}
}

// WithPollerConfig overrides the default polling configuration.
func WithPollerConfig(cfg watcher.PollerConfig) Option {
	return func(b *Beacon) {
		b.config.Poller = cfg
	}
}

// WithPollInterval sets the polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(b *Beacon) {
		b.config.Poller.Interval = d
	}
}

// WithPageLimit sets the maximum number of events per page request.
func WithPageLimit(limit int) Option {
	return func(b *Beacon) {
		b.config.Poller.PageLimit = limit
	}
}

// WithStartLedger sets the first ledger to scan when no checkpoint exists.
func WithStartLedger(seq uint32) Option {
	return func(b *Beacon) {
		b.config.Poller.StartLedger = seq
	}
}

// WithLogger sets the logger used for watcher errors and the logging middleware.
func WithLogger(l log15.Logger) Option {
	return func(b *Beacon) {
		b.logger = l
	}
}

// WithDecoder sets the event decoder used by WatchDecoded.
func WithDecoder(d decoder.Decoder) Option {
	return func(b *Beacon) {
		b.decoder = d
	}
}
