package middleware

import (
	"github.com/inconshreveable/log15"

	"github.com/hedeqiang/beacon/event"
)

// Logger logs each event that passes through the pipeline.
type Logger struct {
	logger log15.Logger
}

// NewLogger creates a logging middleware using the provided logger.
// If logger is nil, the root log15 logger is used.
func NewLogger(l log15.Logger) *Logger {
	if l == nil {
		l = log15.Root()
	}
	return &Logger{logger: l}
}

// Wrap decorates the handler with event logging.
func (l *Logger) Wrap(next Handler) Handler {
	return func(ev event.Event) *event.Event {
		l.logger.Info("event",
			"network", ev.Network,
			"id", ev.ID,
			"ledger", ev.Ledger,
			"contract", ev.ContractID,
			"tx", ev.TxHash,
		)
		return next(ev)
	}
}
