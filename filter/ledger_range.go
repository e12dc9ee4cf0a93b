package filter

import (
	"github.com/hedeqiang/beacon/event"
)

// LedgerRangeFilter matches events within a ledger sequence range (inclusive).
type LedgerRangeFilter struct {
	from *uint32
	to   *uint32
}

// NewLedgerRangeFilter creates a filter matching events within [from, to].
// A nil value means unbounded on that side.
func NewLedgerRangeFilter(from, to *uint32) *LedgerRangeFilter {
	return &LedgerRangeFilter{from: from, to: to}
}

// Match reports whether the event's ledger sequence falls within the range.
func (f *LedgerRangeFilter) Match(ev event.Event) bool {
	if f.from != nil && ev.Ledger < *f.from {
		return false
	}
	if f.to != nil && ev.Ledger > *f.to {
		return false
	}
	return true
}
