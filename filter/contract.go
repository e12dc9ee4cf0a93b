package filter

import (
	"github.com/hedeqiang/beacon/event"
)

// ContractFilter matches events emitted by any of the specified contracts.
type ContractFilter struct {
	contracts map[string]struct{}
}

// NewContractFilter creates a filter that matches the given strkey contract IDs.
func NewContractFilter(ids ...string) *ContractFilter {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return &ContractFilter{contracts: m}
}

// Match reports whether the event's contract ID is in the filter set.
func (f *ContractFilter) Match(ev event.Event) bool {
	_, ok := f.contracts[ev.ContractID]
	return ok
}
