package network

import (
	"github.com/hedeqiang/beacon/filter"
)

// PageStart selects how the next page of a scan is addressed. The RPC accepts
// either a start ledger or a continuation cursor, never both, so the two forms
// are a closed union rather than a pair of optional fields.
type PageStart interface {
	isPageStart()
}

// ByLedger addresses the first page of a range scan by ledger sequence.
type ByLedger uint32

func (ByLedger) isPageStart() {}

// ByCursor addresses a follow-up page by the cursor the previous page returned.
type ByCursor string

func (ByCursor) isPageStart() {}

// PageRequest describes one bounded getEvents call.
type PageRequest struct {
	// Start addresses the page: ByLedger for the first page of a range,
	// ByCursor for every page after it.
	Start PageStart

	// Query restricts which events the endpoint returns.
	Query filter.Query

	// Limit bounds the page size. Implementations apply their default when zero.
	Limit int
}
