package event

// Page holds one bounded page of events returned by a getEvents call,
// along with the continuation cursor for the next page.
type Page struct {
	Events []Event

	// Cursor is the continuation token for the next page request.
	// Only valid in combination with the filter that produced it.
	Cursor string

	// LatestLedger is the tip ledger sequence reported alongside the page.
	LatestLedger uint32
}

// Len returns the number of events in the page.
func (p Page) Len() int {
	return len(p.Events)
}

// IsEmpty reports whether the page contains no events.
func (p Page) IsEmpty() bool {
	return len(p.Events) == 0
}

// IsFinal reports whether this page ends the scan: a page with fewer events
// than the requested limit (or none at all) is the last one for its range.
func (p Page) IsFinal(limit int) bool {
	return len(p.Events) < limit
}
