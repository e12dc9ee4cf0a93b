package watcher

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/network"
)

// fakeNetwork simulates an RPC endpoint: a fixed event stream paged by
// ledger or cursor, a scripted sequence of tip responses, and injectable
// failures.
type fakeNetwork struct {
	mu sync.Mutex

	id     string
	events []event.Event // ordered by ledger, then intra-ledger

	tips   []uint32 // successive LatestLedger responses, last one repeats
	tipIdx int

	tipErr    error // when set, LatestLedger fails
	fetchErr  error // when set, FetchEvents fails
	failTimes int   // number of FetchEvents calls that fail before succeeding; -1 = always

	requests []network.PageRequest // every FetchEvents request observed
}

func newFakeNetwork(id string, tips ...uint32) *fakeNetwork {
	return &fakeNetwork{id: id, tips: tips}
}

func (f *fakeNetwork) ID() string {
	return f.id
}

func (f *fakeNetwork) LatestLedger(_ context.Context) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.tipErr != nil {
		return 0, f.tipErr
	}
	if len(f.tips) == 0 {
		return 0, fmt.Errorf("%w: no tip scripted", network.ErrConnectivity)
	}
	tip := f.tips[f.tipIdx]
	if f.tipIdx < len(f.tips)-1 {
		f.tipIdx++
	}
	return tip, nil
}

// addEvents appends n events in the given ledger.
func (f *fakeNetwork) addEvents(ledger uint32, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < n; i++ {
		f.events = append(f.events, event.Event{
			Network: f.id,
			ID:      fmt.Sprintf("%08d-%04d", ledger, i),
			Type:    event.TypeContract,
			Ledger:  ledger,
		})
	}
}

func (f *fakeNetwork) FetchEvents(_ context.Context, req network.PageRequest) (*event.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)

	if f.fetchErr != nil {
		if f.failTimes < 0 {
			return nil, f.fetchErr
		}
		if f.failTimes > 0 {
			f.failTimes--
			return nil, f.fetchErr
		}
	}

	var offset int
	switch start := req.Start.(type) {
	case network.ByLedger:
		for offset < len(f.events) && f.events[offset].Ledger < uint32(start) {
			offset++
		}
	case network.ByCursor:
		n, err := strconv.Atoi(string(start))
		if err != nil {
			return nil, fmt.Errorf("%w: bad cursor %q", network.ErrRequestShape, start)
		}
		offset = n
	default:
		return nil, fmt.Errorf("%w: missing page start", network.ErrRequestShape)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}

	end := offset + limit
	if end > len(f.events) {
		end = len(f.events)
	}

	page := &event.Page{
		Events: append([]event.Event(nil), f.events[offset:end]...),
		Cursor: strconv.Itoa(end),
	}
	return page, nil
}

// requestsSnapshot returns a copy of the observed page requests.
func (f *fakeNetwork) requestsSnapshot() []network.PageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]network.PageRequest(nil), f.requests...)
}
