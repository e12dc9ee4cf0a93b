package watcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/filter"
	"github.com/hedeqiang/beacon/network"
	"github.com/hedeqiang/beacon/retry"
)

// drainRange pages through every event in ledgers [from, to] matching the
// query and hands each one to emit, in the order the endpoint returns them.
//
// The first page is requested by start ledger; every page after it by the
// cursor the previous page returned, because the endpoint rejects requests
// combining both. Paging stops on a short page, an empty page, or the first
// event past `to` (the tip may move while a drain is in flight; anything
// beyond `to` belongs to the next range).
//
// On error the drain stops where it is. The caller must not advance its scan
// position, so the next invocation covers the same range again.
func drainRange(ctx context.Context, n network.Network, query filter.Query, from, to uint32, limit int, strategy retry.Strategy, emit func(event.Event)) error {
	if from > to {
		return fmt.Errorf("%w: range [%d, %d] is inverted", network.ErrRequestShape, from, to)
	}

	var start network.PageStart = network.ByLedger(from)
	for {
		req := network.PageRequest{
			Start: start,
			Query: query,
			Limit: limit,
		}

		page, err := fetchPage(ctx, n, req, strategy)
		if err != nil {
			return err
		}

		for _, ev := range page.Events {
			if ev.Ledger > to {
				return nil
			}
			emit(ev)
		}

		if page.IsFinal(limit) {
			return nil
		}
		if page.Cursor == "" {
			return fmt.Errorf("%w: full page without continuation cursor", network.ErrPayloadShape)
		}

		start = network.ByCursor(page.Cursor)
	}
}

// fetchPage requests one page, retrying connectivity failures per the
// strategy. Other error classes are surfaced immediately: repeating a
// malformed request or a schema mismatch cannot help.
func fetchPage(ctx context.Context, n network.Network, req network.PageRequest, strategy retry.Strategy) (*event.Page, error) {
	if strategy == nil {
		return n.FetchEvents(ctx, req)
	}

	var (
		page  *event.Page
		fatal error
	)
	err := retry.Do(ctx, strategy, func(ctx context.Context) error {
		p, ferr := n.FetchEvents(ctx, req)
		if ferr != nil {
			if errors.Is(ferr, network.ErrConnectivity) {
				return ferr
			}
			fatal = ferr
			return nil
		}
		page = p
		return nil
	})
	if fatal != nil {
		return nil, fatal
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}
