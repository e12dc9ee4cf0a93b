// Package filter provides event filtering for getEvents queries and
// client-side post-filtering.
package filter

import (
	"errors"

	"github.com/hedeqiang/beacon/event"
)

// TopicWildcard matches any single topic segment in a server-side topic filter.
const TopicWildcard = "*"

// MaxContractIDs is the largest contract set the RPC accepts per filter.
const MaxContractIDs = 5

// ErrTooManyContracts is returned when a query names more contracts than the
// RPC accepts in one filter.
var ErrTooManyContracts = errors.New("filter: too many contract ids in one query")

// Filter determines whether an event matches a given criteria.
// Filters run client-side, after the server-side Query has been applied.
type Filter interface {
	Match(ev event.Event) bool
}

// Query describes the server-side predicate sent with a getEvents request:
// an event type, a contract set, and optional topic segment matchers.
type Query struct {
	// Type restricts the event category. Empty means TypeContract.
	Type event.Type

	// ContractIDs restricts events to the given emitting contracts
	// (strkey-encoded, at most MaxContractIDs).
	ContractIDs []string

	// Topics holds topic segment matchers: each inner slice is one matcher,
	// each segment either a base64 ScVal or TopicWildcard.
	Topics [][]string
}

// QueryOption configures a Query.
type QueryOption func(*Query)

// NewQuery creates a Query with the given options applied.
func NewQuery(opts ...QueryOption) Query {
	q := Query{Type: event.TypeContract}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// WithType sets the event category to query for.
func WithType(t event.Type) QueryOption {
	return func(q *Query) {
		q.Type = t
	}
}

// WithContracts adds strkey-encoded contract addresses to filter on.
func WithContracts(ids ...string) QueryOption {
	return func(q *Query) {
		q.ContractIDs = append(q.ContractIDs, ids...)
	}
}

// WithTopics adds a topic segment matcher. Each segment is either a
// base64-encoded ScVal or TopicWildcard.
func WithTopics(segments ...string) QueryOption {
	return func(q *Query) {
		q.Topics = append(q.Topics, segments)
	}
}

// Validate checks that the query is acceptable to the RPC.
func (q Query) Validate() error {
	if len(q.ContractIDs) > MaxContractIDs {
		return ErrTooManyContracts
	}
	for _, id := range q.ContractIDs {
		if _, err := event.ParseContractID(id); err != nil {
			return err
		}
	}
	return nil
}
