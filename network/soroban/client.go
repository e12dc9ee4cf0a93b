// Package soroban implements the network.Network interface against a
// Soroban RPC endpoint (stellar-rpc).
package soroban

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hedeqiang/beacon/event"
	"github.com/hedeqiang/beacon/network"
	"github.com/hedeqiang/beacon/transport"
)

// DefaultLimit is the page size used when a request does not set one.
const DefaultLimit = 100

// Well-known public RPC endpoints.
const (
	TestnetURL = "https://soroban-testnet.stellar.org"
)

// Client is a Soroban RPC network implementation.
type Client struct {
	id        string
	transport transport.Transport
}

// New creates a client for the given RPC endpoint. The transport is chosen
// from the URL scheme: ws:// and wss:// use WebSocket, everything else HTTP.
func New(id, rpcURL string) *Client {
	var t transport.Transport
	if strings.HasPrefix(rpcURL, "ws://") || strings.HasPrefix(rpcURL, "wss://") {
		t = transport.NewWebSocket(rpcURL)
	} else {
		t = transport.NewHTTP(rpcURL)
	}
	return &Client{
		id:        id,
		transport: t,
	}
}

// Testnet creates a client for the public testnet endpoint.
func Testnet() *Client {
	return New("testnet", TestnetURL)
}

// NewWithTransport creates a client with a custom transport.
func NewWithTransport(id string, t transport.Transport) *Client {
	return &Client{
		id:        id,
		transport: t,
	}
}

// ID returns the network identifier.
func (c *Client) ID() string {
	return c.id
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// LatestLedger returns the sequence of the most recently closed ledger.
func (c *Client) LatestLedger(ctx context.Context) (uint32, error) {
	result, err := c.transport.Call(ctx, "getLatestLedger", nil)
	if err != nil {
		return 0, classify("getLatestLedger", err)
	}

	var resp struct {
		Sequence uint32 `json:"sequence"`
	}
	if err := json.Unmarshal(result, &resp); err != nil {
		return 0, fmt.Errorf("%w: getLatestLedger: %v", network.ErrPayloadShape, err)
	}
	if resp.Sequence == 0 {
		return 0, fmt.Errorf("%w: getLatestLedger: missing sequence", network.ErrPayloadShape)
	}

	return resp.Sequence, nil
}

// Health probes the endpoint's getHealth method.
func (c *Client) Health(ctx context.Context) error {
	result, err := c.transport.Call(ctx, "getHealth", nil)
	if err != nil {
		return classify("getHealth", err)
	}

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(result, &resp); err != nil {
		return fmt.Errorf("%w: getHealth: %v", network.ErrPayloadShape, err)
	}
	if resp.Status != "healthy" {
		return &network.RemoteError{Message: fmt.Sprintf("endpoint unhealthy: %s", resp.Status)}
	}

	return nil
}

// FetchEvents retrieves one page of events matching the request.
func (c *Client) FetchEvents(ctx context.Context, req network.PageRequest) (*event.Page, error) {
	wire, err := buildEventsRequest(req)
	if err != nil {
		return nil, err
	}

	result, err := c.transport.Call(ctx, "getEvents", wire)
	if err != nil {
		return nil, classify("getEvents", err)
	}

	var resp eventsResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return nil, fmt.Errorf("%w: getEvents: %v", network.ErrPayloadShape, err)
	}

	page := &event.Page{
		Events:       make([]event.Event, len(resp.Events)),
		Cursor:       resp.Cursor,
		LatestLedger: resp.LatestLedger,
	}
	for i, re := range resp.Events {
		ev, err := re.toEvent(c.id)
		if err != nil {
			return nil, fmt.Errorf("%w: getEvents: event %d: %v", network.ErrPayloadShape, i, err)
		}
		page.Events[i] = ev
	}

	return page, nil
}

// eventsRequest is the wire form of a getEvents call. The startLedger field
// and pagination.cursor are mutually exclusive; buildEventsRequest enforces
// that only one of them is ever populated.
type eventsRequest struct {
	StartLedger uint32        `json:"startLedger,omitempty"`
	Filters     []eventFilter `json:"filters"`
	Pagination  *pagination   `json:"pagination,omitempty"`
}

type eventFilter struct {
	Type        string     `json:"type,omitempty"`
	ContractIDs []string   `json:"contractIds,omitempty"`
	Topics      [][]string `json:"topics,omitempty"`
}

type pagination struct {
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

func buildEventsRequest(req network.PageRequest) (*eventsRequest, error) {
	if err := req.Query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", network.ErrRequestShape, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	wire := &eventsRequest{
		Filters: []eventFilter{{
			Type:        string(req.Query.Type),
			ContractIDs: req.Query.ContractIDs,
			Topics:      req.Query.Topics,
		}},
	}

	switch start := req.Start.(type) {
	case network.ByLedger:
		if start == 0 {
			return nil, fmt.Errorf("%w: start ledger must be positive", network.ErrRequestShape)
		}
		wire.StartLedger = uint32(start)
		wire.Pagination = &pagination{Limit: limit}
	case network.ByCursor:
		if start == "" {
			return nil, fmt.Errorf("%w: empty page cursor", network.ErrRequestShape)
		}
		wire.Pagination = &pagination{Cursor: string(start), Limit: limit}
	default:
		return nil, fmt.Errorf("%w: page start is neither ledger nor cursor", network.ErrRequestShape)
	}

	return wire, nil
}

type eventsResponse struct {
	LatestLedger uint32     `json:"latestLedger"`
	Events       []rpcEvent `json:"events"`
	Cursor       string     `json:"cursor"`
}

// rpcEvent is the JSON-RPC representation of a single contract event.
type rpcEvent struct {
	Type                     string   `json:"type"`
	Ledger                   uint32   `json:"ledger"`
	LedgerClosedAt           string   `json:"ledgerClosedAt"`
	ContractID               string   `json:"contractId"`
	ID                       string   `json:"id"`
	Topic                    []string `json:"topic"`
	Value                    string   `json:"value"`
	InSuccessfulContractCall bool     `json:"inSuccessfulContractCall"`
	TxHash                   string   `json:"txHash"`
}

func (re *rpcEvent) toEvent(networkID string) (event.Event, error) {
	if re.ID == "" {
		return event.Event{}, errors.New("missing id")
	}
	if re.Ledger == 0 {
		return event.Event{}, errors.New("missing ledger sequence")
	}

	ev := event.Event{
		Network:                  networkID,
		ID:                       re.ID,
		Type:                     event.Type(re.Type),
		Ledger:                   re.Ledger,
		ContractID:               re.ContractID,
		Topics:                   re.Topic,
		Value:                    re.Value,
		TxHash:                   re.TxHash,
		InSuccessfulContractCall: re.InSuccessfulContractCall,
	}

	if re.LedgerClosedAt != "" {
		t, err := time.Parse(time.RFC3339, re.LedgerClosedAt)
		if err != nil {
			return event.Event{}, fmt.Errorf("parse ledgerClosedAt: %v", err)
		}
		ev.LedgerClosedAt = t
	}

	return ev, nil
}

// classify maps a transport failure onto the network error taxonomy.
// Context cancellation passes through untouched so shutdown is not reported
// as an endpoint failure.
func classify(method string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var rpcErr *transport.RPCError
	if errors.As(err, &rpcErr) {
		return &network.RemoteError{Code: rpcErr.Code, Message: rpcErr.Message}
	}

	return fmt.Errorf("%w: %s: %v", network.ErrConnectivity, method, err)
}
