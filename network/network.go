// Package network provides the abstraction layer over ledger RPC endpoints.
package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/hedeqiang/beacon/event"
)

// Network is the core abstraction for talking to a Soroban RPC endpoint.
// Each configured endpoint (testnet, mainnet, self-hosted) implements this interface.
type Network interface {
	// ID returns the unique network identifier (e.g. "testnet", "pubnet").
	ID() string

	// LatestLedger returns the sequence number of the most recently closed ledger.
	LatestLedger(ctx context.Context) (uint32, error)

	// FetchEvents retrieves one bounded page of events matching the request.
	// Pagination across pages is driven by the caller via PageRequest.Start.
	FetchEvents(ctx context.Context, req PageRequest) (*event.Page, error)
}

// HealthChecker is implemented by networks that expose an endpoint health probe.
type HealthChecker interface {
	// Health returns nil when the endpoint reports itself healthy.
	Health(ctx context.Context) error
}

// Error classes for failed RPC interactions. Callers route on these with
// errors.Is; the classes are deliberately not collapsed because the sensible
// reaction differs (retry a connectivity blip, inspect a remote fault,
// treat a payload mismatch as schema drift, fix a request bug).
var (
	// ErrConnectivity indicates a transport-level failure reaching the endpoint.
	ErrConnectivity = errors.New("network: endpoint unreachable")

	// ErrRemoteFault indicates the endpoint returned a structured error response.
	ErrRemoteFault = errors.New("network: endpoint reported an error")

	// ErrPayloadShape indicates a response that did not match the expected schema.
	ErrPayloadShape = errors.New("network: malformed response payload")

	// ErrRequestShape indicates an invalid combination of request parameters.
	ErrRequestShape = errors.New("network: invalid request parameters")
)

// RemoteError carries the code and message of a structured JSON-RPC error
// returned by the endpoint. It unwraps to ErrRemoteFault.
type RemoteError struct {
	Code    int64
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("network: rpc error: code=%d message=%s", e.Code, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemoteFault
}
