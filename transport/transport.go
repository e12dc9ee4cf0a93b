// Package transport provides JSON-RPC transport layer abstractions.
package transport

import (
	"context"
	"fmt"
)

// Transport sends JSON-RPC requests with a single named-parameter object
// (the Soroban RPC convention) and returns raw result bytes.
type Transport interface {
	// Call sends a JSON-RPC request and returns the result bytes.
	// A nil params sends a request without parameters.
	Call(ctx context.Context, method string, params interface{}) ([]byte, error)

	// Close terminates the transport connection.
	Close() error
}

// RPCError is a structured error response reported by the endpoint,
// normalized across transports.
type RPCError struct {
	Code    int64
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error: code=%d message=%s", e.Code, e.Message)
}
