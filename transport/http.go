package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"
)

// HTTP implements Transport over HTTP JSON-RPC using a jrpc2 client channel.
type HTTP struct {
	client *jrpc2.Client
}

// NewHTTP creates an HTTP transport targeting the given JSON-RPC endpoint.
func NewHTTP(url string) *HTTP {
	ch := jhttp.NewChannel(url, nil)
	return &HTTP{
		client: jrpc2.NewClient(ch, nil),
	}
}

// Call sends an HTTP JSON-RPC request and returns the result bytes.
// Endpoint-reported faults come back as *RPCError.
func (h *HTTP) Call(ctx context.Context, method string, params interface{}) ([]byte, error) {
	var result json.RawMessage
	if err := h.client.CallResult(ctx, method, params, &result); err != nil {
		var jerr *jrpc2.Error
		if errors.As(err, &jerr) {
			return nil, &RPCError{Code: int64(jerr.Code), Message: jerr.Message}
		}
		return nil, fmt.Errorf("transport/http: call %s: %w", method, err)
	}
	return result, nil
}

// Close shuts down the client and its underlying channel.
func (h *HTTP) Close() error {
	return h.client.Close()
}
