package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// WebSocket implements Transport over a WebSocket connection carrying the
// same JSON-RPC request/response framing as HTTP. Soroban RPC itself does
// not push notifications, so this transport is call-only.
type WebSocket struct {
	url    string
	conn   *websocket.Conn
	mu     sync.Mutex
	nextID atomic.Uint64

	// connection management
	connOnce sync.Once
	connErr  error

	// in-flight call routing
	callMu    sync.Mutex
	calls     map[uint64]chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

// NewWebSocket creates a WebSocket transport.
// The connection is established lazily on the first Call.
func NewWebSocket(url string) *WebSocket {
	return &WebSocket{
		url:    url,
		calls:  make(map[uint64]chan []byte),
		closed: make(chan struct{}),
	}
}

type wsRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type wsResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *wsError        `json:"error,omitempty"`
}

type wsError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// connect establishes the WebSocket connection (called lazily, at most once).
func (ws *WebSocket) connect(ctx context.Context) error {
	ws.connOnce.Do(func() {
		dialer := websocket.Dialer{}
		conn, _, err := dialer.DialContext(ctx, ws.url, nil)
		if err != nil {
			ws.connErr = fmt.Errorf("transport/ws: dial: %w", err)
			return
		}
		ws.conn = conn
		go ws.readLoop()
	})
	return ws.connErr
}

// Call sends a JSON-RPC request over the WebSocket and waits for the response.
// Endpoint-reported faults come back as *RPCError.
func (ws *WebSocket) Call(ctx context.Context, method string, params interface{}) ([]byte, error) {
	if err := ws.connect(ctx); err != nil {
		return nil, err
	}

	id := ws.nextID.Add(1)
	req := wsRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	}

	ch := make(chan []byte, 1)
	ws.callMu.Lock()
	ws.calls[id] = ch
	ws.callMu.Unlock()

	defer func() {
		ws.callMu.Lock()
		delete(ws.calls, id)
		ws.callMu.Unlock()
	}()

	ws.mu.Lock()
	err := ws.conn.WriteJSON(req)
	ws.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("transport/ws: write: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case data := <-ch:
		var resp wsResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("transport/ws: unmarshal: %w", err)
		}
		if resp.Error != nil {
			return nil, &RPCError{Code: resp.Error.Code, Message: resp.Error.Message}
		}
		return resp.Result, nil
	case <-ws.closed:
		return nil, fmt.Errorf("transport/ws: connection closed")
	}
}

// Close terminates the WebSocket connection.
func (ws *WebSocket) Close() error {
	ws.closeOnce.Do(func() {
		close(ws.closed)
	})
	if ws.conn != nil {
		return ws.conn.Close()
	}
	return nil
}

// readLoop reads messages from the WebSocket and routes them to waiting callers.
func (ws *WebSocket) readLoop() {
	for {
		select {
		case <-ws.closed:
			return
		default:
		}

		_, message, err := ws.conn.ReadMessage()
		if err != nil {
			ws.closeOnce.Do(func() {
				close(ws.closed)
			})
			return
		}

		var envelope struct {
			ID uint64 `json:"id"`
		}
		if err := json.Unmarshal(message, &envelope); err != nil {
			continue
		}

		ws.callMu.Lock()
		if ch, ok := ws.calls[envelope.ID]; ok {
			select {
			case ch <- message:
			default:
			}
		}
		ws.callMu.Unlock()
	}
}
