package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wsEchoServer upgrades connections and answers JSON-RPC requests from a
// method table, mirroring the request id.
func wsEchoServer(t *testing.T, results map[string]string, rpcErrs map[string]string) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var req struct {
				ID     uint64 `json:"id"`
				Method string `json:"method"`
			}
			if err := conn.ReadJSON(&req); err != nil {
				return
			}

			var body string
			if errBody, ok := rpcErrs[req.Method]; ok {
				body = `{"jsonrpc":"2.0","id":` + jsonUint(req.ID) + `,"error":` + errBody + `}`
			} else if result, ok := results[req.Method]; ok {
				body = `{"jsonrpc":"2.0","id":` + jsonUint(req.ID) + `,"result":` + result + `}`
			} else {
				t.Errorf("unexpected method %s", req.Method)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(body)); err != nil {
				return
			}
		}
	}))
}

func jsonUint(id uint64) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWebSocketCall(t *testing.T) {
	srv := wsEchoServer(t, map[string]string{
		"getLatestLedger": `{"sequence":777}`,
	}, nil)
	defer srv.Close()

	tr := NewWebSocket(wsURL(srv))
	defer tr.Close()

	raw, err := tr.Call(context.Background(), "getLatestLedger", nil)
	require.NoError(t, err)

	var resp struct {
		Sequence uint32 `json:"sequence"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, uint32(777), resp.Sequence)
}

func TestWebSocketCallSequential(t *testing.T) {
	srv := wsEchoServer(t, map[string]string{
		"getLatestLedger": `{"sequence":1}`,
		"getHealth":       `{"status":"healthy"}`,
	}, nil)
	defer srv.Close()

	tr := NewWebSocket(wsURL(srv))
	defer tr.Close()

	_, err := tr.Call(context.Background(), "getLatestLedger", nil)
	require.NoError(t, err)
	raw, err := tr.Call(context.Background(), "getHealth", nil)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "healthy")
}

func TestWebSocketCallEndpointError(t *testing.T) {
	srv := wsEchoServer(t, nil, map[string]string{
		"getEvents": `{"code":-32602,"message":"invalid filters"}`,
	})
	defer srv.Close()

	tr := NewWebSocket(wsURL(srv))
	defer tr.Close()

	_, err := tr.Call(context.Background(), "getEvents", nil)
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, int64(-32602), rpcErr.Code)
}

func TestWebSocketDialFailure(t *testing.T) {
	tr := NewWebSocket("ws://127.0.0.1:1/rpc")
	defer tr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := tr.Call(ctx, "getHealth", nil)
	require.Error(t, err)
}

func TestWebSocketContextCancel(t *testing.T) {
	// A server that never responds.
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	tr := NewWebSocket(wsURL(srv))
	defer tr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tr.Call(ctx, "getHealth", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
