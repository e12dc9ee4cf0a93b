package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcHandler answers JSON-RPC 2.0 requests from a method table.
func rpcHandler(t *testing.T, results map[string]string, rpcErrs map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if errBody, ok := rpcErrs[req.Method]; ok {
			body := `{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":` + errBody + `}`
			_, _ = w.Write([]byte(body))
			return
		}
		result, ok := results[req.Method]
		if !ok {
			t.Errorf("unexpected method %s", req.Method)
			return
		}
		body := `{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":` + result + `}`
		_, _ = w.Write([]byte(body))
	}
}

func TestHTTPCall(t *testing.T) {
	srv := httptest.NewServer(rpcHandler(t, map[string]string{
		"getLatestLedger": `{"sequence":12345}`,
	}, nil))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	defer tr.Close()

	raw, err := tr.Call(context.Background(), "getLatestLedger", nil)
	require.NoError(t, err)

	var resp struct {
		Sequence uint32 `json:"sequence"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, uint32(12345), resp.Sequence)
}

func TestHTTPCallWithParams(t *testing.T) {
	var gotParams json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotParams = req.Params
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":{"events":[]}}`))
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	defer tr.Close()

	params := map[string]interface{}{"startLedger": 1000}
	_, err := tr.Call(context.Background(), "getEvents", params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"startLedger":1000}`, string(gotParams))
}

func TestHTTPCallEndpointError(t *testing.T) {
	srv := httptest.NewServer(rpcHandler(t, nil, map[string]string{
		"getEvents": `{"code":-32602,"message":"startLedger must be within the ledger range"}`,
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	defer tr.Close()

	_, err := tr.Call(context.Background(), "getEvents", nil)
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, int64(-32602), rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "ledger range")
}

func TestHTTPCallUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // shut down before calling

	tr := NewHTTP(srv.URL)
	defer tr.Close()

	_, err := tr.Call(context.Background(), "getHealth", nil)
	require.Error(t, err)
}
