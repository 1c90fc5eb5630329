package rpcclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suinet-dev/sui-go/pkg/suirpc"
)

// testClient returns a Client whose transport is replaced by the given
// function, no network involved.
func testClient(t *testing.T, h func(*suirpc.Request) (*suirpc.Response, error)) *Client {
	c, err := New(context.Background(), "http://localhost:20332", Options{})
	require.NoError(t, err)
	c.requestF = h
	return c
}

// resultResponse wraps v into a successful JSON-RPC response.
func resultResponse(t *testing.T, v any) *suirpc.Response {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return &suirpc.Response{Result: data}
}

func TestGetEndpoint(t *testing.T) {
	host := "http://localhost:1234"
	u, err := url.Parse(host)
	require.NoError(t, err)
	client := Client{
		endpoint: u,
	}
	require.Equal(t, host, client.Endpoint())
}

func TestRequestEnvelope(t *testing.T) {
	var captured suirpc.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	raw, err := c.Call("suix_getBalance", []any{"0xabc", "0x2::sui::SUI"})
	require.NoError(t, err)
	require.Equal(t, json.RawMessage(`"ok"`), raw)

	require.Equal(t, suirpc.JSONRPCVersion, captured.JSONRPC)
	require.Equal(t, "suix_getBalance", captured.Method)
	require.Equal(t, []any{"0xabc", "0x2::sui::SUI"}, captured.Params)
	require.Equal(t, uint64(1), captured.ID)

	// Params must never be omitted, an empty list goes on the wire as [].
	_, err = c.Call("sui_getChainIdentifier", nil)
	require.NoError(t, err)
	require.NotNil(t, captured.Params)
	require.Empty(t, captured.Params)
	require.Equal(t, uint64(2), captured.ID)
}

func TestHTTPErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	raw, err := c.Call("sui_getCheckpoint", []any{"1"})
	require.Nil(t, raw)
	var te *suirpc.TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, http.StatusInternalServerError, te.StatusCode)
}

func TestConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c, err := New(context.Background(), endpoint, Options{})
	require.NoError(t, err)

	_, err = c.Call("sui_getCheckpoint", []any{"1"})
	var te *suirpc.TransportError
	require.ErrorAs(t, err, &te)
	require.Zero(t, te.StatusCode)
}

func TestProtocolError(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return &suirpc.Response{
			HeaderAndError: suirpc.HeaderAndError{
				Error: suirpc.NewError(-32602, "Invalid params", ""),
			},
			// A result alongside an error must be ignored.
			Result: json.RawMessage(`"should not be seen"`),
		}, nil
	})

	raw, err := c.Call("suix_getBalance", []any{"0xabc"})
	require.Nil(t, raw)
	var pe *suirpc.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "Invalid params", pe.Message)
}

func TestProtocolErrorWithoutMessage(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return &suirpc.Response{
			HeaderAndError: suirpc.HeaderAndError{
				Error: &suirpc.Error{Code: -1},
			},
		}, nil
	})

	_, err := c.Call("suix_getBalance", []any{"0xabc"})
	require.ErrorContains(t, err, "unknown error")
}

func TestEmptyResultIsNotAFailure(t *testing.T) {
	for name, resp := range map[string]*suirpc.Response{
		"absent": {},
		"null":   {Result: json.RawMessage(`null`)},
	} {
		t.Run(name, func(t *testing.T) {
			c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
				return resp, nil
			})
			raw, err := c.Call("suix_getAllBalances", []any{"0xabc"})
			require.NoError(t, err)
			require.Nil(t, raw)
		})
	}
}

func TestRequestIDsIncrease(t *testing.T) {
	var ids []uint64
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		ids = append(ids, r.ID)
		return resultResponse(t, "ok"), nil
	})

	for range [3]struct{}{} {
		_, err := c.Call("sui_getChainIdentifier", nil)
		require.NoError(t, err)
	}
	require.Equal(t, []uint64{1, 2, 3}, ids)
}

func TestErrorCarriesMethodName(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return nil, suirpc.NewTransportError(0, context.DeadlineExceeded)
	})

	_, err := c.Call("suix_getStakes", []any{"0xabc"})
	require.ErrorContains(t, err, "suix_getStakes")
}
