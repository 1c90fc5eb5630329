/*
Package rpcclient implements a JSON-RPC 2.0 client for Sui full nodes.

All remote calls go through a single chokepoint that normalizes transport and
protocol failures, so callers only ever check one error. Methods of the
client mirror the node's RPC surface (suix_/sui_/unsafe_ namespaces) as typed
Go calls.
*/
package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/suinet-dev/sui-go/pkg/suirpc"
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
)

// Client represents the middleman for executing JSON-RPC calls to remote Sui
// full nodes. Client is thread-safe and can be used from multiple goroutines.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	ctx      context.Context
	opts     Options
	logger   *zap.Logger
	requestF func(*suirpc.Request) (*suirpc.Response, error)

	cacheLock sync.RWMutex
	// metadataCache stores coin metadata per coin type. It is populated on
	// first use and never invalidated, stale metadata is accepted.
	metadataCache map[string]*result.CoinMetadata

	latestReqID *atomic.Uint64
	// getNextRequestID returns an ID to be used for the subsequent request
	// creation. It is defined on Client, so that our testing code can override
	// this method for the sake of more predictable request ID generation.
	getNextRequestID func() uint64
}

// Options defines options for the RPC client. All values are optional. If any
// duration is not specified, a default of 4 seconds will be used.
type Options struct {
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// Logger receives one diagnostic line per failed call. Nop by default.
	Logger *zap.Logger
}

// New returns a new Client ready to use. The endpoint is the only required
// parameter, resolve it from configuration before construction (see the
// config package), the client itself never consults the environment.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	cl := new(Client)
	err := initClient(ctx, cl, endpoint, opts)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func initClient(ctx context.Context, cl *Client, endpoint string, opts Options) error {
	url, err := url.Parse(endpoint)
	if err != nil {
		return err
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}

	cl.ctx = ctx
	cl.cli = httpClient
	cl.endpoint = url
	cl.logger = opts.Logger
	cl.metadataCache = make(map[string]*result.CoinMetadata)
	cl.latestReqID = atomic.NewUint64(0)
	cl.getNextRequestID = (cl).getRequestID
	cl.opts = opts
	cl.requestF = cl.makeHTTPRequest
	return nil
}

func (c *Client) getRequestID() uint64 {
	return c.latestReqID.Inc()
}

// Endpoint returns the client's endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

// Call performs a raw JSON-RPC call with the given method and positional
// parameters and returns the undecoded result member. An absent result is
// returned as a nil RawMessage, not as an error, list-returning methods
// legitimately answer with nothing.
func (c *Client) Call(method string, params []any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.performRequest(method, params, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// performRequest is the single chokepoint for all remote calls. It builds the
// request envelope, sends it and normalizes the outcome: transport failures
// and non-success HTTP statuses become *suirpc.TransportError, a JSON-RPC
// error member becomes *suirpc.Error (the result is ignored even if present
// alongside it), and a missing result member means an empty answer, not a
// failure. Every failure is logged once here with the originating method.
func (c *Client) performRequest(method string, p []any, v any) error {
	if p == nil {
		p = []any{}
	}
	var r = suirpc.Request{
		JSONRPC: suirpc.JSONRPCVersion,
		Method:  method,
		Params:  p,
		ID:      c.getNextRequestID(),
	}

	raw, err := c.requestF(&r)

	if err == nil && raw != nil && raw.Error != nil {
		if raw.Error.Message == "" {
			raw.Error.Message = "unknown error"
		}
		err = raw.Error
	}
	if err != nil {
		c.logger.Error("RPC call failed",
			zap.String("method", method),
			zap.Error(err))
		return fmt.Errorf("%s: %w", method, err)
	}
	if raw == nil || len(raw.Result) == 0 || bytes.Equal(raw.Result, []byte("null")) {
		return nil
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(raw.Result, v); err != nil {
		c.logger.Error("RPC call failed",
			zap.String("method", method),
			zap.Error(err))
		return fmt.Errorf("%s: decoding result: %w", method, err)
	}
	return nil
}

func (c *Client) makeHTTPRequest(r *suirpc.Request) (*suirpc.Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(suirpc.Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.endpoint.String(), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, suirpc.NewTransportError(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, suirpc.NewTransportError(resp.StatusCode,
			fmt.Errorf("%s", http.StatusText(resp.StatusCode)))
	}
	if err := json.NewDecoder(resp.Body).Decode(raw); err != nil {
		return nil, suirpc.NewTransportError(resp.StatusCode,
			fmt.Errorf("JSON decoding: %w", err))
	}
	return raw, nil
}

// Ping attempts to create a connection to the endpoint and returns an error
// if there is any.
func (c *Client) Ping() error {
	conn, err := net.DialTimeout("tcp", c.endpoint.Host, defaultDialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
