// Package jsonrpc provides a generic JSON-RPC 2.0 client over HTTP, used to
// talk to Ethereum-compatible nodes. Requests carry a UUID id, transport
// retries come from the retrying HTTP client of the transport/http package,
// and static headers (for example a provider API key) can be attached.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	transporthttp "github.com/gabapcia/recoverywallet/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non-2xx HTTP status without a JSON-RPC body.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	Error   *struct {
		Code    int             `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
		Message string          `json:"message"` // Human-readable error message
		Data    json.RawMessage `json:"data"`    // Optional provider details (e.g. revert data)
	} `json:"error"`
	Result json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message,
// and the error data when present.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	if len(r.Error.Data) > 0 && string(r.Error.Data) != "null" {
		return fmt.Errorf("%w: [%d] - %s (%s)", ErrProviderReturnedError, r.Error.Code, r.Error.Message, r.Error.Data)
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a generic JSON-RPC client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client sends JSON-RPC requests to a single provider endpoint.
type client struct {
	providerEndpoint string                // The URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // The HTTP client used to perform requests
	headers          http.Header           // Static headers added to every request
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// It returns the raw result as a json.RawMessage or an error if the request or server fails.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// config holds optional configuration parameters for the JSON-RPC client.
type config struct {
	httpClient *retryablehttp.Client
	headers    http.Header
}

// Option defines a functional option type used to customize the client configuration.
type Option func(*config)

// NewClient creates a new JSON-RPC client pointing to the specified server endpoint.
// Without WithHTTPClient it uses transport/http's default retrying client.
func NewClient(providerEndpoint string, opts ...Option) *client {
	cfg := config{
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = transporthttp.NewClient()
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       cfg.httpClient,
		headers:          cfg.headers,
	}
}

// WithHTTPClient sets the retrying HTTP client used to send requests.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithHeader adds a header sent with every request, such as a provider API key.
func WithHeader(key, value string) Option {
	return func(cfg *config) {
		cfg.headers.Add(key, value)
	}
}
