// Package transport provides the single configured HTTP client every
// façade talks through: bearer credential attachment, one-shot retry on
// network failure, and session teardown on 401.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/token"
)

const (
	defaultTimeout = 30 * time.Second
	retryBackoff   = 1 * time.Second
	userAgent      = "mapadengue-go/1.0"
)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithTokenStore sets the session store consulted for bearer credentials.
func WithTokenStore(store token.Store) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

// WithAPIKey sets the X-API-Key header sent on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithOnUnauthorized sets the callback invoked after a 401 clears the
// session. The error is still surfaced to the caller afterwards.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithRetryBackoff overrides the delay before the single network retry.
func WithRetryBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoff = d
	}
}

// Client is the shared HTTP client for the MapaDengue API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         token.Store
	apiKey         string
	logger         *slog.Logger
	onUnauthorized func()
	backoff        time.Duration
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens:  token.NewMemoryStore(),
		logger:  slog.Default(),
		backoff: retryBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokens exposes the session store to the auth façade, which is the
// only writer besides the 401 handler.
func (c *Client) Tokens() token.Store {
	return c.tokens
}

// GetJSON performs a GET and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) *domain.APIError {
	body, apiErr := c.Do(ctx, http.MethodGet, path, query, nil)
	if apiErr != nil {
		return apiErr
	}
	return decode(body, out)
}

// PostJSON performs a POST with a JSON payload and decodes the response
// into out. out may be nil when the response body is irrelevant.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) *domain.APIError {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return domain.ErrValidation(0, fmt.Sprintf("failed to marshal request: %v", err))
		}
	}
	body, apiErr := c.Do(ctx, http.MethodPost, path, nil, payload)
	if apiErr != nil {
		return apiErr
	}
	if out == nil {
		return nil
	}
	return decode(body, out)
}

func decode(body []byte, out any) *domain.APIError {
	if err := json.Unmarshal(body, out); err != nil {
		return domain.ErrValidation(0, fmt.Sprintf("failed to unmarshal response: %v", err))
	}
	return nil
}

// Do executes one logical request. A pure network failure is retried
// exactly once after the backoff; the backoff is abandoned when ctx is
// canceled so a torn-down caller never fires a late retry. HTTP
// failures are classified, with the 401 side effect applied first.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, *domain.APIError) {
	requestID := uuid.New().String()

	for attempt := 0; ; attempt++ {
		resp, err := c.roundTrip(ctx, method, path, query, payload, requestID)
		if err != nil {
			if attempt == 0 {
				c.logger.Debug("network failure, retrying once",
					slog.String("request_id", requestID),
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
				if !c.wait(ctx) {
					return nil, domain.Classify(nil, nil, ctx.Err())
				}
				continue
			}
			return nil, domain.Classify(nil, nil, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			// The connection dropped mid-body; treated as terminal, the
			// response headers already arrived so this is not retried.
			return nil, domain.ErrNetwork(fmt.Sprintf("failed to read response: %v", readErr))
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		if resp.StatusCode == http.StatusUnauthorized {
			if err := c.tokens.ClearTokens(); err != nil {
				c.logger.Error("failed to clear session", slog.String("error", err.Error()))
			}
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}

		apiErr := domain.Classify(resp, body, nil)
		if resp.StatusCode >= 500 {
			c.logger.Error("server error",
				slog.String("request_id", requestID),
				slog.String("path", path),
				slog.Int("status", resp.StatusCode),
			)
		}
		return nil, apiErr
	}
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, payload []byte, requestID string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, requestID)

	return c.httpClient.Do(req)
}

// wait sleeps for the retry backoff, returning false when ctx was
// canceled first.
func (c *Client) wait(ctx context.Context) bool {
	timer := time.NewTimer(c.backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *Client) setHeaders(req *http.Request, requestID string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)

	// Snapshot of the store; valid only for this attachment.
	if access := c.tokens.AccessToken(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}
