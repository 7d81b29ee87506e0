package mapadengue

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/token"
	"github.com/mapadengue/mapadengue-go/internal/transport"
)

type clientConfig struct {
	logger        *slog.Logger
	tokens        token.Store
	mockAPI       func() bool
	transportOpts []transport.Option
	closers       []func() error
}

// Option is a functional option for configuring a Client.
type Option func(*clientConfig) error

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) error {
		c.logger = logger
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client (e.g. a VCR transport in
// tests).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) error {
		c.transportOpts = append(c.transportOpts, transport.WithHTTPClient(httpClient))
		return nil
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) error {
		c.transportOpts = append(c.transportOpts, transport.WithTimeout(d))
		return nil
	}
}

// WithAPIKey sends X-API-Key on every request.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) error {
		c.transportOpts = append(c.transportOpts, transport.WithAPIKey(key))
		return nil
	}
}

// WithMockMode forces every façade to serve substitute data without
// touching the network.
func WithMockMode(enabled bool) Option {
	return func(c *clientConfig) error {
		c.mockAPI = func() bool { return enabled }
		return nil
	}
}

// WithMockModeFunc reads the mock flag per operation, for callers whose
// configuration can change at runtime.
func WithMockModeFunc(fn func() bool) Option {
	return func(c *clientConfig) error {
		c.mockAPI = fn
		return nil
	}
}

// WithTokenStore sets a custom session store.
func WithTokenStore(store token.Store) Option {
	return func(c *clientConfig) error {
		c.tokens = store
		return nil
	}
}

// WithSessionFile persists the session to a local SQLite file so it
// survives restarts.
func WithSessionFile(path string) Option {
	return func(c *clientConfig) error {
		store, err := token.NewFileStore(path)
		if err != nil {
			return fmt.Errorf("create session file store: %w", err)
		}
		c.tokens = store
		c.closers = append(c.closers, store.Close)
		return nil
	}
}

// WithUnauthorizedHandler sets the callback invoked after a 401 clears
// the session, e.g. to send the UI back to the login screen.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *clientConfig) error {
		c.transportOpts = append(c.transportOpts, transport.WithOnUnauthorized(fn))
		return nil
	}
}

// WithRetryBackoff overrides the delay before the single network
// retry. Mostly useful in tests.
func WithRetryBackoff(d time.Duration) Option {
	return func(c *clientConfig) error {
		c.transportOpts = append(c.transportOpts, transport.WithRetryBackoff(d))
		return nil
	}
}
