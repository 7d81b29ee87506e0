// Package mapadengue is the public entry point of the SDK: one Client
// aggregating every domain façade behind a shared transport, token
// store, and fallback policy.
package mapadengue

import (
	"log/slog"

	"github.com/mapadengue/mapadengue-go/internal/service"
	"github.com/mapadengue/mapadengue-go/internal/service/auth"
	"github.com/mapadengue/mapadengue-go/internal/service/facts"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
	"github.com/mapadengue/mapadengue-go/internal/service/risk"
	"github.com/mapadengue/mapadengue-go/internal/service/weather"
	"github.com/mapadengue/mapadengue-go/internal/token"
	"github.com/mapadengue/mapadengue-go/internal/transport"
)

// Client bundles the domain façades. Create one per application; the
// façades share its transport and session, and are safe for concurrent
// use.
type Client struct {
	Auth       *auth.Service
	Municipios *municipios.Service
	Facts      *facts.Service
	Weather    *weather.Service
	Risk       *risk.Service

	transport *transport.Client
	tokens    token.Store
	closers   []func() error
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		logger: slog.Default(),
		tokens: token.NewMemoryStore(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	transportOpts := []transport.Option{
		transport.WithTokenStore(cfg.tokens),
		transport.WithLogger(cfg.logger),
	}
	transportOpts = append(transportOpts, cfg.transportOpts...)

	tr := transport.New(baseURL, transportOpts...)

	deps := service.Deps{
		Transport: tr,
		MockAPI:   cfg.mockAPI,
		Logger:    cfg.logger,
	}

	return &Client{
		Auth:       auth.New(deps),
		Municipios: municipios.New(deps),
		Facts:      facts.New(deps),
		Weather:    weather.New(deps),
		Risk:       risk.New(deps),
		transport:  tr,
		tokens:     cfg.tokens,
		closers:    cfg.closers,
	}, nil
}

// Tokens exposes the session store, e.g. for expiry checks before a
// request burst.
func (c *Client) Tokens() token.Store {
	return c.tokens
}

// Close releases resources held by options (such as a session file).
func (c *Client) Close() error {
	var first error
	for _, fn := range c.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
