// Package service provides the strategy shared by every domain façade:
// mock-mode short-circuit, live attempt, conditional mock fallback, and
// wire-to-view-model mapping. The per-domain façades live in the
// subpackages and only supply the pieces that differ.
package service

import (
	"context"
	"log/slog"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/transport"
)

// Deps is the dependency set injected into every façade.
type Deps struct {
	Transport *transport.Client
	// MockAPI is read once per operation; when it reports true no
	// network attempt is made.
	MockAPI func() bool
	Logger  *slog.Logger
}

// Mocked reports the mock flag, defaulting to live when unset.
func (d Deps) Mocked() bool {
	return d.MockAPI != nil && d.MockAPI()
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Operation describes one read operation: how to fetch it live, how to
// substitute it, and how to map the wire shape to the view model.
type Operation[W, V any] struct {
	// Name identifies the operation in debug logs.
	Name string
	// Live performs the network call and returns the wire shape.
	Live func(context.Context) (W, *domain.APIError)
	// Mock produces the substitute wire shape. It must be structurally
	// identical to what Live returns so Map sees no difference.
	Mock func() W
	// Map converts the wire shape to the view model. It runs on both
	// the live and the mock path, so view models are always fully
	// populated.
	Map func(W) V
	// ShouldFallback decides which classified errors get silently
	// substituted. Nil means the default policy: endpoint absent (404)
	// or nothing answered (network, status 0). Anything else surfaces.
	ShouldFallback func(*domain.APIError) bool
}

// Run executes the shared strategy. A mock-backed success is not
// distinguishable from a live one through the Result; only the debug
// log records which path was taken.
func Run[W, V any](ctx context.Context, deps Deps, op Operation[W, V]) domain.Result[V] {
	if deps.Mocked() {
		deps.logger().Debug("mock mode, skipping network", slog.String("operation", op.Name))
		return domain.OK(op.Map(op.Mock()))
	}

	wire, apiErr := op.Live(ctx)
	if apiErr == nil {
		return domain.OK(op.Map(wire))
	}

	shouldFallback := op.ShouldFallback
	if shouldFallback == nil {
		shouldFallback = domain.Fallbackable
	}
	if op.Mock != nil && shouldFallback(apiErr) {
		deps.logger().Debug("live endpoint unavailable, serving mock data",
			slog.String("operation", op.Name),
			slog.String("kind", string(apiErr.Kind)),
			slog.Int("status", apiErr.Status),
		)
		return domain.OK(op.Map(op.Mock()))
	}

	return domain.Fail[V](apiErr)
}
