package visibility

import (
	"context"
	"fmt"
)

type providerKey struct{}

// WithProvider returns a child context that scopes p for descendants.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the live provider scoped in ctx.
// Returns ErrNoProvider if none is scoped or the scoped one was unmounted.
func FromContext(ctx context.Context) (*Provider, error) {
	if ctx == nil {
		return nil, ErrNoProvider
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	if !p.Mounted() {
		return nil, fmt.Errorf("%w: provider was unmounted", ErrNoProvider)
	}
	return p, nil
}

// Use returns the provider scoped in ctx and panics when there is none.
// A missing provider is a wiring bug in the component tree, not a runtime
// condition callers can recover from.
func Use(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
