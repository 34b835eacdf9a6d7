package resolve

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DoctorusRepoOwner/common/params"
)

// ErrNoStore indicates no store is registered for the path's environment.
var ErrNoStore = errors.New("no store registered for environment")

// DefaultCacheTTL is how long a resolved parameter is served from cache.
const DefaultCacheTTL = 5 * time.Minute

// Resolver resolves parameter paths against per-environment stores,
// serving repeated reads from a TTL cache. Parameters change rarely
// and the stores are rate limited, so a short cache pays for itself.
type Resolver struct {
	mu     sync.RWMutex
	stores map[params.Environment]Store
	cache  map[string]cached
	ttl    time.Duration
	now    func() time.Time
}

type cached struct {
	param   Parameter
	expires time.Time
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCacheTTL sets how long resolved parameters are cached.
// A zero TTL disables caching.
func WithCacheTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.ttl = ttl
	}
}

// NewResolver creates a Resolver with no stores registered.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		stores: make(map[params.Environment]Store),
		cache:  make(map[string]cached),
		ttl:    DefaultCacheTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterStore adds a store for an environment, replacing any
// previous one.
func (r *Resolver) RegisterStore(env params.Environment, s Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[env] = s
}

// Resolve parses the path, picks the store registered for its
// environment, and returns the parameter, reading through the cache.
func (r *Resolver) Resolve(ctx context.Context, rawPath string) (Parameter, error) {
	p, err := params.Parse(rawPath)
	if err != nil {
		return Parameter{}, err
	}

	r.mu.RLock()
	store, ok := r.stores[p.Env]
	entry, hit := r.cache[rawPath]
	r.mu.RUnlock()

	if !ok {
		return Parameter{}, fmt.Errorf("%w: %s", ErrNoStore, p.Env)
	}
	if hit && r.now().Before(entry.expires) {
		return entry.param, nil
	}

	param, err := store.Get(ctx, rawPath)
	if err != nil {
		return Parameter{}, err
	}

	if r.ttl > 0 {
		r.mu.Lock()
		r.cache[rawPath] = cached{param: param, expires: r.now().Add(r.ttl)}
		r.mu.Unlock()
	}
	return param, nil
}

// ResolveAll lists every parameter under the environment and scope.
// Listings are not cached.
func (r *Resolver) ResolveAll(ctx context.Context, env params.Environment, scope ...string) ([]Parameter, error) {
	prefix, err := params.Prefix(env, scope...)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	store, ok := r.stores[env]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoStore, env)
	}
	return store.List(ctx, prefix)
}

// Invalidate drops a path from the cache, forcing the next Resolve to
// hit the store.
func (r *Resolver) Invalidate(rawPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, rawPath)
}
