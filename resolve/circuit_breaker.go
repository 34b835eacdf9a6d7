package resolve

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// BreakerStore wraps a Store with per-environment circuit breakers, so
// a parameter store that is down for one environment stops being
// hammered without blocking reads for the others.
type BreakerStore struct {
	store    Store
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewBreakerStore creates a circuit breaker wrapper for a store.
func NewBreakerStore(s Store) *BreakerStore {
	return &BreakerStore{
		store:    s,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// getBreaker returns or creates a circuit breaker for the given group.
func (b *BreakerStore) getBreaker(group string) *circuit.Breaker {
	b.mu.RLock()
	breaker, exists := b.breakers[group]
	b.mu.RUnlock()

	if exists {
		return breaker
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := b.breakers[group]; exists {
		return breaker
	}

	// Create new circuit breaker with exponential backoff
	// Trips after 5 consecutive failures
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}
	breaker = circuit.NewBreakerWithOptions(opts)

	b.breakers[group] = breaker
	return breaker
}

// Get wraps the underlying store's Get with circuit breaker logic.
func (b *BreakerStore) Get(ctx context.Context, path string) (Parameter, error) {
	group := breakerGroup(path)
	breaker := b.getBreaker(group)

	// Check if circuit is open
	if !breaker.Ready() {
		return Parameter{}, fmt.Errorf("circuit breaker open for %s: %w", group, ErrStoreUnavailable)
	}

	var param Parameter
	err := breaker.Call(func() error {
		var getErr error
		param, getErr = b.store.Get(ctx, path)
		return getErr
	}, 0)

	if err != nil {
		return Parameter{}, err
	}

	return param, nil
}

// List wraps the underlying store's List with circuit breaker logic.
func (b *BreakerStore) List(ctx context.Context, prefix string) ([]Parameter, error) {
	group := breakerGroup(prefix)
	breaker := b.getBreaker(group)

	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open for %s: %w", group, ErrStoreUnavailable)
	}

	var parameters []Parameter
	err := breaker.Call(func() error {
		var listErr error
		parameters, listErr = b.store.List(ctx, prefix)
		return listErr
	}, 0)

	return parameters, err
}

// breakerGroup extracts the root and environment segments of a path
// for circuit breaker grouping.
func breakerGroup(path string) string {
	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(segments) >= 2 {
		return "/" + segments[0] + "/" + segments[1]
	}
	return path
}

// BreakerState returns the current state of circuit breakers (for health checks).
func (b *BreakerStore) BreakerState() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	states := make(map[string]string)
	for group, breaker := range b.breakers {
		if breaker.Tripped() {
			states[group] = "open"
		} else {
			states[group] = "closed"
		}
	}
	return states
}
