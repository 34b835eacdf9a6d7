// Package resolve turns configuration parameter paths into values, with
// retry, circuit breaking, and caching over pluggable parameter stores.
package resolve

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("parameter not found")
	ErrThrottled        = errors.New("throttled by parameter store")
	ErrStoreUnavailable = errors.New("parameter store unavailable")
)

// Parameter is one resolved configuration value.
type Parameter struct {
	Path    string
	Value   string
	Version int64
}

// Store reads parameters from a backing parameter store.
type Store interface {
	// Get returns the parameter at the given path.
	Get(ctx context.Context, path string) (Parameter, error)

	// List returns every parameter under the given hierarchical prefix.
	List(ctx context.Context, prefix string) ([]Parameter, error)
}
