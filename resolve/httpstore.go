package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/dnscache"
)

// HTTPStore reads parameters from a parameter-store HTTP API.
//
// GET <base><path> returns one parameter as JSON; GET
// <base><prefix>?recursive=true returns every parameter under the
// prefix as a JSON array.
type HTTPStore struct {
	client     *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
	authFn     func(url string) (headerName, headerValue string)
}

// Option configures an HTTPStore.
type Option func(*HTTPStore)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPStore) {
		s.client = c
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *HTTPStore) {
		s.userAgent = ua
	}
}

// WithMaxRetries sets the maximum retry attempts.
func WithMaxRetries(n int) Option {
	return func(s *HTTPStore) {
		s.maxRetries = n
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
func WithBaseDelay(d time.Duration) Option {
	return func(s *HTTPStore) {
		s.baseDelay = d
	}
}

// WithAuthFunc sets a function that returns auth headers for a given URL.
// The function receives the request URL and returns a header name and value.
// Return empty strings to skip authentication for that URL.
func WithAuthFunc(fn func(url string) (headerName, headerValue string)) Option {
	return func(s *HTTPStore) {
		s.authFn = fn
	}
}

// NewHTTPStore creates an HTTPStore for the given base URL.
func NewHTTPStore(baseURL string, opts ...Option) *HTTPStore {
	// Create DNS cache with 5 minute refresh interval
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			resolver.Refresh(true)
		}
	}()

	// Create custom dialer with DNS caching
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	s := &HTTPStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					host, port, err := net.SplitHostPort(addr)
					if err != nil {
						return nil, err
					}
					ips, err := resolver.LookupHost(ctx, host)
					if err != nil {
						return nil, err
					}
					for _, ip := range ips {
						conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
						if err == nil {
							return conn, nil
						}
					}
					return nil, fmt.Errorf("failed to dial any resolved IP")
				},
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		userAgent:  "doctorus-common/1.0",
		maxRetries: 3,
		baseDelay:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the parameter at the given path, retrying throttled and
// server-side failures with exponential backoff.
func (s *HTTPStore) Get(ctx context.Context, path string) (Parameter, error) {
	var param Parameter
	err := s.withRetries(ctx, func() error {
		return s.getJSON(ctx, s.baseURL+path, &param)
	})
	if err != nil {
		return Parameter{}, err
	}
	return param, nil
}

// List returns every parameter under the given hierarchical prefix.
func (s *HTTPStore) List(ctx context.Context, prefix string) ([]Parameter, error) {
	var parameters []Parameter
	err := s.withRetries(ctx, func() error {
		return s.getJSON(ctx, s.baseURL+prefix+"?recursive=true", &parameters)
	})
	if err != nil {
		return nil, err
	}
	return parameters, nil
}

func (s *HTTPStore) withRetries(ctx context.Context, get func() error) error {
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with 10% jitter to prevent thundering herd
			delay := s.baseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(float64(delay) * (rand.Float64() * 0.1))
			delay += jitter

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := get()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't retry on not found
		if errors.Is(err, ErrNotFound) {
			return err
		}

		// Retry on throttling and server errors
		if errors.Is(err, ErrThrottled) || errors.Is(err, ErrStoreUnavailable) {
			continue
		}

		// Don't retry on other errors (network issues will be wrapped)
		return err
	}

	return lastErr
}

func (s *HTTPStore) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	// Add authentication header if configured
	if s.authFn != nil {
		if name, value := s.authFn(url); name != "" && value != "" {
			req.Header.Set(name, value)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching parameter: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding parameter payload: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound

	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrThrottled

	case resp.StatusCode >= 500:
		return ErrStoreUnavailable

	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
