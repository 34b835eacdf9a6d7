package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testStore(t *testing.T, handler http.HandlerFunc) *HTTPStore {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPStore(server.URL,
		WithHTTPClient(server.Client()),
		WithBaseDelay(time.Millisecond),
	)
}

func TestHTTPStoreGet(t *testing.T) {
	var gotPath, gotAgent string
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(Parameter{
			Path:    "/doctorus/prod/booking-api/database_url",
			Value:   "postgres://db",
			Version: 3,
		})
	})

	param, err := store.Get(context.Background(), "/doctorus/prod/booking-api/database_url")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if param.Value != "postgres://db" || param.Version != 3 {
		t.Errorf("unexpected parameter: %+v", param)
	}
	if gotPath != "/doctorus/prod/booking-api/database_url" {
		t.Errorf("requested path = %q", gotPath)
	}
	if gotAgent != "doctorus-common/1.0" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
}

func TestHTTPStoreGetNotFound(t *testing.T) {
	requests := 0
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := store.Get(context.Background(), "/doctorus/prod/missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if requests != 1 {
		t.Errorf("not found should not be retried, saw %d requests", requests)
	}
}

func TestHTTPStoreRetriesServerErrors(t *testing.T) {
	requests := 0
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(Parameter{Path: r.URL.Path, Value: "ok", Version: 1})
	})

	param, err := store.Get(context.Background(), "/doctorus/prod/flaky")
	if err != nil {
		t.Fatalf("Get after retries: %v", err)
	}
	if param.Value != "ok" {
		t.Errorf("unexpected parameter: %+v", param)
	}
	if requests != 3 {
		t.Errorf("expected 3 requests, got %d", requests)
	}
}

func TestHTTPStoreThrottleExhaustsRetries(t *testing.T) {
	requests := 0
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	_, err := store.Get(context.Background(), "/doctorus/prod/hot")
	if !errors.Is(err, ErrThrottled) {
		t.Fatalf("expected ErrThrottled, got %v", err)
	}
	// initial attempt plus maxRetries
	if requests != 4 {
		t.Errorf("expected 4 requests, got %d", requests)
	}
}

func TestHTTPStoreList(t *testing.T) {
	var gotQuery string
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]Parameter{
			{Path: "/doctorus/prod/api/a", Value: "1", Version: 1},
			{Path: "/doctorus/prod/api/b", Value: "2", Version: 7},
		})
	})

	parameters, err := store.List(context.Background(), "/doctorus/prod/api")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(parameters))
	}
	if gotQuery != "recursive=true" {
		t.Errorf("query = %q, want recursive=true", gotQuery)
	}
}

func TestHTTPStoreAuthFunc(t *testing.T) {
	var gotAuth string
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Parameter{Path: r.URL.Path, Value: "v", Version: 1})
	})
	WithAuthFunc(func(url string) (string, string) {
		return "Authorization", "Bearer token"
	})(store)

	if _, err := store.Get(context.Background(), "/doctorus/prod/secret"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestHTTPStoreContextCancellation(t *testing.T) {
	store := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "/doctorus/prod/x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
