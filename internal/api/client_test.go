// ABOUTME: Tests for the API client: query building, retries, typed errors.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func silentLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestQueryValuesOmitsUnset(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want string
	}{
		{"empty", Query{}, ""},
		{"page zero is still sent", Query{Page: Int(0)}, "page=0"},
		{"full", Query{
			Page:      Int(2),
			PageSize:  Int(10),
			SortBy:    "firstName",
			SortOrder: "desc",
			Search:    "ana",
		}, "page=2&pageSize=10&search=ana&sortBy=firstName&sortOrder=desc"},
		{"filters skip empty values", Query{Filters: map[string]string{"instrument": "Trompete", "voice": ""}}, "instrument=Trompete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Values().Encode(); got != tt.want {
				t.Errorf("Values() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURLResolution(t *testing.T) {
	c := NewClient("http://localhost:3000/api/", WithLogger(silentLogger()))
	tests := []struct {
		endpoint string
		want     string
	}{
		{"musicians", "http://localhost:3000/api/musicians"},
		{"/musicians", "http://localhost:3000/api/musicians"},
		{"https://other.example.com/songs", "https://other.example.com/songs"},
	}
	for _, tt := range tests {
		if got := c.URL(tt.endpoint); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.endpoint, got, tt.want)
		}
	}
}

// flakyTransport fails the first n attempts at the connection level.
type flakyTransport struct {
	failures int
	attempts int
	inner    http.RoundTripper
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return nil, fmt.Errorf("connection refused")
	}
	return f.inner.RoundTrip(req)
}

func TestRetryOnceOnNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{"id": 1}})
	}))
	defer server.Close()

	transport := &flakyTransport{failures: 1, inner: http.DefaultTransport}
	c := NewClient(server.URL,
		WithHTTPClient(&http.Client{Transport: transport}),
		WithLogger(silentLogger()))

	var out []map[string]any
	if err := c.Do(context.Background(), http.MethodGet, "musicians", nil, nil, &out); err != nil {
		t.Fatalf("Do after one transient failure: %v", err)
	}
	if transport.attempts != 2 {
		t.Errorf("attempts = %d, want 2", transport.attempts)
	}
}

func TestNetworkErrorAfterRetry(t *testing.T) {
	transport := &flakyTransport{failures: 5, inner: http.DefaultTransport}
	c := NewClient("http://localhost:1",
		WithHTTPClient(&http.Client{Transport: transport}),
		WithLogger(silentLogger()))

	err := c.Do(context.Background(), http.MethodGet, "musicians", nil, nil, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.Status != 0 {
		t.Errorf("status = %d, want 0 for connection failures", apiErr.Status)
	}
	if transport.attempts != 2 {
		t.Errorf("attempts = %d, want exactly one retry", transport.attempts)
	}
}

// cancellingTransport cancels the request's context on the first attempt,
// the way an in-flight request dies when its caller goes away.
type cancellingTransport struct {
	cancel   context.CancelFunc
	attempts int
}

func (tr *cancellingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tr.attempts++
	tr.cancel()
	return nil, context.Canceled
}

func TestCancelledContextIsNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	transport := &cancellingTransport{cancel: cancel}
	c := NewClient("http://localhost:1",
		WithHTTPClient(&http.Client{Transport: transport}),
		WithLogger(silentLogger()))

	err := c.Do(ctx, http.MethodGet, "musicians", nil, nil, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != 0 {
		t.Fatalf("error = %v, want status-0 *Error", err)
	}
	if transport.attempts != 1 {
		t.Errorf("attempts = %d, want no retry after cancellation", transport.attempts)
	}
}

func TestHTTPErrorsAreNotRetried(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "musician not found"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, WithLogger(silentLogger()))
	err := c.Do(context.Background(), http.MethodGet, "musicians/99", nil, nil, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "musician not found" {
		t.Errorf("message = %q, want server envelope message", apiErr.Message)
	}
	if hits != 1 {
		t.Errorf("hits = %d, HTTP errors must not be retried", hits)
	}
}

func TestErrorMessageFallsBackToStatusText(t *testing.T) {
	if got := errorMessage([]byte("not json"), http.StatusBadGateway); got != "Bad Gateway" {
		t.Errorf("errorMessage = %q", got)
	}
}
