// ABOUTME: Tests for the request logging middleware.
// ABOUTME: Verifies capture of method, path, status, bodies, and skip rules.

package logging

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abmusica/maestro/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "logging_test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// waitForLogs polls until the async log write lands.
func waitForLogs(t *testing.T, s *store.Store, want int) []*store.RequestLog {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		logs, err := s.GetRequestLogs(&store.RequestLogQuery{})
		if err != nil {
			t.Fatal(err)
		}
		if len(logs) >= want {
			return logs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d logs, timed out", want)
	return nil
}

func TestMiddlewareLogsRequest(t *testing.T) {
	s := newTestStore(t)

	h := Middleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"firstName":"Ana"}` {
			t.Errorf("handler saw body %q", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	}))

	req := httptest.NewRequest("POST", "/api/musicians", strings.NewReader(`{"firstName":"Ana"}`))
	req.Header.Set("User-Agent", "maestro-test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("X-Correlation-Id") == "" {
		t.Error("correlation id header missing")
	}

	logs := waitForLogs(t, s, 1)
	entry := logs[0]
	if entry.Method != "POST" || entry.Path != "/api/musicians" {
		t.Errorf("logged %s %s", entry.Method, entry.Path)
	}
	if entry.StatusCode != http.StatusCreated {
		t.Errorf("status = %d", entry.StatusCode)
	}
	if entry.RequestBody != `{"firstName":"Ana"}` {
		t.Errorf("request body = %q", entry.RequestBody)
	}
	if entry.ResponseBody != `{"id":1}` {
		t.Errorf("response body = %q", entry.ResponseBody)
	}
	if entry.CorrelationID == "" {
		t.Error("correlation id not stored")
	}
	if entry.UserAgent != "maestro-test" {
		t.Errorf("user agent = %q", entry.UserAgent)
	}
}

func TestMiddlewareSkipsAdminAndHealth(t *testing.T) {
	s := newTestStore(t)

	h := Middleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/healthz", "/admin", "/admin/musicians"} {
		req := httptest.NewRequest("GET", path, nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	// One logged request to have something to wait on.
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/songs", nil))

	logs := waitForLogs(t, s, 1)
	if len(logs) != 1 {
		t.Fatalf("logs = %d, want only the API request", len(logs))
	}
	if logs[0].Path != "/api/songs" {
		t.Errorf("logged path = %q", logs[0].Path)
	}
}

func TestMiddlewareCapsBodies(t *testing.T) {
	s := newTestStore(t)

	large := strings.Repeat("x", 64*1024)
	h := Middleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		// The handler must still see the full body despite the capture cap.
		if len(body) != len(large) {
			t.Errorf("handler saw %d bytes, want %d", len(body), len(large))
		}
		w.Write([]byte(large))
	}))

	req := httptest.NewRequest("POST", "/api/songs", strings.NewReader(large))
	h.ServeHTTP(httptest.NewRecorder(), req)

	logs := waitForLogs(t, s, 1)
	if len(logs[0].RequestBody) != maxBodySize {
		t.Errorf("stored request body = %d bytes, want cap %d", len(logs[0].RequestBody), maxBodySize)
	}
	if len(logs[0].ResponseBody) != maxBodySize {
		t.Errorf("stored response body = %d bytes, want cap %d", len(logs[0].ResponseBody), maxBodySize)
	}
}
