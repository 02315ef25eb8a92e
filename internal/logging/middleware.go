// ABOUTME: HTTP request logging middleware for the mock backend.
// ABOUTME: Records method, path, status, duration and capped bodies to the store.

package logging

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abmusica/maestro/internal/store"
)

const maxBodySize = 10 * 1024 // body capture cap per direction

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
	body       *bytes.Buffer
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.statusCode = http.StatusOK
		rw.written = true
	}
	if rw.body.Len() < maxBodySize {
		toCopy := len(b)
		if rw.body.Len()+toCopy > maxBodySize {
			toCopy = maxBodySize - rw.body.Len()
		}
		rw.body.Write(b[:toCopy])
	}
	return rw.ResponseWriter.Write(b)
}

// Middleware records every API request to the request_logs table. Requests to
// the admin console itself and to the health check are not logged, so the log
// page shows only the traffic the CRUD client generates.
func Middleware(s *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthz" || strings.HasPrefix(r.URL.Path, "/admin") {
				next.ServeHTTP(w, r)
				return
			}

			correlationID := uuid.NewString()
			w.Header().Set("X-Correlation-Id", correlationID)

			var requestBody string
			if r.Body != nil {
				bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
				if err == nil {
					requestBody = string(bodyBytes)
					// Splice the consumed prefix back so the handler sees the full body.
					r.Body = readCloser{io.MultiReader(bytes.NewReader(bodyBytes), r.Body), r.Body}
				}
			}

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				body:           &bytes.Buffer{},
			}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Milliseconds()

			ip := r.RemoteAddr
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
			}

			// Fire and forget: a lost log line must never fail the request.
			go s.LogRequest(&store.RequestLog{
				CorrelationID: correlationID,
				Method:        r.Method,
				Path:          r.URL.Path,
				StatusCode:    wrapped.statusCode,
				DurationMs:    int(duration),
				IPAddress:     ip,
				UserAgent:     r.Header.Get("User-Agent"),
				RequestBody:   requestBody,
				ResponseBody:  wrapped.body.String(),
			})
		})
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}
