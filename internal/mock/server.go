// ABOUTME: Router assembly for the self-hosted mock backend.
// ABOUTME: Stacks recovery, request logging and the stub auth middleware.

package mock

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/abmusica/maestro/internal/auth"
	"github.com/abmusica/maestro/internal/logging"
	"github.com/abmusica/maestro/internal/store"
)

// NewRouter builds the mock backend router. The returned router is also the
// mount point for the admin console, which the caller registers on top.
func NewRouter(s *store.Store) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(logging.Middleware(s))
	r.Use(auth.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	NewHandlers(s).RegisterRoutes(r)
	return r
}
