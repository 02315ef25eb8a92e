// ABOUTME: Generic CRUD handlers for the mock backend API.
// ABOUTME: Serves every registered entity resource from the record store.

package mock

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abmusica/maestro/internal/entity"
	"github.com/abmusica/maestro/internal/errors"
	"github.com/abmusica/maestro/internal/store"
)

// Handlers serves the CRUD API the admin console consumes. Every registered
// entity gets the same route set; songs additionally accept multipart creates.
type Handlers struct {
	store *store.Store
}

func NewHandlers(s *store.Store) *Handlers {
	return &Handlers{store: s}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", h.getSettings)
		r.Put("/settings", h.putSettings)
		r.Get("/files/{id}", h.serveFile)

		for _, def := range entity.All() {
			resource := def.Slug
			r.Route("/"+resource, func(r chi.Router) {
				r.Get("/", h.list(resource))
				if resource == "songs" {
					r.Post("/", h.createSong)
				} else {
					r.Post("/", h.create(resource))
				}
				r.Get("/{id}", h.get(resource))
				r.Put("/{id}", h.update(resource))
				r.Patch("/{id}", h.patch(resource))
				r.Delete("/{id}", h.remove(resource))
			})
		}
	})
}

// list returns the full document set of a resource. Pagination and sorting
// happen in the client, so page/pageSize/sortBy params are accepted but not
// applied; only ?search narrows the result server-side.
func (h *Handlers) list(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.store.ListRecords(resource, r.URL.Query().Get("search"))
		if err != nil {
			errors.Write(w, http.StatusInternalServerError, errors.CodeDatabase, "falha ao listar registros")
			return
		}
		docs := make([]map[string]any, 0, len(records))
		for _, record := range records {
			doc, err := record.Doc()
			if err != nil {
				errors.Write(w, http.StatusInternalServerError, errors.CodeInternal, "registro corrompido")
				return
			}
			docs = append(docs, doc)
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func (h *Handlers) create(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := decodeDoc(w, r)
		if !ok {
			return
		}
		record, err := h.store.CreateRecord(resource, doc)
		if err != nil {
			errors.Write(w, http.StatusInternalServerError, errors.CodeDatabase, "falha ao criar registro")
			return
		}
		writeRecord(w, http.StatusCreated, record)
	}
}

func (h *Handlers) get(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}
		record, err := h.store.GetRecord(resource, id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeRecord(w, http.StatusOK, record)
	}
}

func (h *Handlers) update(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}
		doc, ok := decodeDoc(w, r)
		if !ok {
			return
		}
		record, err := h.store.UpdateRecord(resource, id, doc)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeRecord(w, http.StatusOK, record)
	}
}

func (h *Handlers) patch(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}
		doc, ok := decodeDoc(w, r)
		if !ok {
			return
		}
		record, err := h.store.PatchRecord(resource, id, doc)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeRecord(w, http.StatusOK, record)
	}
}

func (h *Handlers) remove(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}
		if err := h.store.DeleteRecord(resource, id); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	theme, err := h.store.GetSetting(store.SettingTheme, store.ThemeSystem)
	if err != nil {
		errors.Write(w, http.StatusInternalServerError, errors.CodeDatabase, "falha ao ler configurações")
		return
	}
	accent, err := h.store.GetSetting(store.SettingAccent, "")
	if err != nil {
		errors.Write(w, http.StatusInternalServerError, errors.CodeDatabase, "falha ao ler configurações")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		store.SettingTheme:  theme,
		store.SettingAccent: accent,
	})
}

func (h *Handlers) putSettings(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errors.Write(w, http.StatusBadRequest, errors.CodeInvalidBody, "corpo da requisição inválido")
		return
	}
	for _, key := range []string{store.SettingTheme, store.SettingAccent} {
		value, present := body[key]
		if !present {
			continue
		}
		if err := h.store.SetSetting(key, value); err != nil {
			errors.Write(w, http.StatusInternalServerError, errors.CodeDatabase, "falha ao salvar configurações")
			return
		}
	}
	h.getSettings(w, r)
}

func recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errors.Write(w, http.StatusBadRequest, errors.CodeInvalidRequest, "id inválido")
		return 0, false
	}
	return id, true
}

func decodeDoc(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || doc == nil {
		errors.Write(w, http.StatusBadRequest, errors.CodeInvalidBody, "corpo da requisição inválido")
		return nil, false
	}
	return doc, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if err == store.ErrNotFound {
		errors.Write(w, http.StatusNotFound, errors.CodeNotFound, "registro não encontrado")
		return
	}
	errors.Write(w, http.StatusInternalServerError, errors.CodeDatabase, "falha ao acessar registros")
}

func writeRecord(w http.ResponseWriter, status int, record *store.Record) {
	doc, err := record.Doc()
	if err != nil {
		errors.Write(w, http.StatusInternalServerError, errors.CodeInternal, "registro corrompido")
		return
	}
	writeJSON(w, status, doc)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
