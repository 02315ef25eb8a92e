// ABOUTME: HTTP handlers for the admin console pages.
// ABOUTME: Serves the dashboard, entity CRUD pages, gallery albums, logs and settings.

package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/entity"
	"github.com/abmusica/maestro/internal/form"
	"github.com/abmusica/maestro/internal/list"
	"github.com/abmusica/maestro/internal/schema"
	"github.com/abmusica/maestro/internal/store"
)

// Handlers serves the admin console. Data flows through the CRUD client, not
// the store directly, so the console exercises the same API contract as any
// other consumer; the store is only read for settings and request logs.
type Handlers struct {
	store  *store.Store
	client *api.Client
	logger *log.Logger
}

func NewHandlers(s *store.Store, client *api.Client) *Handlers {
	return &Handlers{
		store:  s,
		client: client,
		logger: log.New(os.Stderr, "[admin] ", log.LstdFlags),
	}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", h.dashboard)
		r.Get("/logs", h.logs)
		r.Get("/settings", h.settingsPage)
		r.Post("/settings", h.settingsSave)

		r.Route("/{resource}", func(r chi.Router) {
			r.Get("/", h.listPage)
			r.Get("/new", h.newPage)
			r.Post("/", h.create)
			r.Get("/album/{category}", h.galleryAlbum)
			r.Get("/{id}", h.detailPage)
			r.Get("/{id}/edit", h.editPage)
			r.Post("/{id}", h.update)
			r.Post("/{id}/delete", h.remove)
		})
	})
}

// definition resolves the {resource} URL segment against the registry.
func definition(r *http.Request) (entity.Definition, bool) {
	return entity.Get(chi.URLParam(r, "resource"))
}

// shell renders a page body inside the layout with the persisted theme.
func (h *Handlers) shell(w http.ResponseWriter, r *http.Request, title, active, body string) {
	theme, _ := h.store.GetSetting(store.SettingTheme, store.ThemeSystem)
	accent, _ := h.store.GetSetting(store.SettingAccent, "")
	flash := r.URL.Query().Get("msg")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, pageShell(title, theme, accent, active, flash, body))
}

func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, target, msg string) {
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int{}
	for _, def := range entity.All() {
		n, err := h.store.CountRecords(def.Slug)
		if err != nil {
			h.logger.Printf("count %s: %v", def.Slug, err)
		}
		counts[def.Slug] = n
	}
	requests, _ := h.store.CountRequestLogs()
	h.shell(w, r, "Painel", "", renderDashboard(counts, requests))
}

// fetchDocs loads the full document set of an entity through the CRUD client.
func (h *Handlers) fetchDocs(ctx context.Context, def entity.Definition) ([]api.Doc, error) {
	var docs []api.Doc
	if err := h.client.Do(ctx, http.MethodGet, def.Resource(), nil, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *Handlers) fetchDoc(ctx context.Context, def entity.Definition, id string) (api.Doc, error) {
	var doc api.Doc
	if err := h.client.Do(ctx, http.MethodGet, def.Resource()+"/"+id, nil, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (h *Handlers) listPage(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	docs, err := h.fetchDocs(r.Context(), def)
	if err != nil {
		h.logger.Printf("list %s: %v", def.Slug, err)
		h.shell(w, r, def.Title, def.Slug,
			`<div class="rounded bg-red-50 border border-red-200 px-4 py-3 text-red-800">Erro ao carregar dados</div>`)
		return
	}
	if def.Slug == "gallerys" {
		docs = albumRows(docs)
	}
	if def.Derive != nil {
		for _, doc := range docs {
			def.Derive(doc)
		}
	}

	q := r.URL.Query()
	view := listView{
		Search:   q.Get("search"),
		SortBy:   q.Get("sortBy"),
		Desc:     q.Get("sortOrder") == "desc",
		PageSize: list.DefaultPageSize,
	}
	if size, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		for _, offered := range list.PageSizes {
			if size == offered {
				view.PageSize = size
			}
		}
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	rows := list.Filter(docs, view.Search, def.Columns)
	view.Total = len(rows)
	rows = list.Sort(rows, def.Columns, view.SortBy, view.Desc)
	// Paginate works on 0-based page indexes; the query param and the
	// rendered page number are 1-based.
	view.Rows, view.Page = list.Paginate(rows, page-1, view.PageSize)
	view.Page++

	h.shell(w, r, def.Title, def.Slug, renderList(def, view))
}

func (h *Handlers) newPage(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	f := h.buildForm(r.Context(), def, nil, nil)
	h.renderFormPage(w, r, def, f, nil, "")
}

func (h *Handlers) editPage(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	doc, err := h.fetchDoc(r.Context(), def, chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	f := form.New(def.FormFields(doc), formOptions(def.Slug)...)
	h.renderFormPage(w, r, def, f, doc, chi.URLParam(r, "id"))
}

// buildForm constructs the create form of an entity. The gallery replaces
// single-record creation with the batch media dialog.
func (h *Handlers) buildForm(ctx context.Context, def entity.Definition, doc api.Doc, posted url.Values) *form.Form {
	if def.Slug == "gallerys" && doc == nil {
		fields := galleryBatchFields()
		if posted != nil {
			applyPostedRows(fields, posted)
		}
		return form.New(fields, form.WithAlbumAutofill("category", "description", h.albumIndex(ctx)))
	}
	fields := def.FormFields(doc)
	if posted != nil {
		applyPostedRows(fields, posted)
	}
	return form.New(fields, formOptions(def.Slug)...)
}

func (h *Handlers) renderFormPage(w http.ResponseWriter, r *http.Request, def entity.Definition, f *form.Form, doc api.Doc, id string) {
	base := "/admin/" + def.Slug
	action := base
	title := "Adicionar " + def.Name
	if id != "" {
		action = base + "/" + id
		title = "Editar " + def.Name
	}

	extra := ""
	if def.Slug == "songs" {
		extra = renderSongParts(songPartsOf(doc, r))
	}
	h.shell(w, r, title, def.Slug, renderForm(title, action, base, f.Fields(), extra))
}

func (h *Handlers) create(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	r.ParseForm()
	f := h.buildForm(r.Context(), def, nil, r.Form)
	bindScalars(f, r.Form)

	if h.handleRowButtons(w, r, def, f, "") {
		return
	}

	values, err := f.Submit()
	var invalid *form.InvalidError
	if errors.As(err, &invalid) {
		h.renderFormPage(w, r, def, f, nil, "")
		return
	}
	if err != nil {
		h.redirect(w, r, "/admin/"+def.Slug, "Erro ao criar "+def.Name)
		return
	}

	if def.Slug == "gallerys" {
		h.createGalleryBatch(w, r, def, values)
		return
	}
	if def.Slug == "songs" {
		values["parts"] = parseSongParts(r.Form)
	}

	if err := h.client.Do(r.Context(), http.MethodPost, def.Resource(), nil, values, nil); err != nil {
		h.logger.Printf("create %s: %v", def.Slug, err)
		h.redirect(w, r, "/admin/"+def.Slug, "Erro ao criar "+def.Name)
		return
	}
	h.redirect(w, r, "/admin/"+def.Slug, def.Name+" criado com sucesso")
}

// createGalleryBatch saves each repeater row as an individual gallery record
// bearing the shared category.
func (h *Handlers) createGalleryBatch(w http.ResponseWriter, r *http.Request, def entity.Definition, values map[string]any) {
	category, _ := values["category"].(string)
	description, _ := values["description"].(string)

	// Submit already validated and dropped blank rows.
	mediaRows, _ := values["media"].([]schema.MediaRow)
	saved := 0
	for _, row := range mediaRows {
		doc := map[string]any{
			"title":       row.Title,
			"type":        row.Type,
			"url":         row.URL,
			"date":        row.Date.Format("2006-01-02"),
			"category":    category,
			"description": description,
		}
		if err := h.client.Do(r.Context(), http.MethodPost, def.Resource(), nil, doc, nil); err != nil {
			h.logger.Printf("create gallery item: %v", err)
			h.redirect(w, r, "/admin/gallerys", "Erro ao criar Mídia")
			return
		}
		saved++
	}
	h.redirect(w, r, "/admin/gallerys", fmt.Sprintf("%d mídias criadas com sucesso", saved))
}

// handleRowButtons services the repeater and song-part add/remove buttons,
// which re-render the form instead of submitting it.
func (h *Handlers) handleRowButtons(w http.ResponseWriter, r *http.Request, def entity.Definition, f *form.Form, id string) bool {
	if name := r.Form.Get("_addrow"); name != "" {
		f.AddRow(name, schema.MediaRow{Type: entity.MediaPhoto})
		h.renderFormPage(w, r, def, f, nil, id)
		return true
	}
	if name := r.Form.Get("_removerow"); name != "" {
		rows, err := f.Rows(name)
		if err == nil && len(rows) > 1 {
			f.RemoveRow(name, len(rows)-1)
		}
		h.renderFormPage(w, r, def, f, nil, id)
		return true
	}
	if r.Form.Get("_addpart") != "" || r.Form.Get("_removepart") != "" {
		h.renderFormPage(w, r, def, f, nil, id)
		return true
	}
	return false
}

func (h *Handlers) update(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	id := chi.URLParam(r, "id")
	doc, err := h.fetchDoc(r.Context(), def, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	r.ParseForm()
	fields := def.FormFields(doc)
	applyPostedRows(fields, r.Form)
	f := form.New(fields, formOptions(def.Slug)...)
	bindScalars(f, r.Form)

	if h.handleRowButtons(w, r, def, f, id) {
		return
	}

	values, err := f.Submit()
	var invalid *form.InvalidError
	if errors.As(err, &invalid) {
		h.renderFormPage(w, r, def, f, doc, id)
		return
	}
	if err != nil {
		h.redirect(w, r, "/admin/"+def.Slug, "Erro ao atualizar "+def.Name)
		return
	}
	if def.Slug == "songs" {
		values["parts"] = parseSongParts(r.Form)
	}

	if err := h.client.Do(r.Context(), http.MethodPut, def.Resource()+"/"+id, nil, values, nil); err != nil {
		h.logger.Printf("update %s/%s: %v", def.Slug, id, err)
		h.redirect(w, r, "/admin/"+def.Slug, "Erro ao atualizar "+def.Name)
		return
	}
	h.redirect(w, r, "/admin/"+def.Slug, def.Name+" atualizado com sucesso")
}

func (h *Handlers) detailPage(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	id := chi.URLParam(r, "id")
	doc, err := h.fetchDoc(r.Context(), def, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	base := "/admin/" + def.Slug
	title := def.Name
	body := renderDetail(title, base, base+"/"+id+"/edit", def.DetailFields(doc))
	h.shell(w, r, title, def.Slug, body)
}

func (h *Handlers) remove(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.client.Do(r.Context(), http.MethodDelete, def.Resource()+"/"+id, nil, nil, nil); err != nil {
		h.logger.Printf("delete %s/%s: %v", def.Slug, id, err)
		h.redirect(w, r, "/admin/"+def.Slug, "Erro ao excluir "+def.Name)
		return
	}
	h.redirect(w, r, "/admin/"+def.Slug, def.Name+" excluído com sucesso")
}

func (h *Handlers) galleryAlbum(w http.ResponseWriter, r *http.Request) {
	def, ok := definition(r)
	if !ok || def.Slug != "gallerys" {
		http.NotFound(w, r)
		return
	}
	category, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	docs, err := h.fetchDocs(r.Context(), def)
	if err != nil {
		h.shell(w, r, def.Title, def.Slug,
			`<div class="rounded bg-red-50 border border-red-200 px-4 py-3 text-red-800">Erro ao carregar dados</div>`)
		return
	}
	items := make([]entity.Gallery, 0, len(docs))
	for _, doc := range docs {
		item, err := entity.FromDoc[entity.Gallery](doc)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	for _, album := range entity.GroupAlbums(items) {
		if album.Category == category {
			h.shell(w, r, album.Category, def.Slug, renderAlbum(album))
			return
		}
	}
	http.NotFound(w, r)
}

func (h *Handlers) logs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, _ := strconv.Atoi(q.Get("status"))
	logs, err := h.store.GetRequestLogs(&store.RequestLogQuery{
		Limit:      100,
		Method:     q.Get("method"),
		PathPrefix: q.Get("path"),
		StatusCode: status,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.shell(w, r, "Logs", "", renderLogs(logs, q.Get("method"), q.Get("path"), status))
}

func (h *Handlers) settingsPage(w http.ResponseWriter, r *http.Request) {
	theme, _ := h.store.GetSetting(store.SettingTheme, store.ThemeSystem)
	accent, _ := h.store.GetSetting(store.SettingAccent, "")
	h.shell(w, r, "Configurações", "", renderSettings(theme, accent))
}

func (h *Handlers) settingsSave(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	theme := r.Form.Get("theme")
	switch theme {
	case store.ThemeLight, store.ThemeDark, store.ThemeSystem:
	default:
		theme = store.ThemeSystem
	}
	if err := h.store.SetSetting(store.SettingTheme, theme); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.store.SetSetting(store.SettingAccent, r.Form.Get("accent")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.redirect(w, r, "/admin/settings", "Configurações salvas")
}
