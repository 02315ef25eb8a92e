// ABOUTME: Descriptor-driven HTML renderer for the admin console.
// ABOUTME: Generates list tables, forms and detail views from entity definitions.

package admin

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/entity"
	"github.com/abmusica/maestro/internal/form"
	"github.com/abmusica/maestro/internal/list"
	"github.com/abmusica/maestro/internal/schema"
	"github.com/abmusica/maestro/internal/store"
)

// listView carries the resolved table state of one list page render.
type listView struct {
	Search    string
	SortBy    string
	Desc      bool
	Page      int
	PageSize  int
	Total     int // filtered count before pagination
	Rows      []api.Doc
	Condensed bool
}

// pageShell wraps a page body in the shared layout: nav, theme class, flash.
func pageShell(title, theme, accent, active, flash, body string) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html lang="pt-BR" class="theme-` + html.EscapeString(theme) + `">`)
	sb.WriteString(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	sb.WriteString(`<title>` + html.EscapeString(title) + ` · Maestro</title>`)
	sb.WriteString(`<script src="https://cdn.tailwindcss.com"></script>`)
	if accent != "" {
		sb.WriteString(`<style>:root{--accent:` + html.EscapeString(accent) + `}</style>`)
	}
	sb.WriteString(`</head><body class="bg-gray-100 text-gray-900">`)

	sb.WriteString(`<nav class="bg-white shadow px-6 py-3 flex flex-wrap gap-4 items-center">`)
	sb.WriteString(`<a href="/admin" class="font-bold text-purple-700">Maestro</a>`)
	for _, def := range entity.All() {
		cls := "text-gray-600 hover:text-gray-900"
		if def.Slug == active {
			cls = "text-purple-700 font-medium"
		}
		sb.WriteString(fmt.Sprintf(`<a href="/admin/%s" class="%s">%s</a>`,
			def.Slug, cls, html.EscapeString(def.Title)))
	}
	sb.WriteString(`<a href="/admin/logs" class="text-gray-600 hover:text-gray-900">Logs</a>`)
	sb.WriteString(`<a href="/admin/settings" class="text-gray-600 hover:text-gray-900">Configurações</a>`)
	sb.WriteString(`</nav>`)

	if flash != "" {
		sb.WriteString(`<div class="mx-6 mt-4 rounded bg-green-50 border border-green-200 px-4 py-2 text-sm text-green-800">` +
			html.EscapeString(flash) + `</div>`)
	}

	sb.WriteString(`<main class="p-6">`)
	sb.WriteString(body)
	sb.WriteString(`</main></body></html>`)
	return sb.String()
}

// renderList generates the table page of one entity: search box, sortable
// headers, rows with action links, and the pagination footer.
func renderList(def entity.Definition, view listView) string {
	var sb strings.Builder
	base := "/admin/" + def.Slug

	sb.WriteString(`<div class="flex items-center justify-between mb-4">`)
	sb.WriteString(`<h1 class="text-2xl font-semibold">` + html.EscapeString(def.Title) + `</h1>`)
	sb.WriteString(fmt.Sprintf(`<a href="%s/new" class="px-4 py-2 bg-purple-600 text-white rounded hover:bg-purple-700">Adicionar %s</a>`,
		base, html.EscapeString(def.Name)))
	sb.WriteString(`</div>`)

	// Search submits as a GET so table state lives in the URL.
	sb.WriteString(`<form method="GET" action="` + base + `" class="mb-4">`)
	sb.WriteString(fmt.Sprintf(`<input type="search" name="search" value="%s" placeholder="Pesquisar..." class="w-64 rounded border-gray-300 shadow-sm px-3 py-2 border">`,
		html.EscapeString(view.Search)))
	sb.WriteString(`</form>`)

	sb.WriteString(`<div class="bg-white rounded-lg shadow overflow-x-auto">`)
	sb.WriteString(`<table class="min-w-full divide-y divide-gray-200">`)
	sb.WriteString(`<thead class="bg-gray-50"><tr>`)
	for _, col := range def.Columns {
		sb.WriteString(`<th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">`)
		if col.IsSortable() && col.Name != schema.ActionsColumn {
			sb.WriteString(sortLink(base, view, col))
		} else {
			sb.WriteString(html.EscapeString(col.Label))
		}
		sb.WriteString(`</th>`)
	}
	sb.WriteString(`</tr></thead>`)

	sb.WriteString(`<tbody class="bg-white divide-y divide-gray-200">`)
	if len(view.Rows) == 0 {
		sb.WriteString(fmt.Sprintf(`<tr><td colspan="%d" class="px-6 py-8 text-center text-sm text-gray-500">Nenhum registro encontrado</td></tr>`,
			len(def.Columns)))
	}
	for _, row := range view.Rows {
		sb.WriteString(`<tr>`)
		for _, col := range def.Columns {
			if col.Name == schema.ActionsColumn {
				sb.WriteString(`<td class="px-6 py-4 whitespace-nowrap text-sm space-x-3">`)
				sb.WriteString(renderRowActions(def, base, row))
				sb.WriteString(`</td>`)
				continue
			}
			cell := list.CellString(row[col.Name])
			if col.Template == "image" && cell != "" {
				sb.WriteString(fmt.Sprintf(`<td class="px-6 py-4"><img src="%s" alt="" class="h-10 w-10 rounded object-cover"></td>`,
					html.EscapeString(cell)))
				continue
			}
			sb.WriteString(`<td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">` +
				html.EscapeString(cell) + `</td>`)
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table></div>`)

	sb.WriteString(renderPagination(base, view))
	return sb.String()
}

// sortLink builds a column header that toggles the sort direction and keeps
// the rest of the table state.
func sortLink(base string, view listView, col schema.Column) string {
	q := url.Values{}
	if view.Search != "" {
		q.Set("search", view.Search)
	}
	q.Set("sortBy", col.Name)
	marker := ""
	if view.SortBy == col.Name {
		if view.Desc {
			marker = " ↓"
		} else {
			q.Set("sortOrder", "desc")
			marker = " ↑"
		}
	}
	if view.PageSize != list.DefaultPageSize {
		q.Set("pageSize", strconv.Itoa(view.PageSize))
	}
	return fmt.Sprintf(`<a href="%s?%s" class="hover:text-gray-700">%s%s</a>`,
		base, q.Encode(), html.EscapeString(col.Label), marker)
}

func renderRowActions(def entity.Definition, base string, row api.Doc) string {
	// Gallery rows are synthetic albums keyed by category, not records.
	if def.Slug == "gallerys" {
		return fmt.Sprintf(`<a href="%s/album/%s" class="text-blue-600 hover:text-blue-900">Ver</a>`,
			base, url.PathEscape(list.CellString(row["category"])))
	}
	id := list.DocID(row)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<a href="%s/%d" class="text-blue-600 hover:text-blue-900">Ver</a>`, base, id))
	sb.WriteString(fmt.Sprintf(` <a href="%s/%d/edit" class="text-blue-600 hover:text-blue-900">Editar</a>`, base, id))
	sb.WriteString(fmt.Sprintf(` <form method="POST" action="%s/%d/delete" class="inline" onsubmit="return confirm('Tem certeza que deseja excluir?')">`, base, id))
	sb.WriteString(`<button type="submit" class="text-red-600 hover:text-red-900">Excluir</button></form>`)
	return sb.String()
}

func renderPagination(base string, view listView) string {
	totalPages := (view.Total + view.PageSize - 1) / view.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	var sb strings.Builder
	sb.WriteString(`<div class="mt-4 flex items-center justify-between text-sm text-gray-600">`)
	sb.WriteString(fmt.Sprintf(`<span>Página %d de %d (%d registros)</span>`, view.Page, totalPages, view.Total))

	sb.WriteString(`<div class="space-x-2">`)
	for _, size := range list.PageSizes {
		cls := "text-blue-600 hover:text-blue-900"
		if size == view.PageSize {
			cls = "font-semibold text-gray-900"
		}
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="%s">%d</a>`, pageURL(base, view, view.Page, size), cls, size))
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="space-x-4">`)
	if view.Page > 1 {
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="text-blue-600 hover:text-blue-900">Anterior</a>`, pageURL(base, view, view.Page-1, view.PageSize)))
	}
	if view.Page < totalPages {
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="text-blue-600 hover:text-blue-900">Próxima</a>`, pageURL(base, view, view.Page+1, view.PageSize)))
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}

func pageURL(base string, view listView, page, pageSize int) string {
	q := url.Values{}
	if view.Search != "" {
		q.Set("search", view.Search)
	}
	if view.SortBy != "" {
		q.Set("sortBy", view.SortBy)
		if view.Desc {
			q.Set("sortOrder", "desc")
		}
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize != list.DefaultPageSize {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	if encoded := q.Encode(); encoded != "" {
		return base + "?" + encoded
	}
	return base
}

// renderForm generates a create/edit form from live field states, so
// validation errors and recomputed requirements show after a failed submit.
func renderForm(title, action, cancel string, states []*form.State, extra string) string {
	var sb strings.Builder
	sb.WriteString(`<h1 class="text-2xl font-semibold mb-4">` + html.EscapeString(title) + `</h1>`)
	sb.WriteString(`<form method="POST" action="` + action + `" class="bg-white rounded-lg shadow p-6 space-y-4 max-w-2xl">`)

	for _, state := range states {
		sb.WriteString(`<div>`)
		label := state.Desc.Label
		if state.Required {
			label += " *"
		}
		sb.WriteString(`<label class="block text-sm font-medium text-gray-700">` + html.EscapeString(label) + `</label>`)
		sb.WriteString(renderInput(state))
		if state.Err != "" {
			sb.WriteString(`<p class="mt-1 text-sm text-red-600">` + html.EscapeString(state.Err) + `</p>`)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(extra)

	sb.WriteString(`<div class="flex gap-4">`)
	sb.WriteString(`<button type="submit" class="px-4 py-2 bg-purple-600 text-white rounded hover:bg-purple-700">Salvar</button>`)
	sb.WriteString(`<a href="` + cancel + `" class="px-4 py-2 bg-gray-200 text-gray-700 rounded hover:bg-gray-300">Cancelar</a>`)
	sb.WriteString(`</div></form>`)
	return sb.String()
}

const inputClass = "mt-1 block w-full rounded border-gray-300 shadow-sm px-3 py-2 border"

func renderInput(state *form.State) string {
	name := html.EscapeString(state.Desc.Name)
	value := html.EscapeString(list.CellString(state.Value))
	disabled := ""
	if state.Disabled {
		disabled = " readonly"
	}
	required := ""
	if state.Required {
		required = " required"
	}

	switch state.Desc.Kind {
	case schema.KindTextarea:
		return fmt.Sprintf(`<textarea name="%s"%s%s class="%s">%s</textarea>`,
			name, required, disabled, inputClass, value)
	case schema.KindSelect:
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf(`<select name="%s"%s%s class="%s">`, name, required, disabled, inputClass))
		sb.WriteString(`<option value="">Selecione...</option>`)
		for _, opt := range state.Desc.Options {
			selected := ""
			if opt.Value == list.CellString(state.Value) {
				selected = " selected"
			}
			sb.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`,
				html.EscapeString(opt.Value), selected, html.EscapeString(opt.Label)))
		}
		sb.WriteString(`</select>`)
		return sb.String()
	case schema.KindDate:
		return fmt.Sprintf(`<input type="date" name="%s" value="%s"%s%s class="%s">`,
			name, value, required, disabled, inputClass)
	case schema.KindEmail:
		return fmt.Sprintf(`<input type="email" name="%s" value="%s"%s%s class="%s">`,
			name, value, required, disabled, inputClass)
	case schema.KindNumber:
		return fmt.Sprintf(`<input type="number" step="any" name="%s" value="%s"%s%s class="%s">`,
			name, value, required, disabled, inputClass)
	case schema.KindMediaRepeater:
		return renderRepeater(state)
	default:
		placeholder := ""
		if state.Desc.Placeholder != "" {
			placeholder = fmt.Sprintf(` placeholder="%s"`, html.EscapeString(state.Desc.Placeholder))
		}
		return fmt.Sprintf(`<input type="text" name="%s" value="%s"%s%s%s class="%s">`,
			name, value, placeholder, required, disabled, inputClass)
	}
}

// renderRepeater lays out the media rows as indexed input groups. Row count
// changes round-trip through the rows hidden field plus add/remove buttons.
func renderRepeater(state *form.State) string {
	name := state.Desc.Name
	rows := state.Rows
	if len(rows) == 0 {
		rows = []schema.MediaRow{{}}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<input type="hidden" name="%s_rows" value="%d">`, html.EscapeString(name), len(rows)))
	for i, row := range rows {
		prefix := fmt.Sprintf("%s_%d", name, i)
		sb.WriteString(`<div class="mt-2 p-3 border rounded space-y-2">`)
		sb.WriteString(fmt.Sprintf(`<input type="text" name="%s_url" value="%s" placeholder="URL" class="%s">`,
			prefix, html.EscapeString(row.URL), inputClass))
		sb.WriteString(fmt.Sprintf(`<input type="text" name="%s_title" value="%s" placeholder="Título" class="%s">`,
			prefix, html.EscapeString(row.Title), inputClass))
		sb.WriteString(fmt.Sprintf(`<select name="%s_type" class="%s">`, prefix, inputClass))
		for _, opt := range []schema.Option{{Value: "photo", Label: "Foto"}, {Value: "video", Label: "Vídeo"}} {
			selected := ""
			if opt.Value == row.Type {
				selected = " selected"
			}
			sb.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, opt.Value, selected, opt.Label))
		}
		sb.WriteString(`</select></div>`)
	}
	sb.WriteString(fmt.Sprintf(`<button type="submit" name="_addrow" value="%s" formnovalidate class="mt-2 text-sm text-blue-600 hover:text-blue-900">Adicionar mídia</button>`,
		html.EscapeString(name)))
	if len(rows) > 1 {
		sb.WriteString(fmt.Sprintf(` <button type="submit" name="_removerow" value="%s" formnovalidate class="mt-2 text-sm text-red-600 hover:text-red-900">Remover última</button>`,
			html.EscapeString(name)))
	}
	return sb.String()
}

// renderDetail generates the read-only detail view.
func renderDetail(title, backURL, editURL string, fields []schema.DetailField) string {
	var sb strings.Builder
	sb.WriteString(`<div class="flex items-center justify-between mb-4">`)
	sb.WriteString(`<h1 class="text-2xl font-semibold">` + html.EscapeString(title) + `</h1>`)
	sb.WriteString(`<div class="space-x-3">`)
	sb.WriteString(`<a href="` + editURL + `" class="text-blue-600 hover:text-blue-900">Editar</a>`)
	sb.WriteString(`<a href="` + backURL + `" class="text-gray-600 hover:text-gray-900">Voltar</a>`)
	sb.WriteString(`</div></div>`)

	sb.WriteString(`<div class="bg-white rounded-lg shadow overflow-hidden max-w-2xl"><dl class="divide-y divide-gray-200">`)
	for _, field := range fields {
		sb.WriteString(`<div class="px-6 py-4 grid grid-cols-3 gap-4">`)
		sb.WriteString(`<dt class="text-sm font-medium text-gray-500">` + html.EscapeString(field.Label) + `</dt>`)
		display := field.Display()
		if display == "" {
			sb.WriteString(`<dd class="text-sm text-gray-400 col-span-2">—</dd>`)
		} else {
			sb.WriteString(`<dd class="text-sm text-gray-900 col-span-2">` + html.EscapeString(display) + `</dd>`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</dl></div>`)
	return sb.String()
}

// renderAlbum generates the gallery album view: every media item of one
// category with its own actions.
func renderAlbum(album entity.Album) string {
	var sb strings.Builder
	sb.WriteString(`<div class="flex items-center justify-between mb-4">`)
	sb.WriteString(`<h1 class="text-2xl font-semibold">` + html.EscapeString(album.Category) + `</h1>`)
	sb.WriteString(`<a href="/admin/gallerys" class="text-gray-600 hover:text-gray-900">Voltar</a>`)
	sb.WriteString(`</div>`)
	if desc := album.Description(); desc != "" {
		sb.WriteString(`<p class="mb-4 text-sm text-gray-600">` + html.EscapeString(desc) + `</p>`)
	}

	sb.WriteString(`<div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-4">`)
	for _, item := range album.Items {
		kind := "📷"
		if item.Type == entity.MediaVideo {
			kind = "🎥"
		}
		sb.WriteString(`<div class="bg-white rounded-lg shadow p-4">`)
		sb.WriteString(fmt.Sprintf(`<div class="text-sm font-medium">%s %s</div>`, kind, html.EscapeString(item.Title)))
		if !item.Date.IsZero() {
			sb.WriteString(`<div class="text-xs text-gray-500 mt-1">` + item.Date.Time.Format("02/01/2006") + `</div>`)
		}
		sb.WriteString(`<div class="mt-2 space-x-3 text-sm">`)
		sb.WriteString(fmt.Sprintf(`<a href="/admin/gallerys/%d" class="text-blue-600 hover:text-blue-900">Ver</a>`, item.ID))
		sb.WriteString(fmt.Sprintf(`<a href="/admin/gallerys/%d/edit" class="text-blue-600 hover:text-blue-900">Editar</a>`, item.ID))
		sb.WriteString(fmt.Sprintf(`<form method="POST" action="/admin/gallerys/%d/delete" class="inline" onsubmit="return confirm('Tem certeza que deseja excluir?')">`, item.ID))
		sb.WriteString(`<button type="submit" class="text-red-600 hover:text-red-900">Excluir</button></form>`)
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// renderDashboard generates the landing page: record counts per entity.
func renderDashboard(counts map[string]int, requests int) string {
	var sb strings.Builder
	sb.WriteString(`<h1 class="text-2xl font-semibold mb-4">Painel</h1>`)
	sb.WriteString(`<div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-4">`)
	for _, def := range entity.All() {
		sb.WriteString(`<a href="/admin/` + def.Slug + `" class="bg-white rounded-lg shadow p-6 hover:shadow-md">`)
		sb.WriteString(`<div class="text-sm text-gray-500">` + html.EscapeString(def.Title) + `</div>`)
		sb.WriteString(fmt.Sprintf(`<div class="text-3xl font-semibold mt-1">%d</div>`, counts[def.Slug]))
		sb.WriteString(`</a>`)
	}
	sb.WriteString(`<a href="/admin/logs" class="bg-white rounded-lg shadow p-6 hover:shadow-md">`)
	sb.WriteString(`<div class="text-sm text-gray-500">Requisições</div>`)
	sb.WriteString(fmt.Sprintf(`<div class="text-3xl font-semibold mt-1">%d</div>`, requests))
	sb.WriteString(`</a></div>`)
	return sb.String()
}

// renderSettings generates the theme and accent preferences form.
func renderSettings(theme, accent string) string {
	var sb strings.Builder
	sb.WriteString(`<h1 class="text-2xl font-semibold mb-4">Configurações</h1>`)
	sb.WriteString(`<form method="POST" action="/admin/settings" class="bg-white rounded-lg shadow p-6 space-y-4 max-w-md">`)

	sb.WriteString(`<div><label class="block text-sm font-medium text-gray-700">Tema</label>`)
	sb.WriteString(`<select name="theme" class="` + inputClass + `">`)
	for _, opt := range []schema.Option{
		{Value: store.ThemeLight, Label: "Claro"},
		{Value: store.ThemeDark, Label: "Escuro"},
		{Value: store.ThemeSystem, Label: "Sistema"},
	} {
		selected := ""
		if opt.Value == theme {
			selected = " selected"
		}
		sb.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, opt.Value, selected, opt.Label))
	}
	sb.WriteString(`</select></div>`)

	sb.WriteString(`<div><label class="block text-sm font-medium text-gray-700">Cor de destaque</label>`)
	sb.WriteString(fmt.Sprintf(`<input type="text" name="accent" value="%s" placeholder="#7c3aed" class="%s"></div>`,
		html.EscapeString(accent), inputClass))

	sb.WriteString(`<button type="submit" class="px-4 py-2 bg-purple-600 text-white rounded hover:bg-purple-700">Salvar</button>`)
	sb.WriteString(`</form>`)
	return sb.String()
}

// renderLogs generates the request log console.
func renderLogs(logs []*store.RequestLog, method, path string, status int) string {
	var sb strings.Builder
	sb.WriteString(`<h1 class="text-2xl font-semibold mb-4">Logs de Requisições</h1>`)

	sb.WriteString(`<form method="GET" action="/admin/logs" class="mb-4 flex gap-3">`)
	sb.WriteString(`<select name="method" class="rounded border-gray-300 px-3 py-2 border"><option value="">Método</option>`)
	for _, m := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		selected := ""
		if m == method {
			selected = " selected"
		}
		sb.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, m, selected, m))
	}
	sb.WriteString(`</select>`)
	sb.WriteString(fmt.Sprintf(`<input type="text" name="path" value="%s" placeholder="Caminho" class="rounded border-gray-300 px-3 py-2 border">`,
		html.EscapeString(path)))
	statusValue := ""
	if status > 0 {
		statusValue = strconv.Itoa(status)
	}
	sb.WriteString(fmt.Sprintf(`<input type="number" name="status" value="%s" placeholder="Status" class="w-24 rounded border-gray-300 px-3 py-2 border">`,
		statusValue))
	sb.WriteString(`<button type="submit" class="px-4 py-2 bg-purple-600 text-white rounded hover:bg-purple-700">Filtrar</button>`)
	sb.WriteString(`</form>`)

	sb.WriteString(`<div class="bg-white rounded-lg shadow overflow-x-auto"><table class="min-w-full divide-y divide-gray-200">`)
	sb.WriteString(`<thead class="bg-gray-50"><tr>`)
	for _, header := range []string{"Hora", "Método", "Caminho", "Status", "Duração", "Correlação"} {
		sb.WriteString(`<th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">` + header + `</th>`)
	}
	sb.WriteString(`</tr></thead><tbody class="bg-white divide-y divide-gray-200">`)
	for _, entry := range logs {
		statusClass := "text-green-700"
		if entry.StatusCode >= 400 {
			statusClass = "text-red-700"
		}
		sb.WriteString(`<tr>`)
		sb.WriteString(`<td class="px-6 py-3 text-sm text-gray-500">` + entry.Timestamp.Format("02/01 15:04:05") + `</td>`)
		sb.WriteString(`<td class="px-6 py-3 text-sm font-mono">` + html.EscapeString(entry.Method) + `</td>`)
		sb.WriteString(`<td class="px-6 py-3 text-sm font-mono">` + html.EscapeString(entry.Path) + `</td>`)
		sb.WriteString(fmt.Sprintf(`<td class="px-6 py-3 text-sm %s">%d</td>`, statusClass, entry.StatusCode))
		sb.WriteString(fmt.Sprintf(`<td class="px-6 py-3 text-sm text-gray-500">%d ms</td>`, entry.DurationMs))
		sb.WriteString(`<td class="px-6 py-3 text-xs font-mono text-gray-400">` + html.EscapeString(entry.CorrelationID) + `</td>`)
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table></div>`)
	return sb.String()
}
