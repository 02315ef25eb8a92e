// ABOUTME: Gallery media entity and album grouping by category.

package entity

import (
	"sort"
	"time"

	"github.com/abmusica/maestro/internal/schema"
)

// Media types of a gallery record.
const (
	MediaPhoto = "photo"
	MediaVideo = "video"
)

// DefaultAlbum is the bucket for records without a category.
const DefaultAlbum = "Geral"

// Gallery is a single photo or video record. Albums are not stored; they are
// grouped on the fly from the category field.
type Gallery struct {
	Base
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        Date   `json:"date,omitempty"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Category    string `json:"category,omitempty"`
}

// Album is a derived view: every gallery record sharing a category.
type Album struct {
	Category string
	Items    []Gallery
}

// Description returns the first non-empty item description of the album.
func (a Album) Description() string {
	for _, item := range a.Items {
		if item.Description != "" {
			return item.Description
		}
	}
	return ""
}

// Cover returns the URL of the newest item, used as the album thumbnail.
func (a Album) Cover() string {
	if len(a.Items) == 0 {
		return ""
	}
	return a.Items[0].URL
}

// GroupAlbums buckets gallery records by category (empty falls into the
// default album), newest item first inside each album, and orders albums by
// their most recent item.
func GroupAlbums(items []Gallery) []Album {
	buckets := make(map[string][]Gallery)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = DefaultAlbum
		}
		buckets[category] = append(buckets[category], item)
	}

	albums := make([]Album, 0, len(buckets))
	for category, group := range buckets {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.After(group[j].Date.Time)
		})
		albums = append(albums, Album{Category: category, Items: group})
	}
	sort.SliceStable(albums, func(i, j int) bool {
		return newestOf(albums[i]).After(newestOf(albums[j]))
	})
	return albums
}

func newestOf(a Album) time.Time {
	if len(a.Items) == 0 {
		return time.Time{}
	}
	return a.Items[0].Date.Time
}

// GalleryColumns lists the synthetic album rows of the gallery page.
var GalleryColumns = []schema.Column{
	{Name: "category", Label: "Álbum"},
	{Name: "count", Label: "Qtd. de Mídias"},
	{Name: schema.ActionsColumn, Label: "Ações"},
}

var mediaTypeOptions = []schema.Option{
	{Value: MediaPhoto, Label: "Foto"},
	{Value: MediaVideo, Label: "Vídeo"},
}

// GalleryFormFields builds the single-record create/edit form. The gallery
// page replaces creation with the batch dialog, but editing one record still
// uses this form.
func GalleryFormFields(g *Gallery) []schema.Field {
	if g == nil {
		g = &Gallery{Type: MediaPhoto}
	}
	date := g.Date
	if date.IsZero() {
		date = DateOf(time.Now())
	}
	return []schema.Field{
		{Name: "title", Label: "Título", Kind: schema.KindText, Value: g.Title, Required: true},
		{Name: "type", Label: "Tipo de Média", Kind: schema.KindSelect, Value: g.Type, Options: mediaTypeOptions, Required: true},
		{Name: "date", Label: "Data do Registo", Kind: schema.KindDate, Value: date.String(), Required: true},
		{Name: "url", Label: "URL do Ficheiro / Link", Kind: schema.KindText, Value: g.URL, Placeholder: "https://...", Required: true},
		{Name: "category", Label: "Categoria/Evento", Kind: schema.KindText, Value: g.Category},
		{Name: "description", Label: "Descrição", Kind: schema.KindTextarea, Value: g.Description},
	}
}

// GalleryDetailFields builds the read-only detail view.
func GalleryDetailFields(g *Gallery) []schema.DetailField {
	kind := "📷 Foto"
	if g.Type == MediaVideo {
		kind = "🎥 Vídeo"
	}
	return []schema.DetailField{
		{Label: "#", Value: g.ID},
		{Label: "Título", Value: g.Title},
		{Label: "Tipo", Value: kind},
		{Label: "Data", Value: Dash(g.Date.String())},
		{Label: "Categoria", Value: Dash(g.Category)},
		{Label: "Link", Value: g.URL},
		{Label: "Descrição", Value: Dash(g.Description)},
	}
}

func init() {
	Register(Definition{
		Name:         "Mídia",
		Slug:         "gallerys",
		Title:        "Galeria",
		Columns:      GalleryColumns,
		FormFields:   FormFunc(GalleryFormFields),
		DetailFields: DetailFunc(GalleryDetailFields),
	})
}
