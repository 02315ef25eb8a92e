// ABOUTME: Binding between posted HTTP forms and the dynamic form engine.
// ABOUTME: Holds the per-entity form options and the gallery batch form.

package admin

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/entity"
	"github.com/abmusica/maestro/internal/form"
	"github.com/abmusica/maestro/internal/schema"
)

// formOptions returns the form engine options of one entity. Students carry
// the guardian rule; the gallery batch form wires album autofill separately.
func formOptions(slug string) []form.Option {
	if slug == "students" {
		return []form.Option{form.WithGuardianRule("birthDate", "responsibleName", "responsiblePhone")}
	}
	return nil
}

// applyPostedRows replaces the seed rows of every repeater field with the
// rows the browser posted, so form.New starts from the edited state.
func applyPostedRows(fields []schema.Field, values url.Values) {
	for i := range fields {
		if fields[i].Kind != schema.KindMediaRepeater {
			continue
		}
		if _, posted := values[fields[i].Name+"_rows"]; !posted {
			continue
		}
		fields[i].Media = parseRows(fields[i].Name, values)
	}
}

func parseRows(name string, values url.Values) []schema.MediaRow {
	count, _ := strconv.Atoi(values.Get(name + "_rows"))
	if count < 1 {
		count = 1
	}
	rows := make([]schema.MediaRow, 0, count)
	for i := 0; i < count; i++ {
		prefix := name + "_" + strconv.Itoa(i)
		mediaType := values.Get(prefix + "_type")
		if mediaType == "" {
			mediaType = entity.MediaPhoto
		}
		rows = append(rows, schema.MediaRow{
			URL:   values.Get(prefix + "_url"),
			Title: values.Get(prefix + "_title"),
			Type:  mediaType,
			Date:  time.Now(),
		})
	}
	return rows
}

// bindScalars copies posted values into the form. Disabled fields keep their
// defaults; repeater rows are seeded before construction instead.
func bindScalars(f *form.Form, values url.Values) {
	for _, state := range f.Fields() {
		if state.Disabled || state.Desc.Kind == schema.KindMediaRepeater {
			continue
		}
		if posted, ok := values[state.Desc.Name]; ok {
			f.Set(state.Desc.Name, posted[0])
		}
	}
}

// galleryBatchFields is the batch media dialog: one category and description
// shared by every uploaded row.
func galleryBatchFields() []schema.Field {
	return []schema.Field{
		{Name: "category", Label: "Categoria/Evento", Kind: schema.KindText, Required: true,
			Placeholder: entity.DefaultAlbum},
		{Name: "description", Label: "Descrição do Álbum", Kind: schema.KindTextarea},
		{Name: "media", Label: "Mídias", Kind: schema.KindMediaRepeater, Required: true},
	}
}

// albumIndex fetches the existing albums as a category → description map for
// the batch form's autofill.
func (h *Handlers) albumIndex(ctx context.Context) map[string]string {
	var docs []api.Doc
	if err := h.client.Do(ctx, "GET", "gallerys", nil, nil, &docs); err != nil {
		return nil
	}
	items := make([]entity.Gallery, 0, len(docs))
	for _, doc := range docs {
		item, err := entity.FromDoc[entity.Gallery](doc)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	albums := map[string]string{}
	for _, album := range entity.GroupAlbums(items) {
		albums[album.Category] = album.Description()
	}
	return albums
}

// albumRows converts gallery documents to the synthetic album rows of the
// gallery list page.
func albumRows(docs []api.Doc) []api.Doc {
	items := make([]entity.Gallery, 0, len(docs))
	for _, doc := range docs {
		item, err := entity.FromDoc[entity.Gallery](doc)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	albums := entity.GroupAlbums(items)
	rows := make([]api.Doc, 0, len(albums))
	for _, album := range albums {
		rows = append(rows, api.Doc{
			"id":       album.Category,
			"category": album.Category,
			"count":    float64(len(album.Items)),
		})
	}
	return rows
}
