// ABOUTME: Song-part section of the song form: rendering and form parsing.
// ABOUTME: Parts are indexed input blocks with add-part/remove-part buttons.

package admin

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/entity"
)

// songPartsOf resolves the part list to render: posted state wins over the
// stored document, and the add/remove buttons adjust the count in between.
func songPartsOf(doc api.Doc, r *http.Request) []entity.SongPart {
	if r.Form != nil && r.Form.Get("parts_rows") != "" {
		parts := parseSongParts(r.Form)
		if r.Form.Get("_addpart") != "" {
			parts = append(parts, entity.SongPart{})
		}
		if r.Form.Get("_removepart") != "" && len(parts) > 0 {
			parts = parts[:len(parts)-1]
		}
		return parts
	}
	if doc != nil {
		if song, err := entity.FromDoc[entity.Song](doc); err == nil {
			return song.Parts
		}
	}
	return nil
}

// parseSongParts reads the indexed part blocks back out of a posted form.
func parseSongParts(values url.Values) []entity.SongPart {
	count, _ := strconv.Atoi(values.Get("parts_rows"))
	parts := make([]entity.SongPart, 0, count)
	for i := 0; i < count; i++ {
		prefix := fmt.Sprintf("part_%d_", i)
		parts = append(parts, entity.SongPart{
			Instrument: values.Get(prefix + "instrument"),
			Voice:      values.Get(prefix + "voice"),
			SheetURL:   values.Get(prefix + "urlSheet"),
			MidiURL:    values.Get(prefix + "urlMidi"),
		})
	}
	return parts
}

// renderSongParts generates the part blocks appended to the song form.
func renderSongParts(parts []entity.SongPart) string {
	var sb strings.Builder
	sb.WriteString(`<div><label class="block text-sm font-medium text-gray-700">Partes</label>`)
	sb.WriteString(fmt.Sprintf(`<input type="hidden" name="parts_rows" value="%d">`, len(parts)))

	for i, part := range parts {
		prefix := fmt.Sprintf("part_%d_", i)
		sb.WriteString(`<div class="mt-2 p-3 border rounded space-y-2">`)

		sb.WriteString(fmt.Sprintf(`<select name="%sinstrument" class="%s">`, prefix, inputClass))
		sb.WriteString(`<option value="">Instrumento...</option>`)
		for _, opt := range entity.InstrumentTypeOptions() {
			selected := ""
			if opt.Value == part.Instrument {
				selected = " selected"
			}
			sb.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`,
				html.EscapeString(opt.Value), selected, html.EscapeString(opt.Label)))
		}
		sb.WriteString(`</select>`)

		sb.WriteString(fmt.Sprintf(`<input type="text" name="%svoice" value="%s" placeholder="Voz" class="%s">`,
			prefix, html.EscapeString(part.Voice), inputClass))
		sb.WriteString(fmt.Sprintf(`<input type="text" name="%surlSheet" value="%s" placeholder="URL da partitura" class="%s">`,
			prefix, html.EscapeString(part.SheetURL), inputClass))
		sb.WriteString(fmt.Sprintf(`<input type="text" name="%surlMidi" value="%s" placeholder="URL do MIDI" class="%s">`,
			prefix, html.EscapeString(part.MidiURL), inputClass))
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`<button type="submit" name="_addpart" value="1" formnovalidate class="mt-2 text-sm text-blue-600 hover:text-blue-900">Adicionar parte</button>`)
	if len(parts) > 0 {
		sb.WriteString(` <button type="submit" name="_removepart" value="1" formnovalidate class="mt-2 text-sm text-red-600 hover:text-red-900">Remover última parte</button>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}
