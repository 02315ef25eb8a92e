// ABOUTME: Song entity with per-instrument parts and sheet/midi attachments.

package entity

import (
	"time"

	"github.com/abmusica/maestro/internal/schema"
)

// SongPart is one instrument part of an arrangement.
type SongPart struct {
	Instrument string `json:"instrument"`
	Voice      string `json:"voice"`
	SheetURL   string `json:"urlSheet"`
	MidiURL    string `json:"urlMidi"`
}

// Song is a piece of the group's repertoire.
type Song struct {
	Base
	Title             string     `json:"title"`
	Author            string     `json:"author"`
	Arranger          string     `json:"arranger,omitempty"`
	CreationDate      Date       `json:"creationDate,omitempty"`
	YoutubeURL        string     `json:"youtubeUrl,omitempty"`
	ReferenceLink     string     `json:"referenceLink,omitempty"`
	FullSheetMusicURL string     `json:"fullSheetMusicUrl,omitempty"`
	FullMidiURL       string     `json:"fullMidiUrl,omitempty"`
	Parts             []SongPart `json:"parts,omitempty"`
}

var SongColumns = []schema.Column{
	{Name: "id", Label: "#", Searchable: schema.Bool(false)},
	{Name: "title", Label: "Título"},
	{Name: "author", Label: "Autor"},
	{Name: schema.ActionsColumn, Label: "Ações", Sortable: schema.Bool(false), Searchable: schema.Bool(false)},
}

// SongFormFields builds the scalar half of the song form. Parts are edited
// through the stepper's add-part/remove-part controls, not as a flat field.
func SongFormFields(s *Song) []schema.Field {
	if s == nil {
		s = &Song{}
	}
	creation := s.CreationDate
	if creation.IsZero() {
		creation = DateOf(time.Now())
	}
	return []schema.Field{
		{Name: "title", Label: "Título", Kind: schema.KindText, Value: s.Title, Required: true},
		{Name: "author", Label: "Autor", Kind: schema.KindText, Value: s.Author, Required: true},
		{Name: "arranger", Label: "Arranjador", Kind: schema.KindText, Value: s.Arranger},
		{Name: "creationDate", Label: "Data", Kind: schema.KindDate, Value: creation.String()},
		{Name: "referenceLink", Label: "YouTube", Kind: schema.KindText, Value: s.ReferenceLink},
	}
}

// SongDetailFields builds the read-only detail view.
func SongDetailFields(s *Song) []schema.DetailField {
	return []schema.DetailField{
		{Label: "Título", Value: s.Title},
		{Label: "Autor", Value: s.Author},
		{Label: "Arranjador", Value: Dash(s.Arranger)},
		{Label: "YouTube", Value: Dash(s.ReferenceLink)},
	}
}

func init() {
	Register(Definition{
		Name:         "Música",
		Slug:         "songs",
		Title:        "Músicas",
		Columns:      SongColumns,
		FormFields:   FormFunc(SongFormFields),
		DetailFields: DetailFunc(SongDetailFields),
	})
}
