// ABOUTME: Musician entity and its table/form/detail descriptors.

package entity

import (
	"fmt"
	"strings"

	"github.com/abmusica/maestro/internal/form"
	"github.com/abmusica/maestro/internal/schema"
)

// Musician is a member of the group.
type Musician struct {
	Base
	Person
	ProfessionalTitle string `json:"professionalTitle,omitempty"`
	Voice             string `json:"voz,omitempty"`
}

// MusicianColumns lists the musician table columns. The displayed "name"
// column is synthetic and sorts on firstName.
var MusicianColumns = []schema.Column{
	{Name: "id", Label: "#", Searchable: schema.Bool(false)},
	{Name: "name", Label: "Nome", SortField: "firstName"},
	{Name: "email", Label: "E-mail"},
	{Name: "phone", Label: "Telefone", Sortable: schema.Bool(false)},
	{Name: "professionalTitle", Label: "Função"},
	{Name: "voz", Label: "Voz"},
	{Name: schema.ActionsColumn, Label: "Ações"},
}

// VoiceOptions are the choices of the voice select (1st through 4th voice).
var VoiceOptions = []schema.Option{
	{Value: "1", Label: "1ª"},
	{Value: "2", Label: "2ª"},
	{Value: "3", Label: "3ª"},
	{Value: "4", Label: "4ª"},
}

// MusicianFormFields builds the create/edit form; nil builds the blank form.
func MusicianFormFields(m *Musician) []schema.Field {
	if m == nil {
		m = &Musician{}
	}
	return []schema.Field{
		{Name: "firstName", Label: "Nome", Kind: schema.KindText, Value: m.FirstName, Placeholder: "Digite o nome", Required: true},
		{Name: "lastName", Label: "Sobrenome", Kind: schema.KindText, Value: m.LastName, Placeholder: "Digite o sobrenome", Required: true},
		{Name: "email", Label: "Email", Kind: schema.KindEmail, Value: m.Email, Placeholder: "Digite o email", Required: true, Rules: []schema.Rule{form.Email()}},
		{Name: "phone", Label: "Telefone", Kind: schema.KindText, Value: m.Phone, Placeholder: "(11) 98765-4321"},
		{Name: "professionalTitle", Label: "Função", Kind: schema.KindText, Value: m.ProfessionalTitle, Placeholder: "Ex: Maestro, Instrumentista..."},
		{Name: "voz", Label: "Voz", Kind: schema.KindSelect, Value: m.Voice, Options: VoiceOptions},
	}
}

// MusicianDetailFields builds the read-only detail view.
func MusicianDetailFields(m *Musician) []schema.DetailField {
	return []schema.DetailField{
		{Label: "#", Value: m.ID},
		{Label: "Nome", Value: m.FullName()},
		{Label: "Email", Value: m.Email},
		{Label: "Telefone", Value: Dash(m.Phone)},
		{Label: "Função", Value: Dash(m.ProfessionalTitle)},
		{Label: "Voz", Value: Dash(m.Voice)},
	}
}

func deriveFullName(doc map[string]any) {
	first, _ := doc["firstName"].(string)
	last, _ := doc["lastName"].(string)
	doc["name"] = strings.TrimSpace(fmt.Sprintf("%s %s", first, last))
}

func init() {
	Register(Definition{
		Name:         "Músico",
		Slug:         "musicians",
		Title:        "Músicos",
		Columns:      MusicianColumns,
		FormFields:   FormFunc(MusicianFormFields),
		DetailFields: DetailFunc(MusicianDetailFields),
		Derive:       deriveFullName,
	})
}
