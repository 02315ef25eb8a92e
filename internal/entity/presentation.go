// ABOUTME: Presentation (concert/event) entity with attached media.

package entity

import (
	"strings"
	"time"

	"github.com/abmusica/maestro/internal/form"
	"github.com/abmusica/maestro/internal/schema"
)

// Presentation is a concert or public event of the group.
type Presentation struct {
	Base
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	Date             Date    `json:"date,omitempty"`
	Location         string  `json:"location,omitempty"`
	ResponsibleName  string  `json:"responsibleName,omitempty"`
	ResponsiblePhone string  `json:"responsiblePhone,omitempty"`
	ResponsibleEmail string  `json:"responsibleEmail,omitempty"`
	Media            []Media `json:"midiaUrl,omitempty"`
}

var PresentationColumns = []schema.Column{
	{Name: "id", Label: "#"},
	{Name: "date", Label: "Data"},
	{Name: "title", Label: "Título"},
	{Name: "description", Label: "Descrição", Sortable: schema.Bool(false), Searchable: schema.Bool(false)},
	{Name: "midiaUrl", Label: "Mídias", Sortable: schema.Bool(false), Searchable: schema.Bool(false)},
	{Name: schema.ActionsColumn, Label: "Ações"},
}

// MediaRows converts the attached media into repeater seed rows.
func (p *Presentation) MediaRows() []schema.MediaRow {
	rows := make([]schema.MediaRow, len(p.Media))
	for i, m := range p.Media {
		rows[i] = schema.MediaRow{URL: m.URL, Title: m.Title, Type: m.Type}
	}
	return rows
}

// PresentationFormFields builds the create/edit form; the media list is a
// repeater field instead of one URL per line.
func PresentationFormFields(p *Presentation) []schema.Field {
	if p == nil {
		p = &Presentation{}
	}
	date := p.Date
	if date.IsZero() {
		date = DateOf(time.Now())
	}
	return []schema.Field{
		{Name: "title", Label: "Título", Kind: schema.KindText, Value: p.Title, Placeholder: "Digite o título", Required: true},
		{Name: "description", Label: "Descrição", Kind: schema.KindText, Value: p.Description, Placeholder: "Digite a descrição"},
		{Name: "date", Label: "Data", Kind: schema.KindDate, Value: date.String(), Placeholder: "Digite a data", Required: true},
		{Name: "location", Label: "Localização", Kind: schema.KindText, Value: p.Location, Placeholder: "Digite a localização", Required: true},
		{Name: "responsibleName", Label: "Nome do Responsável", Kind: schema.KindText, Value: p.ResponsibleName, Placeholder: "Digite o nome do responsável"},
		{Name: "responsiblePhone", Label: "Telefone do Responsável", Kind: schema.KindText, Value: p.ResponsiblePhone, Placeholder: "(11) 98765-4321"},
		{Name: "responsibleEmail", Label: "Email do Responsável", Kind: schema.KindEmail, Value: p.ResponsibleEmail, Placeholder: "Digite o email do responsável", Rules: []schema.Rule{form.Email()}},
		{Name: "midiaUrl", Label: "Mídias", Kind: schema.KindMediaRepeater, Media: p.MediaRows()},
	}
}

// PresentationDetailFields builds the read-only detail view.
func PresentationDetailFields(p *Presentation) []schema.DetailField {
	urls := make([]string, len(p.Media))
	for i, m := range p.Media {
		urls[i] = m.URL
	}
	fields := []schema.DetailField{
		{Label: "#", Value: p.ID},
		{Label: "Título", Value: p.Title},
		{Label: "Descrição", Value: Dash(p.Description)},
		{Label: "Data", Value: Dash(p.Date.String())},
		{Label: "Localização", Value: Dash(p.Location)},
		{Label: "Email do Responsável", Value: Dash(p.ResponsibleEmail)},
		{Label: "Nome do Responsável", Value: Dash(p.ResponsibleName)},
		{Label: "Telefone do Responsável", Value: Dash(p.ResponsiblePhone)},
		{Label: "Mídias", Value: Dash(strings.Join(urls, "\n"))},
	}
	if p.CreatedAt != nil {
		fields = append(fields, schema.DetailField{Label: "criado em", Value: *p.CreatedAt})
	}
	if p.UpdatedAt != nil {
		fields = append(fields, schema.DetailField{Label: "atualizado em", Value: *p.UpdatedAt})
	}
	return fields
}

func init() {
	Register(Definition{
		Name:         "Apresentação",
		Slug:         "presentations",
		Title:        "Apresentações",
		Columns:      PresentationColumns,
		FormFields:   FormFunc(PresentationFormFields),
		DetailFields: DetailFunc(PresentationDetailFields),
	})
}
