// ABOUTME: Patrimony (asset inventory) entity and its descriptors.

package entity

import (
	"fmt"

	"github.com/abmusica/maestro/internal/schema"
)

// Patrimony asset statuses.
const (
	StatusAvailable   = "Disponível"
	StatusInUse       = "Em Uso"
	StatusMaintenance = "Manutenção"
	StatusRetired     = "Baixado"
)

// StatusOptions are the select choices of the asset status field.
var StatusOptions = []schema.Option{
	{Value: StatusAvailable, Label: StatusAvailable},
	{Value: StatusInUse, Label: StatusInUse},
	{Value: StatusMaintenance, Label: StatusMaintenance},
	{Value: StatusRetired, Label: StatusRetired},
}

// Patrimony is one inventoried asset of the group.
type Patrimony struct {
	Base
	TagNumber       string  `json:"tagNumber"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category,omitempty"`
	AcquisitionDate Date    `json:"acquisitionDate,omitempty"`
	Value           float64 `json:"value,omitempty"`
	Status          string  `json:"status,omitempty"`
	Location        string  `json:"location,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

var PatrimonyColumns = []schema.Column{
	{Name: "tagNumber", Label: "Nº Patrimônio"},
	{Name: "name", Label: "Nome"},
	{Name: "category", Label: "Categoria"},
	{Name: "acquisitionDate", Label: "Data", Searchable: schema.Bool(false)},
	{Name: "status", Label: "Status"},
	{Name: schema.ActionsColumn, Label: "Ações"},
}

var patrimonyCategoryOptions = []schema.Option{
	{Value: "Eletrônico", Label: "Eletrônico"},
	{Value: "Mobiliário", Label: "Mobiliário"},
	{Value: "Patrimonio Musical", Label: "Patrimonio Musical"},
	{Value: "Outro", Label: "Outro"},
}

// PatrimonyFormFields builds the create/edit form; nil builds the blank form.
// Instrument reuses these as the base of its own form.
func PatrimonyFormFields(p *Patrimony) []schema.Field {
	if p == nil {
		p = &Patrimony{Status: StatusAvailable}
	}
	return []schema.Field{
		{Name: "tagNumber", Label: "Nº Patrimônio", Kind: schema.KindText, Value: p.TagNumber, Required: true},
		{Name: "name", Label: "Nome do Item", Kind: schema.KindText, Value: p.Name, Required: true},
		{Name: "description", Label: "Descrição do Item", Kind: schema.KindTextarea, Value: p.Description, Required: true},
		{Name: "category", Label: "Categoria", Kind: schema.KindSelect, Value: p.Category, Options: patrimonyCategoryOptions, Required: true},
		{Name: "acquisitionDate", Label: "Data de Aquisição", Kind: schema.KindDate, Value: p.AcquisitionDate.String()},
		{Name: "value", Label: "Valor", Kind: schema.KindNumber, Value: p.Value},
		{Name: "status", Label: "Status", Kind: schema.KindSelect, Value: p.Status, Options: StatusOptions, Required: true},
		{Name: "location", Label: "Localização", Kind: schema.KindText, Value: p.Location, Required: true},
	}
}

// PatrimonyDetailFields builds the read-only detail view.
func PatrimonyDetailFields(p *Patrimony) []schema.DetailField {
	status := p.Status
	if status == "" {
		status = StatusAvailable
	}
	return []schema.DetailField{
		{Label: "Nº Patrimônio", Value: p.TagNumber},
		{Label: "Nome do Item", Value: p.Name},
		{Label: "Categoria", Value: Dash(p.Category)},
		{Label: "Status", Value: status},
		{Label: "Localização", Value: Dash(p.Location)},
		{Label: "Valor", Value: p.Value, Format: func(v any) string {
			f, _ := v.(float64)
			return fmt.Sprintf("R$ %.2f", f)
		}},
	}
}

func init() {
	Register(Definition{
		Name:         "Patrimônio",
		Slug:         "patrimonies",
		Title:        "Patrimônio",
		Columns:      PatrimonyColumns,
		FormFields:   FormFunc(PatrimonyFormFields),
		DetailFields: DetailFunc(PatrimonyDetailFields),
	})
}
