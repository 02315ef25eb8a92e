// ABOUTME: Instrument entity (a patrimony asset with musical attributes)
// ABOUTME: plus the instrument name catalog used by songs and filters.

package entity

import "github.com/abmusica/maestro/internal/schema"

// InstrumentTypes is the catalog of instrument names used by the song part
// select and the instrument page filter.
var InstrumentTypes = []string{
	"Trompete",
	"Trombone",
	"Sax Alto",
	"Sax Tenor",
	"Sax Soprano",
	"Sax Barítono",
	"Baixo/Tuba",
	"Clarinete",
	"Flauta",
	"Flautim",
	"Percussão",
	"Bateria",
}

// InstrumentTypeOptions returns the catalog as select options.
func InstrumentTypeOptions() []schema.Option {
	opts := make([]schema.Option, len(InstrumentTypes))
	for i, name := range InstrumentTypes {
		opts[i] = schema.Option{Value: name, Label: name}
	}
	return opts
}

// Instrument is a musical instrument of the inventory. It is a patrimony
// asset with instrument-specific attributes on top.
type Instrument struct {
	Patrimony
	Family       string `json:"family"`
	Type         string `json:"type,omitempty"`
	Brand        string `json:"brand,omitempty"`
	ModelName    string `json:"modelName,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
}

var InstrumentColumns = []schema.Column{
	{Name: "imageUrl", Label: "Imagem", Sortable: schema.Bool(false), Searchable: schema.Bool(false), Template: "image"},
	{Name: "tagNumber", Label: "Nº Patrimônio"},
	{Name: "name", Label: "Nome", Sortable: schema.Bool(false)},
	{Name: "family", Label: "Família"},
	{Name: "status", Label: "Status", Sortable: schema.Bool(false), Searchable: schema.Bool(false)},
	{Name: schema.ActionsColumn, Label: "Ações"},
}

// InstrumentFormFields builds the create/edit form: the patrimony base
// fields followed by the instrument-specific ones.
func InstrumentFormFields(ins *Instrument) []schema.Field {
	var base *Patrimony
	if ins != nil {
		base = &ins.Patrimony
	}
	fields := PatrimonyFormFields(base)
	if ins == nil {
		ins = &Instrument{}
	}
	return append(fields,
		schema.Field{Name: "family", Label: "Família do Instrumento", Kind: schema.KindText, Value: ins.Family, Placeholder: "Ex: Madeiras, Metais...", Required: true},
		schema.Field{Name: "type", Label: "Tipo", Kind: schema.KindSelect, Value: ins.Type, Options: InstrumentTypeOptions()},
		schema.Field{Name: "brand", Label: "Marca", Kind: schema.KindText, Value: ins.Brand},
		schema.Field{Name: "modelName", Label: "Modelo", Kind: schema.KindText, Value: ins.ModelName},
		schema.Field{Name: "serialNumber", Label: "Número de Série", Kind: schema.KindText, Value: ins.SerialNumber},
		schema.Field{Name: "imageUrl", Label: "URL da Imagem", Kind: schema.KindText, Value: ins.ImageURL, Placeholder: "https://exemplo.com/imagem.jpg"},
	)
}

// InstrumentDetailFields builds the read-only detail view.
func InstrumentDetailFields(ins *Instrument) []schema.DetailField {
	return []schema.DetailField{
		{Label: "Nº Patrimônio", Value: ins.TagNumber},
		{Label: "Localização", Value: Dash(ins.Location)},
		{Label: "Família", Value: Dash(ins.Family)},
		{Label: "Marca", Value: Dash(ins.Brand)},
		{Label: "Nº Série", Value: Dash(ins.SerialNumber)},
		{Label: "Status", Value: Dash(ins.Status)},
		{Label: "Imagem", Value: Dash(ins.ImageURL)},
	}
}

func init() {
	Register(Definition{
		Name:         "Instrumento",
		Slug:         "instruments",
		Title:        "Instrumentos",
		Columns:      InstrumentColumns,
		FormFields:   FormFunc(InstrumentFormFields),
		DetailFields: DetailFunc(InstrumentDetailFields),
	})
}
