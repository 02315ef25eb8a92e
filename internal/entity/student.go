// ABOUTME: Student entity with guardian fields required for minors.

package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/abmusica/maestro/internal/form"
	"github.com/abmusica/maestro/internal/schema"
)

// Student is an enrolled music student. Guardian fields are mandatory while
// the student is a minor.
type Student struct {
	Base
	Person
	EnrollmentDate   Date   `json:"enrollmentDate,omitempty"`
	ResponsibleName  string `json:"responsibleName,omitempty"`
	ResponsiblePhone string `json:"responsiblePhone,omitempty"`
}

var StudentColumns = []schema.Column{
	{Name: "id", Label: "#", Searchable: schema.Bool(false)},
	{Name: "name", Label: "Nome", SortField: "firstName"},
	{Name: "email", Label: "E-mail"},
	{Name: "phone", Label: "Telefone", Sortable: schema.Bool(false)},
	{Name: "enrollmentDate", Label: "Data matrícula", Searchable: schema.Bool(false)},
	{Name: "responsibleName", Label: "Responsável"},
	{Name: "responsiblePhone", Label: "Telefone do Responsável", Sortable: schema.Bool(false)},
	{Name: schema.ActionsColumn, Label: "Ações"},
}

// StudentFormFields builds the create/edit form. The enrollment date is
// required but locked, defaulting to today; guardian fields start required
// unless the student is known to be an adult. The form engine re-evaluates
// that requirement whenever the birth date changes.
func StudentFormFields(s *Student) []schema.Field {
	guardianRequired := true
	if s != nil {
		guardianRequired = !s.IsAdult(time.Now())
	}
	if s == nil {
		s = &Student{}
	}
	enrollment := s.EnrollmentDate
	if enrollment.IsZero() {
		enrollment = DateOf(time.Now())
	}
	return []schema.Field{
		{Name: "firstName", Label: "Nome", Kind: schema.KindText, Value: s.FirstName, Placeholder: "Digite o nome", Required: true},
		{Name: "lastName", Label: "Sobrenome", Kind: schema.KindText, Value: s.LastName, Placeholder: "Digite o sobrenome", Required: true},
		{Name: "email", Label: "Email", Kind: schema.KindEmail, Value: s.Email, Placeholder: "Digite o email", Required: true, Rules: []schema.Rule{form.Email()}},
		{Name: "phone", Label: "Telefone", Kind: schema.KindText, Value: s.Phone, Placeholder: "(11) 98765-4321"},
		{Name: "birthDate", Label: "Data de nascimento", Kind: schema.KindDate, Value: s.BirthDate.String(), Placeholder: "Informe sua data de nascimento", Rules: []schema.Rule{form.PastDate()}},
		{Name: "enrollmentDate", Label: "Data de matrícula", Kind: schema.KindDate, Value: enrollment.String(), Placeholder: "Informe a data de matrícula", Required: true, Disabled: true},
		{Name: "responsibleName", Label: "Nome do Responsável", Kind: schema.KindText, Value: s.ResponsibleName, Placeholder: "Digite o nome do responsável", Required: guardianRequired},
		{Name: "responsiblePhone", Label: "Telefone do Responsável", Kind: schema.KindText, Value: s.ResponsiblePhone, Placeholder: "(11) 98765-4321", Required: guardianRequired},
	}
}

// StudentDetailFields builds the read-only detail view.
func StudentDetailFields(s *Student) []schema.DetailField {
	age := "—"
	if a, ok := s.Age(time.Now()); ok {
		age = strconv.Itoa(a)
	}
	profiles := "—"
	if len(s.ProfileIDs) > 0 {
		parts := make([]string, len(s.ProfileIDs))
		for i, id := range s.ProfileIDs {
			parts[i] = strconv.FormatInt(id, 10)
		}
		profiles = strings.Join(parts, ", ")
	}
	fields := []schema.DetailField{
		{Label: "#", Value: s.ID},
		{Label: "Nome", Value: s.FullName()},
		{Label: "Email", Value: s.Email},
		{Label: "Telefone", Value: Dash(s.Phone)},
		{Label: "Data de nascimento", Value: Dash(s.BirthDate.String())},
		{Label: "Perfis", Value: profiles},
		{Label: "Data de matrícula", Value: Dash(s.EnrollmentDate.String())},
		{Label: "Nome do Responsável", Value: Dash(s.ResponsibleName)},
		{Label: "Telefone do Responsável", Value: Dash(s.ResponsiblePhone)},
		{Label: "Idade", Value: age},
	}
	if s.CreatedAt != nil {
		fields = append(fields, schema.DetailField{Label: "criado em", Value: *s.CreatedAt})
	}
	if s.UpdatedAt != nil {
		fields = append(fields, schema.DetailField{Label: "atualizado em", Value: *s.UpdatedAt})
	}
	return fields
}

func init() {
	Register(Definition{
		Name:         "Aluno",
		Slug:         "students",
		Title:        "Alunos",
		Columns:      StudentColumns,
		FormFields:   FormFunc(StudentFormFields),
		DetailFields: DetailFunc(StudentDetailFields),
		Derive:       deriveFullName,
	})
}
