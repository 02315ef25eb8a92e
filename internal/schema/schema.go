// ABOUTME: Descriptor types for the config-driven admin UI.
// ABOUTME: Entity pages declare columns, form fields and detail fields; the engines consume them.

package schema

import (
	"fmt"
	"time"
)

// Column describes one table column of a list page.
//
// Sortable and Searchable are tri-state so that the zero value keeps the
// original default (both enabled). The "actions" column is never sortable
// nor searchable, whatever its flags say.
type Column struct {
	Name       string
	Label      string
	Sortable   *bool  // nil means true
	Searchable *bool  // nil means true
	SortField  string // backing field when the displayed column is synthetic
	Template   string // custom cell template tag (renderer hint)
}

// ActionsColumn is the reserved column name for the per-row action buttons.
const ActionsColumn = "actions"

// IsSortable reports whether the column header may be clicked to sort.
func (c Column) IsSortable() bool {
	if c.Name == ActionsColumn {
		return false
	}
	return c.Sortable == nil || *c.Sortable
}

// IsSearchable reports whether the column participates in text search.
func (c Column) IsSearchable() bool {
	if c.Name == ActionsColumn {
		return false
	}
	return c.Searchable == nil || *c.Searchable
}

// SortKey resolves the field used for ordering: SortField when remapped,
// otherwise the column name itself.
func (c Column) SortKey() string {
	if c.SortField != "" {
		return c.SortField
	}
	return c.Name
}

// Bool is a helper for the tri-state column flags.
func Bool(v bool) *bool { return &v }

// Kind is the closed set of form field variants. Using a typed enum instead
// of a free-form string lets switches over field kinds stay exhaustive.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindNumber
	KindDate
	KindSelect
	KindTextarea
	// KindMediaRepeater is the one composite variant: its value is an
	// ordered, growable list of MediaRow sub-records instead of a scalar.
	KindMediaRepeater
)

// String returns the HTML-ish name of the kind, used in rendering and logs.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmail:
		return "email"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindSelect:
		return "select"
	case KindTextarea:
		return "textarea"
	case KindMediaRepeater:
		return "media-repeater"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Rule is an extra validation constraint attached to a field descriptor.
// Concrete rules live in the form package; descriptors only carry them.
type Rule interface {
	// Name identifies the rule in validation errors ("required", "email", ...).
	Name() string
	// Validate returns nil when the value satisfies the rule. Empty values
	// are the concern of the required rule only.
	Validate(value any) error
}

// Field describes one input of a dynamically built form.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Value       any
	Required    bool
	Options     []Option
	Placeholder string
	Disabled    bool
	Rules       []Rule

	// Media seeds the rows of a KindMediaRepeater field. Ignored for
	// scalar kinds.
	Media []MediaRow
}

// MediaRow is one sub-record of a media repeater field.
type MediaRow struct {
	URL   string    `json:"url"`
	Title string    `json:"title"`
	Type  string    `json:"type"` // "photo" or "video"
	Date  time.Time `json:"date"`
}

// DetailField is a purely presentational label/value pair of the read-only
// detail view. Format, when set, overrides the default rendering.
type DetailField struct {
	Label  string
	Value  any
	Format func(any) string
}

// Display returns the human-readable value of the detail field.
func (d DetailField) Display() string {
	if d.Format != nil {
		return d.Format(d.Value)
	}
	if d.Value == nil {
		return ""
	}
	if t, ok := d.Value.(time.Time); ok {
		return t.Format("02/01/2006")
	}
	return fmt.Sprint(d.Value)
}
