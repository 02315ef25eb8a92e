// ABOUTME: Dynamic form engine built from field descriptors.
// ABOUTME: Tracks value/touched/dirty state, dependent requirements and repeater rows.

package form

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abmusica/maestro/internal/schema"
)

// State is the live state of one form field.
type State struct {
	Desc     schema.Field
	Value    any
	Rows     []schema.MediaRow // repeater fields only
	Required bool
	Disabled bool
	Touched  bool
	Dirty    bool
	Err      string
}

// InvalidError reports a failed submit: every invalid field with its reason.
type InvalidError struct {
	Fields map[string]string
}

func (e *InvalidError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

type guardianRule struct {
	birthField string
	dependents []string
}

type albumRule struct {
	categoryField    string
	descriptionField string
	albums           map[string]string
}

type options struct {
	guardian *guardianRule
	album    *albumRule
	now      func() time.Time
}

// Option configures form behaviour beyond the field descriptors.
type Option func(*options)

// WithGuardianRule makes the dependent fields required while the date in
// birthField is less than 18 years before now. The requirement is
// re-evaluated at build time and on every change of the birth field.
func WithGuardianRule(birthField string, dependents ...string) Option {
	return func(o *options) {
		o.guardian = &guardianRule{birthField: birthField, dependents: dependents}
	}
}

// WithAlbumAutofill fills descriptionField with the known album description
// whenever categoryField matches an existing album name. The fill does not
// dirty the form; unknown names switch the form to new-album mode.
func WithAlbumAutofill(categoryField, descriptionField string, albums map[string]string) Option {
	return func(o *options) {
		o.album = &albumRule{categoryField: categoryField, descriptionField: descriptionField, albums: albums}
	}
}

// WithClock overrides the time source. Tests use this to pin age and
// default-date computations.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Form is a built form instance.
type Form struct {
	order    []string
	fields   map[string]*State
	opts     options
	newAlbum bool
}

// New builds a form from field descriptors.
func New(descs []schema.Field, opts ...Option) *Form {
	f := &Form{
		fields:   make(map[string]*State, len(descs)),
		opts:     options{now: time.Now},
		newAlbum: true,
	}
	for _, opt := range opts {
		opt(&f.opts)
	}
	for _, desc := range descs {
		state := &State{
			Desc:     desc,
			Value:    desc.Value,
			Required: desc.Required,
			Disabled: desc.Disabled,
		}
		if desc.Kind == schema.KindMediaRepeater {
			state.Rows = append([]schema.MediaRow(nil), desc.Media...)
			// A repeater never starts empty: without seed rows it opens
			// with exactly one defaulted blank row.
			if len(state.Rows) == 0 {
				state.Rows = []schema.MediaRow{{Type: "photo", Date: f.opts.now()}}
			}
		}
		f.fields[desc.Name] = state
		f.order = append(f.order, desc.Name)
	}
	f.recomputeGuardian()
	return f
}

// Fields returns the field states in declaration order.
func (f *Form) Fields() []*State {
	out := make([]*State, len(f.order))
	for i, name := range f.order {
		out[i] = f.fields[name]
	}
	return out
}

func (f *Form) field(name string) (*State, error) {
	state, ok := f.fields[name]
	if !ok {
		return nil, fmt.Errorf("no such field %q", name)
	}
	return state, nil
}

// Value returns the current value of a field.
func (f *Form) Value(name string) any {
	if state, ok := f.fields[name]; ok {
		return state.Value
	}
	return nil
}

// Set assigns a field value, marking it touched and dirty. Disabled fields
// reject changes.
func (f *Form) Set(name string, value any) error {
	state, err := f.field(name)
	if err != nil {
		return err
	}
	if state.Disabled {
		return fmt.Errorf("field %q is disabled", name)
	}
	state.Value = value
	state.Touched = true
	state.Dirty = true
	state.Err = ""

	if g := f.opts.guardian; g != nil && name == g.birthField {
		f.recomputeGuardian()
	}
	if a := f.opts.album; a != nil && name == a.categoryField {
		f.autofillAlbum(value)
	}
	return nil
}

// Touch marks a field as visited without changing its value.
func (f *Form) Touch(name string) error {
	state, err := f.field(name)
	if err != nil {
		return err
	}
	state.Touched = true
	return nil
}

// Dirty reports whether any field was changed by the user.
func (f *Form) Dirty() bool {
	for _, state := range f.fields {
		if state.Dirty {
			return true
		}
	}
	return false
}

// IsRequired reports the current (possibly recomputed) requirement of a field.
func (f *Form) IsRequired(name string) bool {
	if state, ok := f.fields[name]; ok {
		return state.Required
	}
	return false
}

// NewAlbum reports whether the album-autofill category names an album that
// does not exist yet. Forms without the autofill option stay in new-album
// mode.
func (f *Form) NewAlbum() bool { return f.newAlbum }

// recomputeGuardian re-evaluates the dependent requirements from the birth
// field. An empty or unparseable date leaves the current requirements alone.
func (f *Form) recomputeGuardian() {
	g := f.opts.guardian
	if g == nil {
		return
	}
	state, ok := f.fields[g.birthField]
	if !ok {
		return
	}
	raw, _ := state.Value.(string)
	if raw == "" {
		return
	}
	birth, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return
	}
	minor := ageAt(birth, f.opts.now()) < 18
	for _, dep := range g.dependents {
		if depState, ok := f.fields[dep]; ok {
			depState.Required = minor
		}
	}
}

// ageAt computes whole years between birth and ref, subtracting one while
// the birthday has not yet happened in ref's year.
func ageAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

func (f *Form) autofillAlbum(value any) {
	a := f.opts.album
	name, _ := value.(string)
	name = strings.TrimSpace(name)
	desc, known := a.albums[name]
	f.newAlbum = !known || name == ""
	if f.newAlbum {
		return
	}
	if descState, ok := f.fields[a.descriptionField]; ok {
		// Filled programmatically: the description is not a user edit.
		descState.Value = desc
		descState.Err = ""
	}
}

// Rows returns the current rows of a repeater field.
func (f *Form) Rows(name string) ([]schema.MediaRow, error) {
	state, err := f.repeater(name)
	if err != nil {
		return nil, err
	}
	return append([]schema.MediaRow(nil), state.Rows...), nil
}

// AddRow appends a row to a repeater field.
func (f *Form) AddRow(name string, row schema.MediaRow) error {
	state, err := f.repeater(name)
	if err != nil {
		return err
	}
	state.Rows = append(state.Rows, row)
	state.Touched = true
	state.Dirty = true
	return nil
}

// AttachFile converts an uploaded file into a row and appends it: the
// content becomes a data URL, the type comes from the MIME type and the
// title defaults to the file's base name.
func (f *Form) AttachFile(name, filename, mime string, content []byte) error {
	return f.AddRow(name, FileRow(filename, mime, content, f.opts.now()))
}

// RemoveRow deletes one repeater row. The last remaining row cannot be
// removed.
func (f *Form) RemoveRow(name string, i int) error {
	state, err := f.repeater(name)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(state.Rows) {
		return fmt.Errorf("row %d out of range", i)
	}
	if len(state.Rows) == 1 {
		return fmt.Errorf("cannot remove the last row")
	}
	state.Rows = append(state.Rows[:i], state.Rows[i+1:]...)
	state.Touched = true
	state.Dirty = true
	return nil
}

func (f *Form) repeater(name string) (*State, error) {
	state, err := f.field(name)
	if err != nil {
		return nil, err
	}
	if state.Desc.Kind != schema.KindMediaRepeater {
		return nil, fmt.Errorf("field %q is not a media repeater", name)
	}
	return state, nil
}

// Submit validates every field and returns the value tree. On failure all
// fields are marked touched (so the UI surfaces every error at once) and an
// *InvalidError names each invalid field.
func (f *Form) Submit() (map[string]any, error) {
	invalid := make(map[string]string)
	for _, name := range f.order {
		state := f.fields[name]
		if msg := f.validate(state); msg != "" {
			state.Err = msg
			invalid[name] = msg
		} else {
			state.Err = ""
		}
	}
	if len(invalid) > 0 {
		for _, state := range f.fields {
			state.Touched = true
		}
		return nil, &InvalidError{Fields: invalid}
	}

	values := make(map[string]any, len(f.order))
	for _, name := range f.order {
		state := f.fields[name]
		if state.Desc.Kind == schema.KindMediaRepeater {
			rows := make([]schema.MediaRow, 0, len(state.Rows))
			for _, row := range state.Rows {
				// The untouched blank starter row is not content.
				if !blankRow(row) {
					rows = append(rows, row)
				}
			}
			values[name] = rows
			continue
		}
		values[name] = state.Value
	}
	return values, nil
}

// blankRow reports a row the user never filled in: no url and no title.
func blankRow(row schema.MediaRow) bool {
	return strings.TrimSpace(row.URL) == "" && strings.TrimSpace(row.Title) == ""
}

func (f *Form) validate(state *State) string {
	if state.Desc.Kind == schema.KindMediaRepeater {
		filled := 0
		for i, row := range state.Rows {
			if blankRow(row) {
				continue
			}
			// Every sub-record needs both its url and its title.
			if strings.TrimSpace(row.URL) == "" {
				return fmt.Sprintf("linha %d: url required", i+1)
			}
			if strings.TrimSpace(row.Title) == "" {
				return fmt.Sprintf("linha %d: title required", i+1)
			}
			filled++
		}
		if state.Required && filled == 0 {
			return "required"
		}
		return ""
	}
	if isEmpty(state.Value) {
		if state.Required {
			return "required"
		}
		return ""
	}
	for _, rule := range state.Desc.Rules {
		if err := rule.Validate(state.Value); err != nil {
			return err.Error()
		}
	}
	return ""
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
