// ABOUTME: Tests for the dynamic form engine.
// ABOUTME: Covers guardian requirements, album autofill, repeater rows and submit.

package form

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abmusica/maestro/internal/schema"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func guardianForm(birth string) *Form {
	return New([]schema.Field{
		{Name: "birthDate", Kind: schema.KindDate, Value: birth},
		{Name: "responsibleName", Kind: schema.KindText, Required: true},
		{Name: "responsiblePhone", Kind: schema.KindText, Required: true},
	},
		WithGuardianRule("birthDate", "responsibleName", "responsiblePhone"),
		WithClock(fixedNow),
	)
}

func TestGuardianRequirement(t *testing.T) {
	tests := []struct {
		name      string
		birth     string
		wantMinor bool
	}{
		{"eighteen today is adult", "2008-08-30", false},
		{"eighteen minus one day is minor", "2008-08-31", true},
		{"clearly minor", "2015-01-10", true},
		{"clearly adult", "1990-03-02", false},
		{"birthday later this year", "2008-12-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := guardianForm(tt.birth)
			if got := f.IsRequired("responsibleName"); got != tt.wantMinor {
				t.Errorf("responsibleName required = %v, want %v", got, tt.wantMinor)
			}
			if got := f.IsRequired("responsiblePhone"); got != tt.wantMinor {
				t.Errorf("responsiblePhone required = %v, want %v", got, tt.wantMinor)
			}
		})
	}
}

func TestGuardianRecomputedOnChange(t *testing.T) {
	f := guardianForm("1990-03-02")
	if f.IsRequired("responsibleName") {
		t.Fatal("adult student should not require a guardian")
	}
	if err := f.Set("birthDate", "2015-01-10"); err != nil {
		t.Fatal(err)
	}
	if !f.IsRequired("responsibleName") {
		t.Error("guardian requirement not recomputed after birth date change")
	}
	if err := f.Set("birthDate", "1990-03-02"); err != nil {
		t.Fatal(err)
	}
	if f.IsRequired("responsibleName") {
		t.Error("guardian requirement should clear when student becomes adult")
	}
}

func TestGuardianEmptyBirthKeepsDefaults(t *testing.T) {
	f := New([]schema.Field{
		{Name: "birthDate", Kind: schema.KindDate, Value: ""},
		{Name: "responsibleName", Kind: schema.KindText, Required: true},
	}, WithGuardianRule("birthDate", "responsibleName"), WithClock(fixedNow))

	if !f.IsRequired("responsibleName") {
		t.Error("blank form should keep the descriptor's required flag")
	}
}

func TestAlbumAutofill(t *testing.T) {
	albums := map[string]string{
		"Ensaios":   "Fotos dos ensaios semanais",
		"Concertos": "Apresentações oficiais",
	}
	f := New([]schema.Field{
		{Name: "category", Kind: schema.KindText},
		{Name: "albumDescription", Kind: schema.KindTextarea},
	}, WithAlbumAutofill("category", "albumDescription", albums))

	if !f.NewAlbum() {
		t.Fatal("form should start in new-album mode")
	}
	if err := f.Set("category", "Ensaios"); err != nil {
		t.Fatal(err)
	}
	if f.NewAlbum() {
		t.Error("known album should leave new-album mode")
	}
	if got := f.Value("albumDescription"); got != "Fotos dos ensaios semanais" {
		t.Errorf("description = %q, want autofilled album description", got)
	}
	if f.fields["albumDescription"].Dirty {
		t.Error("autofill must not dirty the description field")
	}

	if err := f.Set("category", "Viagens"); err != nil {
		t.Fatal(err)
	}
	if !f.NewAlbum() {
		t.Error("unknown album should switch back to new-album mode")
	}

	// Names are matched on their trimmed form.
	if err := f.Set("category", "  Concertos "); err != nil {
		t.Fatal(err)
	}
	if f.NewAlbum() {
		t.Error("trimmed album name should match")
	}
}

func TestRepeaterRows(t *testing.T) {
	f := New([]schema.Field{
		{Name: "midiaUrl", Kind: schema.KindMediaRepeater, Media: []schema.MediaRow{
			{URL: "https://example.com/a.jpg", Title: "a", Type: "photo"},
		}},
	}, WithClock(fixedNow))

	if err := f.AddRow("midiaUrl", schema.MediaRow{URL: "https://example.com/b.mp4", Title: "b", Type: "video"}); err != nil {
		t.Fatal(err)
	}
	rows, err := f.Rows("midiaUrl")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	if err := f.RemoveRow("midiaUrl", 0); err != nil {
		t.Fatal(err)
	}
	if err := f.RemoveRow("midiaUrl", 0); err == nil {
		t.Error("removing the last row should fail")
	}
	rows, _ = f.Rows("midiaUrl")
	if len(rows) != 1 || rows[0].Title != "b" {
		t.Errorf("unexpected rows after removal: %+v", rows)
	}
}

func TestRepeaterSeedsOneBlankRow(t *testing.T) {
	f := New([]schema.Field{
		{Name: "midiaUrl", Kind: schema.KindMediaRepeater},
	}, WithClock(fixedNow))

	rows, err := f.Rows("midiaUrl")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("initial rows = %d, want exactly one blank row", len(rows))
	}
	row := rows[0]
	if row.URL != "" || row.Title != "" {
		t.Errorf("starter row not blank: %+v", row)
	}
	if row.Type != "photo" {
		t.Errorf("starter type = %q, want photo", row.Type)
	}
	if !row.Date.Equal(fixedNow()) {
		t.Errorf("starter date = %v, want the build time", row.Date)
	}
}

func TestRepeaterRowsRequireURLAndTitle(t *testing.T) {
	tests := []struct {
		name string
		row  schema.MediaRow
	}{
		{"missing title", schema.MediaRow{URL: "https://example.com/a.jpg", Type: "photo"}},
		{"missing url", schema.MediaRow{Title: "Ensaio geral", Type: "photo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New([]schema.Field{
				{Name: "media", Kind: schema.KindMediaRepeater, Media: []schema.MediaRow{tt.row}},
			})

			_, err := f.Submit()
			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("Submit error = %v, want *InvalidError", err)
			}
			if _, ok := invalid.Fields["media"]; !ok {
				t.Errorf("invalid fields = %v, want media listed", invalid.Fields)
			}
		})
	}

	// A complete row passes.
	f := New([]schema.Field{
		{Name: "media", Kind: schema.KindMediaRepeater, Media: []schema.MediaRow{
			{URL: "https://example.com/a.jpg", Title: "Ensaio geral", Type: "photo"},
		}},
	})
	if _, err := f.Submit(); err != nil {
		t.Fatalf("Submit with complete row: %v", err)
	}
}

func TestRequiredRepeaterRejectsOnlyBlankRows(t *testing.T) {
	f := New([]schema.Field{
		{Name: "media", Kind: schema.KindMediaRepeater, Required: true},
	}, WithClock(fixedNow))

	_, err := f.Submit()
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("Submit error = %v, want *InvalidError", err)
	}
	if invalid.Fields["media"] != "required" {
		t.Errorf("media error = %q, want required", invalid.Fields["media"])
	}
}

func TestSubmitDropsBlankStarterRow(t *testing.T) {
	f := New([]schema.Field{
		{Name: "media", Kind: schema.KindMediaRepeater},
	}, WithClock(fixedNow))

	values, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	rows, ok := values["media"].([]schema.MediaRow)
	if !ok || len(rows) != 0 {
		t.Errorf("values[media] = %v, want no rows from the blank starter", values["media"])
	}
}

func TestRepeaterRejectsScalarField(t *testing.T) {
	f := New([]schema.Field{{Name: "title", Kind: schema.KindText}})
	if err := f.AddRow("title", schema.MediaRow{}); err == nil {
		t.Error("AddRow on a scalar field should fail")
	}
}

func TestAttachFile(t *testing.T) {
	f := New([]schema.Field{
		{Name: "midiaUrl", Kind: schema.KindMediaRepeater},
	}, WithClock(fixedNow))

	if err := f.AttachFile("midiaUrl", "ensaio.geral.mp4", "video/mp4", []byte("abc")); err != nil {
		t.Fatal(err)
	}
	rows, _ := f.Rows("midiaUrl")
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want the blank starter row plus the attachment", len(rows))
	}
	row := rows[1]
	if !strings.HasPrefix(row.URL, "data:video/mp4;base64,") {
		t.Errorf("URL = %q, want data URL", row.URL)
	}
	if row.Type != "video" {
		t.Errorf("type = %q, want video", row.Type)
	}
	if row.Title != "ensaio" {
		t.Errorf("title = %q, want base name before first dot", row.Title)
	}
	if !row.Date.Equal(fixedNow()) {
		t.Errorf("date = %v, want clock time", row.Date)
	}
}

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"video/mp4", "video"},
		{"image/png", "photo"},
		{"application/pdf", "photo"},
		{"", "photo"},
	}
	for _, tt := range tests {
		if got := MediaTypeFor(tt.mime); got != tt.want {
			t.Errorf("MediaTypeFor(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestSubmitValidation(t *testing.T) {
	f := New([]schema.Field{
		{Name: "firstName", Kind: schema.KindText, Required: true},
		{Name: "email", Kind: schema.KindEmail, Value: "not-an-email", Rules: []schema.Rule{Email()}},
		{Name: "phone", Kind: schema.KindText},
	})

	_, err := f.Submit()
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("Submit error = %v, want *InvalidError", err)
	}
	if _, ok := invalid.Fields["firstName"]; !ok {
		t.Error("missing required firstName not reported")
	}
	if _, ok := invalid.Fields["email"]; !ok {
		t.Error("invalid email not reported")
	}
	if _, ok := invalid.Fields["phone"]; ok {
		t.Error("valid optional phone should not be reported")
	}
	for _, state := range f.Fields() {
		if !state.Touched {
			t.Errorf("field %q not marked touched after failed submit", state.Desc.Name)
		}
	}

	if err := f.Set("firstName", "Ana"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("email", "ana@example.com"); err != nil {
		t.Fatal(err)
	}
	values, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if values["firstName"] != "Ana" {
		t.Errorf("firstName = %v", values["firstName"])
	}
	if _, ok := values["phone"]; !ok {
		t.Error("optional empty field should still appear in the value tree")
	}
}

func TestSubmitIncludesDisabledAndRepeater(t *testing.T) {
	f := New([]schema.Field{
		{Name: "enrollmentDate", Kind: schema.KindDate, Value: "2026-08-30", Required: true, Disabled: true},
		{Name: "midiaUrl", Kind: schema.KindMediaRepeater, Media: []schema.MediaRow{{URL: "u", Title: "t", Type: "photo"}}},
	})

	if err := f.Set("enrollmentDate", "2020-01-01"); err == nil {
		t.Error("setting a disabled field should fail")
	}

	values, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if values["enrollmentDate"] != "2026-08-30" {
		t.Error("disabled field value missing from the value tree")
	}
	rows, ok := values["midiaUrl"].([]schema.MediaRow)
	if !ok || len(rows) != 1 {
		t.Errorf("repeater value = %v, want one row", values["midiaUrl"])
	}
}

func TestPastDateRule(t *testing.T) {
	rule := pastDateAt(fixedNow)
	if err := rule.Validate("2026-08-30"); err != nil {
		t.Errorf("today should pass: %v", err)
	}
	if err := rule.Validate("2026-08-31"); err == nil {
		t.Error("tomorrow should fail")
	}
	if err := rule.Validate(""); err != nil {
		t.Error("empty value is not the rule's concern")
	}
}
