// ABOUTME: Tests for the seed dataset and store application.

package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abmusica/maestro/internal/entity"
	"github.com/abmusica/maestro/internal/store"
)

func TestStaticDatasetCoversEveryResource(t *testing.T) {
	dataset := staticDataset()

	for _, slug := range entity.Slugs() {
		docs, ok := dataset[slug]
		if !ok || len(docs) == 0 {
			t.Errorf("resource %q has no seed data", slug)
		}
	}
	for slug := range dataset {
		if _, ok := entity.Get(slug); !ok {
			t.Errorf("dataset seeds unregistered resource %q", slug)
		}
	}
}

func TestStaticStudentsCarryGuardiansForMinors(t *testing.T) {
	for _, doc := range staticDataset()["students"] {
		birth, err := entity.ParseDate(doc["birthDate"].(string))
		if err != nil {
			t.Fatalf("student birthDate %v: %v", doc["birthDate"], err)
		}
		// Born 2009 or later is under 18 for the lifetime of this dataset.
		if birth.Year() >= 2009 && doc["responsibleName"] == "" {
			t.Errorf("minor student %v has no responsible", doc["firstName"])
		}
	}
}

func TestApply(t *testing.T) {
	s, err := store.New(filepath.Join(t.TempDir(), "seed_test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	dataset := staticDataset()
	n, err := Apply(s, dataset, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := 0
	for _, docs := range dataset {
		want += len(docs)
	}
	if n != want {
		t.Errorf("applied %d docs, want %d", n, want)
	}

	count, err := s.CountRecords("musicians")
	if err != nil || count != len(dataset["musicians"]) {
		t.Errorf("musicians = %d, %v", count, err)
	}
}

func TestApplyFiltered(t *testing.T) {
	s, err := store.New(filepath.Join(t.TempDir(), "seed_test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := Apply(s, staticDataset(), "songs"); err != nil {
		t.Fatal(err)
	}
	if n, _ := s.CountRecords("songs"); n == 0 {
		t.Error("songs not seeded")
	}
	if n, _ := s.CountRecords("musicians"); n != 0 {
		t.Errorf("musicians = %d, want 0 with filter", n)
	}
}

func TestGeneratorWithoutKeyFallsBack(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	g := NewGenerator()
	if g.useAI {
		t.Fatal("generator should not use AI without a key")
	}
	dataset := g.Generate(context.Background())
	if len(dataset["musicians"]) == 0 {
		t.Error("fallback dataset empty")
	}
}
