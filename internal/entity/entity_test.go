// ABOUTME: Tests for base entity types: dates, ages and album grouping.

package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-05-17")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2024-05-17"` {
		t.Errorf("marshal = %s", raw)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDateAcceptsTimestamps(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-05-17T10:30:00Z"`), &d); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2024-05-17" {
		t.Errorf("String() = %q", d.String())
	}

	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Error("empty string should yield the zero date")
	}
}

func TestPersonAge(t *testing.T) {
	ref := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		birth     string
		wantAge   int
		wantAdult bool
	}{
		{"birthday today", "2008-08-30", 18, true},
		{"birthday tomorrow", "2008-08-31", 17, false},
		{"birthday passed", "2000-01-15", 26, true},
		{"birthday ahead", "2000-12-15", 25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birth, err := ParseDate(tt.birth)
			if err != nil {
				t.Fatal(err)
			}
			p := Person{BirthDate: birth}
			age, ok := p.Age(ref)
			if !ok {
				t.Fatal("age should be known")
			}
			if age != tt.wantAge {
				t.Errorf("age = %d, want %d", age, tt.wantAge)
			}
			if got := p.IsAdult(ref); got != tt.wantAdult {
				t.Errorf("IsAdult = %v, want %v", got, tt.wantAdult)
			}
		})
	}
}

func TestPersonAgeUnknown(t *testing.T) {
	p := Person{}
	if _, ok := p.Age(time.Now()); ok {
		t.Error("age of a person without birth date should be unknown")
	}
	if !p.IsAdult(time.Now()) {
		t.Error("unknown birth date counts as adult")
	}
}

func TestGroupAlbums(t *testing.T) {
	day := func(d int) Date {
		return DateOf(time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC))
	}
	items := []Gallery{
		{Title: "foto 1", Category: "Ensaios", Date: day(1)},
		{Title: "foto 2", Category: "Ensaios", Date: day(5)},
		{Title: "video 1", Category: "Concertos", Date: day(3)},
	}
	albums := GroupAlbums(items)
	if len(albums) != 2 {
		t.Fatalf("albums = %d, want 2", len(albums))
	}
	// The Ensaios album has the newest item and comes first.
	if albums[0].Category != "Ensaios" || len(albums[0].Items) != 2 {
		t.Errorf("first album = %q with %d items", albums[0].Category, len(albums[0].Items))
	}
	if albums[0].Items[0].Title != "foto 2" {
		t.Errorf("newest item first, got %q", albums[0].Items[0].Title)
	}
	if albums[1].Category != "Concertos" || len(albums[1].Items) != 1 {
		t.Errorf("second album = %q with %d items", albums[1].Category, len(albums[1].Items))
	}
}

func TestGroupAlbumsDefaultCategory(t *testing.T) {
	albums := GroupAlbums([]Gallery{{Title: "solta"}})
	if len(albums) != 1 || albums[0].Category != DefaultAlbum {
		t.Errorf("uncategorized media should fall into %q, got %+v", DefaultAlbum, albums)
	}
}
