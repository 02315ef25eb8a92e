// ABOUTME: Tests for the generic CRUD service and the song multipart create.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abmusica/maestro/internal/entity"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service[entity.Musician] {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, WithLogger(silentLogger()))
	return NewService[entity.Musician](client, "musicians")
}

func TestCreateStripsServerFields(t *testing.T) {
	var received map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/musicians" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&received)
		received["id"] = 42
		json.NewEncoder(w).Encode(received)
	})

	now := time.Now()
	created, err := svc.Create(context.Background(), entity.Musician{
		Base:   entity.Base{ID: 99, CreatedAt: &now},
		Person: entity.Person{FirstName: "Ana", LastName: "Souza", Email: "ana@example.com"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "createdAt", "updatedAt"} {
		if _, ok := received[key]; ok && key != "id" {
			t.Errorf("payload should not carry %q", key)
		}
	}
	if received["firstName"] != "Ana" {
		t.Errorf("firstName = %v", received["firstName"])
	}
	if created.ID != 42 {
		t.Errorf("created.ID = %d, want server-assigned 42", created.ID)
	}
}

func TestListPassesQuery(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search") != "ana" || q.Get("sortBy") != "firstName" {
			t.Errorf("query = %v", q)
		}
		if _, ok := r.URL.Query()["page"]; ok {
			t.Error("unset page must be omitted")
		}
		json.NewEncoder(w).Encode([]entity.Musician{{Person: entity.Person{FirstName: "Ana"}}})
	})

	got, err := svc.List(context.Background(), Query{Search: "ana", SortBy: "firstName"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].FirstName != "Ana" {
		t.Errorf("list = %+v", got)
	}
}

func TestItemRoutes(t *testing.T) {
	var gotPath, gotMethod string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		json.NewEncoder(w).Encode(entity.Musician{Base: entity.Base{ID: 5}})
	})

	if _, err := svc.GetByID(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/musicians/5" || gotMethod != http.MethodGet {
		t.Errorf("GetByID hit %s %s", gotMethod, gotPath)
	}

	if _, err := svc.Patch(context.Background(), 5, Doc{"phone": "123"}); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("Patch used %s", gotMethod)
	}

	if err := svc.Delete(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("Delete used %s", gotMethod)
	}
}

func TestSongCreateWithFiles(t *testing.T) {
	var fields map[string][]string
	var fileNames []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		fields = r.MultipartForm.Value
		for name := range r.MultipartForm.File {
			fileNames = append(fileNames, name)
		}
		json.NewEncoder(w).Encode(entity.Song{Base: entity.Base{ID: 3}, Title: r.FormValue("title")})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithLogger(silentLogger()))
	svc := NewSongService(client, "songs")

	song := entity.Song{
		Title:  "Aquarela do Brasil",
		Author: "Ary Barroso",
		Parts: []entity.SongPart{
			{Instrument: "Trompete", Voice: "1"},
			{Instrument: "Trombone", Voice: "2"},
		},
	}
	created, err := svc.CreateWithFiles(context.Background(), SongUpload{
		Song:      song,
		FullSheet: &Upload{Filename: "grade.pdf", MIME: "application/pdf", Content: []byte("pdf")},
		PartSheets: map[int]Upload{
			0: {Filename: "trompete.pdf", MIME: "application/pdf", Content: []byte("pdf")},
			1: {Filename: "trombone.pdf", MIME: "application/pdf", Content: []byte("pdf")},
		},
		PartMidis: map[int]Upload{
			0: {Filename: "trompete.mid", MIME: "audio/midi", Content: []byte("mid")},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != 3 {
		t.Errorf("created.ID = %d", created.ID)
	}

	if got := fields["title"]; len(got) != 1 || got[0] != "Aquarela do Brasil" {
		t.Errorf("title field = %v", got)
	}
	var parts []entity.SongPart
	if err := json.Unmarshal([]byte(fields["parts"][0]), &parts); err != nil || len(parts) != 2 {
		t.Errorf("parts field = %v (%v)", fields["parts"], err)
	}

	want := map[string]bool{
		"full_sheet":   true,
		"part_0_sheet": true,
		"part_1_sheet": true,
		"part_0_midi":  true,
	}
	if len(fileNames) != len(want) {
		t.Fatalf("files = %v, want %v", fileNames, want)
	}
	for _, name := range fileNames {
		if !want[name] {
			t.Errorf("unexpected file field %q", name)
		}
	}
}
