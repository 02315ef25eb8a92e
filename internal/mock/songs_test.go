// ABOUTME: Tests for the multipart song creation handler.

package mock

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
)

func postMultipart(t *testing.T, url string, fields map[string]string, files map[string]file) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatal(err)
		}
	}
	for name, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+name+`"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.mime)
		part, err := writer.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		part.Write(f.content)
	}
	writer.Close()

	resp, err := http.Post(url, writer.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var doc map[string]any
	json.NewDecoder(resp.Body).Decode(&doc)
	return resp, doc
}

type file struct {
	name    string
	mime    string
	content []byte
}

func TestCreateSongMultipart(t *testing.T) {
	srv, _ := newTestServer(t)

	parts, _ := json.Marshal([]map[string]string{
		{"instrument": "Trompete", "voice": "1"},
		{"instrument": "Trombone", "voice": "2"},
	})
	sheet := []byte("%PDF-1.4 trompete")
	midi := []byte("MThd full midi")

	resp, doc := postMultipart(t, srv.URL+"/api/songs",
		map[string]string{
			"title":        "Aquarela do Brasil",
			"author":       "Ary Barroso",
			"creationDate": "2026-08-30",
			"parts":        string(parts),
		},
		map[string]file{
			"part_0_sheet": {"trompete.pdf", "application/pdf", sheet},
			"full_midi":    {"aquarela.mid", "audio/midi", midi},
		},
	)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, doc = %v", resp.StatusCode, doc)
	}
	if doc["title"] != "Aquarela do Brasil" {
		t.Errorf("title = %v", doc["title"])
	}

	gotParts, ok := doc["parts"].([]any)
	if !ok || len(gotParts) != 2 {
		t.Fatalf("parts = %v", doc["parts"])
	}
	first := gotParts[0].(map[string]any)
	sheetURL, _ := first["urlSheet"].(string)
	if sheetURL == "" {
		t.Fatal("part 0 has no sheet url")
	}
	second := gotParts[1].(map[string]any)
	if second["urlSheet"] != nil {
		t.Errorf("part 1 should have no sheet url, got %v", second["urlSheet"])
	}
	fullMidiURL, _ := doc["fullMidiUrl"].(string)
	if fullMidiURL == "" {
		t.Fatal("full midi url missing")
	}

	// The stored files round-trip byte for byte.
	fileResp, err := http.Get(srv.URL + sheetURL)
	if err != nil {
		t.Fatal(err)
	}
	defer fileResp.Body.Close()
	content, _ := io.ReadAll(fileResp.Body)
	if !bytes.Equal(content, sheet) {
		t.Errorf("sheet content = %q", content)
	}
	if ct := fileResp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("sheet content type = %q", ct)
	}
}

func TestCreateSongMultipartRequiresTitle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, envelope := postMultipart(t, srv.URL+"/api/songs",
		map[string]string{"author": "Ary Barroso"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if envelope["code"] != "missing_field" || envelope["field"] != "title" {
		t.Errorf("envelope = %v", envelope)
	}
}

func TestCreateSongJSONFallback(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, doc := doJSON(t, "POST", srv.URL+"/api/songs", map[string]any{
		"title":  "Asa Branca",
		"author": "Luiz Gonzaga",
	})
	if resp.StatusCode != http.StatusCreated || doc["title"] != "Asa Branca" {
		t.Fatalf("json create = %d %v", resp.StatusCode, doc)
	}
}
