// ABOUTME: Song service: regular CRUD plus the multipart create that
// ABOUTME: uploads sheet/midi files per part under deterministic field names.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"

	"github.com/abmusica/maestro/internal/entity"
)

// Upload is one file attached to a multipart request.
type Upload struct {
	Filename string
	MIME     string
	Content  []byte
}

// SongUpload is the payload of a song creation: the scalar song data plus
// the optional full-score files and the per-part files, keyed by part index.
type SongUpload struct {
	Song       entity.Song
	FullSheet  *Upload
	FullMidi   *Upload
	PartSheets map[int]Upload
	PartMidis  map[int]Upload
}

// SongService extends the generic service with the multipart create.
type SongService struct {
	*Service[entity.Song]
}

// NewSongService builds the song service.
func NewSongService(client *Client, endpoint string) *SongService {
	return &SongService{Service: NewService[entity.Song](client, endpoint)}
}

// PartSheetField returns the multipart field name of part i's sheet file.
func PartSheetField(i int) string { return fmt.Sprintf("part_%d_sheet", i) }

// PartMidiField returns the multipart field name of part i's midi file.
func PartMidiField(i int) string { return fmt.Sprintf("part_%d_midi", i) }

// Multipart field names of the full-score files.
const (
	FullSheetField = "full_sheet"
	FullMidiField  = "full_midi"
)

// CreateWithFiles posts the song as multipart form data: scalar fields as
// form values, the part list as a JSON field, and every attached file under
// its index-based field name.
func (s *SongService) CreateWithFiles(ctx context.Context, up SongUpload) (*entity.Song, error) {
	fields := map[string]string{
		"title":         up.Song.Title,
		"author":        up.Song.Author,
		"arranger":      up.Song.Arranger,
		"creationDate":  up.Song.CreationDate.String(),
		"youtubeUrl":    up.Song.YoutubeURL,
		"referenceLink": up.Song.ReferenceLink,
	}
	if len(up.Song.Parts) > 0 {
		parts, err := json.Marshal(up.Song.Parts)
		if err != nil {
			return nil, &Error{Status: 0, Message: "encode song parts", Cause: err}
		}
		fields["parts"] = string(parts)
	}

	files := make(map[string]Upload)
	if up.FullSheet != nil {
		files[FullSheetField] = *up.FullSheet
	}
	if up.FullMidi != nil {
		files[FullMidiField] = *up.FullMidi
	}
	for i, f := range up.PartSheets {
		files[PartSheetField(i)] = f
	}
	for i, f := range up.PartMidis {
		files[PartMidiField(i)] = f
	}

	out := new(entity.Song)
	if err := s.Client().PostMultipart(ctx, s.Endpoint(), fields, files, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostMultipart sends a multipart/form-data POST. Fields and files are
// written in sorted field order so the payload is reproducible.
func (c *Client) PostMultipart(ctx context.Context, endpoint string, fields map[string]string, files map[string]Upload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, name := range sortedKeys(fields) {
		if fields[name] == "" {
			continue
		}
		if err := writer.WriteField(name, fields[name]); err != nil {
			return &Error{Status: 0, Message: "encode form field", Cause: err}
		}
	}
	for _, name := range sortedFileKeys(files) {
		file := files[name]
		part, err := writer.CreatePart(fileHeader(name, file))
		if err != nil {
			return &Error{Status: 0, Message: "encode form file", Cause: err}
		}
		if _, err := part.Write(file.Content); err != nil {
			return &Error{Status: 0, Message: "encode form file", Cause: err}
		}
	}
	if err := writer.Close(); err != nil {
		return &Error{Status: 0, Message: "encode form", Cause: err}
	}

	target := c.URL(endpoint)
	c.logRequest(http.MethodPost, target, nil)

	resp, err := c.send(ctx, http.MethodPost, target, buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		if ctx.Err() != nil {
			return &Error{Status: 0, Message: err.Error(), Cause: err}
		}
		c.logger.Printf("[POST] %s network error, retrying once: %v", target, err)
		resp, err = c.send(ctx, http.MethodPost, target, buf.Bytes(), writer.FormDataContentType())
		if err != nil {
			return &Error{Status: 0, Message: err.Error(), Cause: err}
		}
	}
	return c.finish(http.MethodPost, target, resp, out)
}

func fileHeader(field string, file Upload) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		escapeQuotes(field), escapeQuotes(file.Filename)))
	mime := file.MIME
	if mime == "" {
		mime = "application/octet-stream"
	}
	h.Set("Content-Type", mime)
	return h
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFileKeys(m map[string]Upload) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
