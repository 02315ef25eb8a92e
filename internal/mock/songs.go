// ABOUTME: Song creation handler: accepts multipart form data with per-part
// ABOUTME: sheet/midi uploads and stores each file as a served blob.

package mock

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abmusica/maestro/internal/errors"
)

const maxUploadSize = 32 << 20

// filesResource is the internal record resource backing uploaded blobs.
const filesResource = "files"

// Multipart field names carrying song scalars.
var songScalarFields = []string{"title", "author", "arranger", "creationDate", "youtubeUrl", "referenceLink"}

var partFieldPattern = regexp.MustCompile(`^part_(\d+)_(sheet|midi)$`)

// createSong handles POST /api/songs. Multipart requests carry the scalar
// fields as form values, the part list as a JSON "parts" field, and the
// attached files under part_<i>_sheet / part_<i>_midi / full_sheet /
// full_midi. Plain JSON bodies fall through to the generic create.
func (h *Handlers) createSong(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		h.create("songs")(w, r)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		errors.Write(w, http.StatusBadRequest, errors.CodeInvalidBody, "formulário multipart inválido")
		return
	}

	doc := map[string]any{}
	for _, field := range songScalarFields {
		if value := r.FormValue(field); value != "" {
			doc[field] = value
		}
	}
	if doc["title"] == nil {
		errors.WriteField(w, http.StatusBadRequest, errors.CodeMissingField, "título é obrigatório", "title")
		return
	}

	var parts []map[string]any
	if raw := r.FormValue("parts"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &parts); err != nil {
			errors.WriteField(w, http.StatusBadRequest, errors.CodeInvalidRequest, "lista de partes inválida", "parts")
			return
		}
	}

	for field, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		url, err := h.storeFile(headers[0])
		if err != nil {
			errors.Write(w, http.StatusInternalServerError, errors.CodeInternal, "falha ao gravar arquivo")
			return
		}
		switch field {
		case "full_sheet":
			doc["fullSheetMusicUrl"] = url
		case "full_midi":
			doc["fullMidiUrl"] = url
		default:
			m := partFieldPattern.FindStringSubmatch(field)
			if m == nil {
				continue
			}
			index, _ := strconv.Atoi(m[1])
			for len(parts) <= index {
				parts = append(parts, map[string]any{})
			}
			if m[2] == "sheet" {
				parts[index]["urlSheet"] = url
			} else {
				parts[index]["urlMidi"] = url
			}
		}
	}
	if len(parts) > 0 {
		doc["parts"] = parts
	}

	record, err := h.store.CreateRecord("songs", doc)
	if err != nil {
		errors.Write(w, http.StatusInternalServerError, errors.CodeDatabase, "falha ao criar música")
		return
	}
	writeRecord(w, http.StatusCreated, record)
}

// storeFile persists an uploaded file as a record and returns its serving URL.
func (h *Handlers) storeFile(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return "", err
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	record, err := h.store.CreateRecord(filesResource, map[string]any{
		"filename": header.Filename,
		"mime":     mimeType,
		"content":  base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/api/files/%d", record.ID), nil
}

// serveFile streams a stored upload back out.
func (h *Handlers) serveFile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errors.Write(w, http.StatusBadRequest, errors.CodeInvalidRequest, "id inválido")
		return
	}
	record, err := h.store.GetRecord(filesResource, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	doc, err := record.Doc()
	if err != nil {
		errors.Write(w, http.StatusInternalServerError, errors.CodeInternal, "arquivo corrompido")
		return
	}
	encoded, _ := doc["content"].(string)
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		errors.Write(w, http.StatusInternalServerError, errors.CodeInternal, "arquivo corrompido")
		return
	}
	mimeType, _ := doc["mime"].(string)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	if filename, _ := doc["filename"].(string); filename != "" {
		w.Header().Set("Content-Disposition", "inline; filename="+strconv.Quote(filename))
	}
	w.Write(content)
}
