// ABOUTME: File-to-media-row conversion for repeater fields.
// ABOUTME: Content becomes a data URL; the media type is inferred from MIME.

package form

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/abmusica/maestro/internal/schema"
)

// DataURL encodes file content as a data URL with the given MIME type.
func DataURL(mime string, content []byte) string {
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// MediaTypeFor infers the repeater row type from a MIME type: anything
// video-ish is a video, everything else counts as a photo.
func MediaTypeFor(mime string) string {
	if strings.Contains(mime, "video") {
		return "video"
	}
	return "photo"
}

// TitleFor derives the default row title from a file name: the base name up
// to the first dot.
func TitleFor(filename string) string {
	base := filename
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}

// FileRow builds a repeater row from an uploaded file.
func FileRow(filename, mime string, content []byte, now time.Time) schema.MediaRow {
	return schema.MediaRow{
		URL:   DataURL(mime, content),
		Title: TitleFor(filename),
		Type:  MediaTypeFor(mime),
		Date:  now,
	}
}
