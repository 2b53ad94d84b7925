// Package imagestore implements the upload step that turns raw image
// payloads into displayable references.
package imagestore

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

// DetectType sniffs the payload and returns its MIME type and extension
func DetectType(payload []byte) (string, string) {
	mtype := mimetype.Detect(payload)
	return mtype.String(), mtype.Extension()
}

// IsImage reports whether the payload sniffs as an image
func IsImage(payload []byte) bool {
	mime, _ := DetectType(payload)
	return strings.HasPrefix(mime, "image/")
}

// extensionFor picks the file extension for a draft: the upload name wins,
// otherwise the sniffed type
func extensionFor(draft domain.Draft) string {
	if ext := strings.ToLower(filepath.Ext(draft.Filename)); ext != "" {
		return ext
	}
	_, ext := DetectType(draft.Payload)
	if ext == "" {
		return ".bin"
	}
	return ext
}
