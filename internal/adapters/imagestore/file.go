package imagestore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

// FileStore copies payloads into a directory, named by title slug and
// content hash, and returns file:// references
type FileStore struct {
	dir string
}

// NewFileStore creates an image store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the storage directory
func (s *FileStore) Dir() string {
	return s.dir
}

// Put writes the payload unless an identical file already exists
func (s *FileStore) Put(ctx context.Context, id string, draft domain.Draft) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum := sha256.Sum256(draft.Payload)
	hash := hex.EncodeToString(sum[:])

	name := fmt.Sprintf("%s-%s%s", domain.GenerateSlug(draft.Title), hash[:12], extensionFor(draft))
	destPath := filepath.Join(s.dir, name)

	// Same name means same content; reuse the existing file
	if existing, err := os.ReadFile(destPath); err == nil && bytes.Equal(existing, draft.Payload) {
		return fileURL(destPath)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	if err := os.WriteFile(destPath, draft.Payload, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return fileURL(destPath)
}

func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image path: %w", err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}
