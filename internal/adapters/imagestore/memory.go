package imagestore

import (
	"context"
	"sync"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

// BlobPrefix marks transient in-process image references
const BlobPrefix = "blob:folio/"

type blob struct {
	mime string
	data []byte
}

// MemoryStore keeps payloads in memory and hands out blob: references
// that are only valid for the lifetime of the process
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

// NewMemoryStore creates an empty in-memory image store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string]blob),
	}
}

// Put stores a copy of the payload under a blob: reference derived from id
func (s *MemoryStore) Put(ctx context.Context, id string, draft domain.Draft) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mime, _ := DetectType(draft.Payload)
	data := make([]byte, len(draft.Payload))
	copy(data, draft.Payload)

	url := BlobPrefix + id + extensionFor(draft)

	s.mu.Lock()
	s.blobs[url] = blob{mime: mime, data: data}
	s.mu.Unlock()

	return url, nil
}

// Get returns the payload and MIME type behind a blob reference
func (s *MemoryStore) Get(url string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[url]
	if !ok {
		return nil, "", false
	}
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return data, b.mime, true
}
