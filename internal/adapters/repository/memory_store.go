package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kamal-hamza/folio/internal/adapters/imagestore"
	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
)

const (
	// DefaultListLatency stands in for a network round trip on listing
	DefaultListLatency = 500 * time.Millisecond

	// DefaultUploadLatency stands in for an upload round trip
	DefaultUploadLatency = 1500 * time.Millisecond
)

// MemoryStore is the reference ArtworkStore: a process-local collection
// that simulates the latency of a remote catalog service
type MemoryStore struct {
	mu            sync.RWMutex
	artworks      []domain.Artwork
	images        ports.ImageStore
	listLatency   time.Duration
	uploadLatency time.Duration
	now           func() time.Time
	newID         func() (string, error)
}

// MemoryOption configures a MemoryStore
type MemoryOption func(*MemoryStore)

// WithSeed preloads the collection
func WithSeed(artworks []domain.Artwork) MemoryOption {
	return func(s *MemoryStore) {
		s.artworks = domain.CloneArtworks(artworks)
	}
}

// WithListLatency sets the simulated listing delay (0 disables it)
func WithListLatency(d time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		s.listLatency = d
	}
}

// WithUploadLatency sets the simulated upload delay (0 disables it)
func WithUploadLatency(d time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		s.uploadLatency = d
	}
}

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithIDGenerator overrides the ID source
func WithIDGenerator(newID func() (string, error)) MemoryOption {
	return func(s *MemoryStore) {
		s.newID = newID
	}
}

// NewMemoryStore creates an in-memory catalog. A nil image store falls back
// to transient blob references.
func NewMemoryStore(images ports.ImageStore, opts ...MemoryOption) *MemoryStore {
	if images == nil {
		images = imagestore.NewMemoryStore()
	}

	s := &MemoryStore{
		artworks:      []domain.Artwork{},
		images:        images,
		listLatency:   DefaultListLatency,
		uploadLatency: DefaultUploadLatency,
		now:           time.Now,
		newID:         NewArtworkID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewArtworkID returns a time-ordered UUIDv7 string
func NewArtworkID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ListArtworks returns a fresh copy of the catalog, newest first
func (s *MemoryStore) ListArtworks(ctx context.Context) ([]domain.Artwork, error) {
	if err := sleep(ctx, s.listLatency); err != nil {
		return nil, domain.NewRetrievalError("list artworks", err)
	}

	return s.Snapshot(), nil
}

// AddArtwork validates the draft, runs the upload step and prepends the
// new record to the catalog
func (s *MemoryStore) AddArtwork(ctx context.Context, draft domain.Draft) (*domain.Artwork, error) {
	if err := sleep(ctx, s.uploadLatency); err != nil {
		return nil, domain.NewCreationError("add artwork", err)
	}

	if err := domain.ValidateDraft(draft); err != nil {
		return nil, domain.NewCreationError("add artwork", err)
	}

	id, err := s.newID()
	if err != nil {
		return nil, domain.NewCreationError("add artwork", fmt.Errorf("failed to generate id: %w", err))
	}

	imageURL, err := s.images.Put(ctx, id, draft)
	if err != nil {
		return nil, domain.NewCreationError("add artwork", fmt.Errorf("failed to store image: %w", err))
	}

	s.mu.Lock()
	createdAt := s.now().UTC()
	// Keep the newest record at the head even if the clock stalls or steps back
	for _, existing := range s.artworks {
		if !createdAt.After(existing.CreatedAt) {
			createdAt = existing.CreatedAt.Add(time.Millisecond)
		}
	}
	artwork := domain.NewArtwork(id, draft, imageURL, createdAt)
	s.artworks = append([]domain.Artwork{artwork}, s.artworks...)
	s.mu.Unlock()

	return &artwork, nil
}

// Snapshot returns the sorted collection without simulated latency
func (s *MemoryStore) Snapshot() []domain.Artwork {
	s.mu.RLock()
	out := domain.CloneArtworks(s.artworks)
	s.mu.RUnlock()

	domain.SortCanonical(out)
	return out
}

// Replace swaps the whole collection
func (s *MemoryStore) Replace(artworks []domain.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artworks = domain.CloneArtworks(artworks)
}

// Len returns the number of stored artworks
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.artworks)
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
