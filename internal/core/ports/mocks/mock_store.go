package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

// MockArtworkStore is an in-memory ArtworkStore with injectable failures
// and call tracking
type MockArtworkStore struct {
	mu        sync.Mutex
	artworks  []domain.Artwork
	listCalls int
	addCalls  int
	listErr   error
	addErr    error
	listGate  chan struct{}
	nextID    int
	nextTime  time.Time
}

// NewMockArtworkStore creates a store holding the given artworks
func NewMockArtworkStore(artworks ...domain.Artwork) *MockArtworkStore {
	return &MockArtworkStore{
		artworks: domain.CloneArtworks(artworks),
		nextTime: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ListArtworks returns a sorted copy, or the configured failure
func (m *MockArtworkStore) ListArtworks(ctx context.Context) ([]domain.Artwork, error) {
	m.mu.Lock()
	m.listCalls++
	gate := m.listGate
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, domain.NewRetrievalError("list artworks", ctx.Err())
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, domain.NewRetrievalError("list artworks", m.listErr)
	}

	out := domain.CloneArtworks(m.artworks)
	domain.SortCanonical(out)
	return out, nil
}

// AddArtwork stores a draft with a sequential ID
func (m *MockArtworkStore) AddArtwork(ctx context.Context, draft domain.Draft) (*domain.Artwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++

	if m.addErr != nil {
		return nil, domain.NewCreationError("add artwork", m.addErr)
	}
	if err := domain.ValidateDraft(draft); err != nil {
		return nil, domain.NewCreationError("add artwork", err)
	}

	m.nextID++
	m.nextTime = m.nextTime.Add(time.Minute)
	id := fmt.Sprintf("mock-%d", m.nextID)
	artwork := domain.NewArtwork(id, draft, "mock://"+id, m.nextTime)
	m.artworks = append([]domain.Artwork{artwork}, m.artworks...)
	return &artwork, nil
}

// SetListError makes ListArtworks fail with err (nil restores success)
func (m *MockArtworkStore) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

// SetAddError makes AddArtwork fail with err (nil restores success)
func (m *MockArtworkStore) SetAddError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addErr = err
}

// HoldLists makes ListArtworks block until the returned release func is called
func (m *MockArtworkStore) HoldLists() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.listGate = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(gate)
			m.mu.Lock()
			if m.listGate == gate {
				m.listGate = nil
			}
			m.mu.Unlock()
		})
	}
}

// Replace swaps the stored artworks
func (m *MockArtworkStore) Replace(artworks ...domain.Artwork) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artworks = domain.CloneArtworks(artworks)
}

// ListCalls returns how many times ListArtworks was invoked
func (m *MockArtworkStore) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

// AddCalls returns how many times AddArtwork was invoked
func (m *MockArtworkStore) AddCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addCalls
}
