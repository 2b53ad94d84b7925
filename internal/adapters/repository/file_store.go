package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
)

// catalogFile is the on-disk layout of catalog.yaml
type catalogFile struct {
	Artworks []domain.Artwork `yaml:"artworks"`
}

// FileStore is an ArtworkStore that mirrors a MemoryStore to a YAML file.
// The file is re-read before every listing so edits made by other
// processes show up on the next refresh.
type FileStore struct {
	path string
	mem  *MemoryStore
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the catalog file at path
func NewFileStore(path string, images ports.ImageStore, opts ...MemoryOption) *FileStore {
	return &FileStore{
		path: path,
		mem:  NewMemoryStore(images, opts...),
	}
}

// Path returns the catalog file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the catalog file into memory. A missing file is an empty catalog.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload()
}

// ListArtworks reloads the catalog file and returns it newest first
func (s *FileStore) ListArtworks(ctx context.Context) ([]domain.Artwork, error) {
	s.mu.Lock()
	err := s.reload()
	s.mu.Unlock()
	if err != nil {
		return nil, domain.NewRetrievalError("list artworks", err)
	}

	return s.mem.ListArtworks(ctx)
}

// AddArtwork creates the artwork and flushes the catalog file
func (s *FileStore) AddArtwork(ctx context.Context, draft domain.Draft) (*domain.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reload(); err != nil {
		return nil, domain.NewCreationError("add artwork", err)
	}

	artwork, err := s.mem.AddArtwork(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err := SaveCatalog(s.path, s.mem.Snapshot()); err != nil {
		return nil, domain.NewCreationError("add artwork", err)
	}

	return artwork, nil
}

func (s *FileStore) reload() error {
	artworks, err := LoadCatalog(s.path)
	if err != nil {
		return err
	}
	s.mem.Replace(artworks)
	return nil
}

// LoadCatalog reads artworks from a catalog file
func LoadCatalog(path string) ([]domain.Artwork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Artwork{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if file.Artworks == nil {
		return []domain.Artwork{}, nil
	}
	return file.Artworks, nil
}

// SaveCatalog writes artworks to a catalog file in canonical order
func SaveCatalog(path string, artworks []domain.Artwork) error {
	sorted := domain.CloneArtworks(artworks)
	domain.SortCanonical(sorted)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := yaml.Marshal(catalogFile{Artworks: sorted})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}
