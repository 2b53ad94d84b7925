package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports/mocks"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	return NewFileStore(path, mocks.NewMockImageStore(), WithListLatency(0), WithUploadLatency(0))
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := newTestFileStore(t)

	artworks, err := store.ListArtworks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artworks) != 0 {
		t.Errorf("expected empty catalog, got %d", len(artworks))
	}
}

func TestFileStore_AddArtwork_Persists(t *testing.T) {
	store := newTestFileStore(t)

	created, err := store.AddArtwork(context.Background(), testDraft("Dusk", 2024))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second store reading the same file sees the record
	other := NewFileStore(store.Path(), nil, WithListLatency(0))
	artworks, err := other.ListArtworks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(artworks) != 1 || artworks[0].ID != created.ID {
		t.Fatalf("expected persisted artwork %s, got %v", created.ID, ids(artworks))
	}
	if !artworks[0].CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at did not round-trip: %v vs %v", artworks[0].CreatedAt, created.CreatedAt)
	}
}

func TestFileStore_PicksUpExternalEdits(t *testing.T) {
	store := newTestFileStore(t)
	if err := SaveCatalog(store.Path(), SampleArtworks()[:2]); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	first, _ := store.ListArtworks(context.Background())
	if len(first) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(first))
	}

	if err := SaveCatalog(store.Path(), SampleArtworks()); err != nil {
		t.Fatalf("failed to rewrite catalog: %v", err)
	}

	second, _ := store.ListArtworks(context.Background())
	if len(second) != 6 {
		t.Errorf("expected reload to see 6 artworks, got %d", len(second))
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	store := newTestFileStore(t)
	if err := os.WriteFile(store.Path(), []byte("artworks: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := store.ListArtworks(context.Background())
	if !errors.Is(err, domain.ErrRetrieval) {
		t.Errorf("expected retrieval error, got %v", err)
	}

	_, err = store.AddArtwork(context.Background(), testDraft("X", 2024))
	if !errors.Is(err, domain.ErrCreation) {
		t.Errorf("expected creation error, got %v", err)
	}
}

func TestSaveCatalog_WritesCanonicalOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.yaml")

	if err := SaveCatalog(path, SampleArtworks()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read catalog: %v", err)
	}
	content := string(data)
	if strings.Index(content, "Geometric Flow") > strings.Index(content, "Nature Synthesis") {
		t.Error("expected newest artwork to be written first")
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 6 {
		t.Errorf("expected 6 artworks, got %d", len(loaded))
	}
}
