package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestDetectType_PNG(t *testing.T) {
	mime, ext := DetectType(pngHeader)
	if mime != "image/png" {
		t.Errorf("expected image/png, got %s", mime)
	}
	if ext != ".png" {
		t.Errorf("expected .png, got %s", ext)
	}
	if !IsImage(pngHeader) {
		t.Error("expected PNG payload to be an image")
	}
	if IsImage([]byte("just some text")) {
		t.Error("plain text must not be treated as an image")
	}
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	s := NewMemoryStore()
	draft := domain.Draft{Title: "Dusk", Filename: "dusk.PNG", Payload: pngHeader}

	url, err := s.Put(context.Background(), "abc", draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != BlobPrefix+"abc.png" {
		t.Errorf("unexpected url %q", url)
	}

	data, mime, ok := s.Get(url)
	if !ok {
		t.Fatal("expected blob to be retrievable")
	}
	if mime != "image/png" || string(data) != string(pngHeader) {
		t.Errorf("blob mismatch: mime=%s len=%d", mime, len(data))
	}

	if _, _, ok := s.Get(BlobPrefix + "missing"); ok {
		t.Error("expected missing blob lookup to fail")
	}
}

func TestMemoryStore_SniffsExtensionWithoutFilename(t *testing.T) {
	s := NewMemoryStore()

	url, err := s.Put(context.Background(), "x", domain.Draft{Payload: pngHeader})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("expected sniffed .png extension, got %q", url)
	}
}

func TestFileStore_Put_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	s := NewFileStore(dir)

	url, err := s.Put(context.Background(), "id-1", domain.Draft{Title: "Urban Dreams", Filename: "shot.png", Payload: pngHeader})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(url, "file://") {
		t.Fatalf("expected file:// url, got %q", url)
	}

	path := filepath.FromSlash(strings.TrimPrefix(url, "file://"))
	if !strings.HasPrefix(filepath.Base(path), "urban-dreams-") {
		t.Errorf("expected slugged filename, got %s", filepath.Base(path))
	}

	stored, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read stored image: %v", err)
	}
	if string(stored) != string(pngHeader) {
		t.Error("stored content doesn't match payload")
	}
}

func TestFileStore_Put_DeduplicatesIdenticalContent(t *testing.T) {
	s := NewFileStore(t.TempDir())
	draft := domain.Draft{Title: "Same", Filename: "a.png", Payload: pngHeader}

	first, err := s.Put(context.Background(), "1", draft)
	if err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	second, err := s.Put(context.Background(), "2", draft)
	if err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	if first != second {
		t.Errorf("expected identical content to reuse %q, got %q", first, second)
	}

	entries, _ := os.ReadDir(s.Dir())
	if len(entries) != 1 {
		t.Errorf("expected 1 stored file, got %d", len(entries))
	}
}

func TestFileStore_Put_DifferentContentDifferentFiles(t *testing.T) {
	s := NewFileStore(t.TempDir())

	a, _ := s.Put(context.Background(), "1", domain.Draft{Title: "Graph", Filename: "a.png", Payload: []byte("content A")})
	b, _ := s.Put(context.Background(), "2", domain.Draft{Title: "Graph", Filename: "b.png", Payload: []byte("content B")})

	if a == b {
		t.Error("expected different content to produce different files")
	}
}

func TestPut_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewMemoryStore().Put(ctx, "x", domain.Draft{Payload: pngHeader}); err == nil {
		t.Error("expected memory store to honour cancellation")
	}
	if _, err := NewFileStore(t.TempDir()).Put(ctx, "x", domain.Draft{Payload: pngHeader}); err == nil {
		t.Error("expected file store to honour cancellation")
	}
}
