package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports/mocks"
)

func writeImage(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	return path
}

func TestUploadService_Execute(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		data          []byte
		request       UploadRequest
		expectedTitle string
		expectError   bool
		expectKind    error
	}{
		{
			name:          "valid upload",
			file:          "dreams.png",
			data:          []byte("\x89PNG\r\n\x1a\nrest"),
			request:       UploadRequest{Title: "Urban Dreams", Medium: "Oil", Year: 2023, Category: "Abstract"},
			expectedTitle: "Urban Dreams",
		},
		{
			name:          "title from filename",
			file:          "coastal-memories_02.jpg",
			data:          []byte("jpeg"),
			request:       UploadRequest{Medium: "Acrylic", Year: 2023},
			expectedTitle: "Coastal Memories 02",
		},
		{
			name:        "missing medium",
			file:        "a.png",
			data:        []byte("x"),
			request:     UploadRequest{Title: "A", Year: 2023},
			expectError: true,
			expectKind:  domain.ErrInvalidDraft,
		},
		{
			name:        "empty file",
			file:        "empty.png",
			data:        []byte{},
			request:     UploadRequest{Title: "Empty", Medium: "Ink", Year: 2023},
			expectError: true,
			expectKind:  domain.ErrCreation,
		},
		{
			name:        "bad year",
			file:        "y.png",
			data:        []byte("x"),
			request:     UploadRequest{Title: "Y", Medium: "Ink", Year: 0},
			expectError: true,
			expectKind:  domain.ErrCreation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockArtworkStore()
			svc := NewUploadService(store)

			req := tt.request
			req.ImagePath = writeImage(t, tt.file, tt.data)

			resp, err := svc.Execute(context.Background(), req)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, tt.expectKind) {
					t.Errorf("expected %v, got %v", tt.expectKind, err)
				}
				if store.AddCalls() != 0 {
					t.Error("invalid drafts should not reach the store")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resp.Artwork.Title != tt.expectedTitle {
				t.Errorf("expected title %q, got %q", tt.expectedTitle, resp.Artwork.Title)
			}
			if resp.Bytes != len(tt.data) {
				t.Errorf("expected %d bytes, got %d", len(tt.data), resp.Bytes)
			}

			listed, _ := store.ListArtworks(context.Background())
			if len(listed) != 1 || listed[0].ID != resp.Artwork.ID {
				t.Errorf("expected created artwork at head, got %v", ids(listed))
			}
		})
	}
}

func TestUploadService_FileErrors(t *testing.T) {
	svc := NewUploadService(mocks.NewMockArtworkStore())

	if _, err := svc.Execute(context.Background(), UploadRequest{}); err == nil {
		t.Error("expected error for empty path")
	}

	missing := filepath.Join(t.TempDir(), "missing.png")
	if _, err := svc.Execute(context.Background(), UploadRequest{ImagePath: missing, Title: "M", Medium: "Ink", Year: 2020}); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	if _, err := svc.Execute(context.Background(), UploadRequest{ImagePath: dir, Title: "D", Medium: "Ink", Year: 2020}); err == nil {
		t.Error("expected error for directory")
	}
}

func TestUploadService_StoreFailure(t *testing.T) {
	store := mocks.NewMockArtworkStore()
	store.SetAddError(errors.New("quota exceeded"))
	svc := NewUploadService(store)

	path := writeImage(t, "x.png", []byte("x"))
	_, err := svc.Execute(context.Background(), UploadRequest{ImagePath: path, Title: "X", Medium: "Ink", Year: 2025})
	if !errors.Is(err, domain.ErrCreation) {
		t.Errorf("expected creation error, got %v", err)
	}

	listed, _ := store.ListArtworks(context.Background())
	if len(listed) != 0 {
		t.Error("failed creation should not add a record")
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := map[string]string{
		"/tmp/urban-dreams.png":  "Urban Dreams",
		"night_market.final.jpg": "Night Market Final",
		"solo.webp":              "Solo",
		"--.png":                 "",
	}
	for in, want := range tests {
		if got := TitleFromFilename(in); got != want {
			t.Errorf("TitleFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
