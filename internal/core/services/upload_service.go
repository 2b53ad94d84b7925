package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
)

// MaxImageBytes caps the size of a single upload
const MaxImageBytes = 32 << 20

// UploadService turns an image file plus metadata into a catalog record
type UploadService struct {
	store ports.ArtworkStore
}

// NewUploadService creates a new upload service
func NewUploadService(store ports.ArtworkStore) *UploadService {
	return &UploadService{store: store}
}

// UploadRequest represents a request to add an artwork from a file
type UploadRequest struct {
	ImagePath   string
	Title       string // defaults to a title derived from the file name
	Description string
	Medium      string
	Year        int
	Category    string
}

// UploadResponse represents the created artwork
type UploadResponse struct {
	Artwork *domain.Artwork
	Bytes   int
}

// Execute reads the image and creates the artwork
func (s *UploadService) Execute(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	payload, err := readImage(req.ImagePath)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = TitleFromFilename(req.ImagePath)
	}

	draft := domain.Draft{
		Title:       title,
		Description: req.Description,
		Medium:      req.Medium,
		Year:        req.Year,
		Category:    req.Category,
		Filename:    filepath.Base(req.ImagePath),
		Payload:     payload,
	}

	// Reject obviously bad drafts before paying the upload latency
	if err := domain.ValidateDraft(draft); err != nil {
		return nil, domain.NewCreationError("add artwork", err)
	}

	artwork, err := s.store.AddArtwork(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &UploadResponse{
		Artwork: artwork,
		Bytes:   len(payload),
	}, nil
}

func readImage(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("image path is a directory: %s", path)
	}
	if info.Size() > MaxImageBytes {
		return nil, fmt.Errorf("image too large: %d bytes (max %d)", info.Size(), MaxImageBytes)
	}

	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return payload, nil
}

// TitleFromFilename turns "urban-dreams_v2.png" into "Urban Dreams V2"
func TitleFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
