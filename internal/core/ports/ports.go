package ports

import (
	"context"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

// ArtworkStore defines the port for the artwork catalog.
// Implementations may be local or remote; callers must treat both
// operations as fallible.
type ArtworkStore interface {
	// ListArtworks returns a fresh snapshot in canonical order (newest first).
	// Failures are *domain.CatalogError of kind RETRIEVAL.
	ListArtworks(ctx context.Context) ([]domain.Artwork, error)

	// AddArtwork creates an artwork from a draft and returns the stored record.
	// Failures are *domain.CatalogError of kind CREATION.
	AddArtwork(ctx context.Context, draft domain.Draft) (*domain.Artwork, error)
}

// ImageStore defines the port for the upload step that turns a raw image
// payload into a displayable reference
type ImageStore interface {
	// Put stores the payload and returns its image URL
	Put(ctx context.Context, id string, draft domain.Draft) (string, error)
}

// Notifier is the fire-and-forget sink for user-facing messages
type Notifier interface {
	Notify(kind domain.NoticeKind, message string)
}

// FileOpener defines the port for opening files or URLs with the host's
// default application
type FileOpener interface {
	// Open opens the target with the system's default application
	Open(ctx context.Context, target string) error
}

// Clipboard defines the port for writing text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
