package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FeaturedCount is the size of the featured prefix shown above the grid
const FeaturedCount = 6

// Artwork represents a single catalog record describing one creative work
type Artwork struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Medium      string    `yaml:"medium" json:"medium"`
	Year        int       `yaml:"year" json:"year"`
	Category    string    `yaml:"category,omitempty" json:"category,omitempty"`
	ImageURL    string    `yaml:"image_url" json:"image_url"`
	CreatedAt   time.Time `yaml:"created_at" json:"created_at"`
}

// Draft is the caller-supplied input for creating an artwork.
// ID, ImageURL and CreatedAt are assigned by the store.
type Draft struct {
	Title       string
	Description string
	Medium      string
	Year        int
	Category    string
	Filename    string // original upload name, used for the image extension
	Payload     []byte
}

// HasDescription reports whether the optional description is present
func (a Artwork) HasDescription() bool {
	return strings.TrimSpace(a.Description) != ""
}

// HasCategory reports whether the optional category is present
func (a Artwork) HasCategory() bool {
	return strings.TrimSpace(a.Category) != ""
}

// GetDisplayDate returns the creation date in the given layout
func (a Artwork) GetDisplayDate(layout string) string {
	if layout == "" {
		layout = "2006-01-02"
	}
	return a.CreatedAt.Local().Format(layout)
}

// SortCanonical orders artworks newest first.
// Equal timestamps fall back to descending ID so the order is total.
func SortCanonical(artworks []Artwork) {
	sort.SliceStable(artworks, func(i, j int) bool {
		if !artworks[i].CreatedAt.Equal(artworks[j].CreatedAt) {
			return artworks[i].CreatedAt.After(artworks[j].CreatedAt)
		}
		return artworks[i].ID > artworks[j].ID
	})
}

// Featured returns the first FeaturedCount artworks of an already
// canonically ordered list. The result is a copy.
func Featured(artworks []Artwork) []Artwork {
	n := len(artworks)
	if n > FeaturedCount {
		n = FeaturedCount
	}
	out := make([]Artwork, n)
	copy(out, artworks[:n])
	return out
}

// CloneArtworks returns a copy of the slice so callers never share backing storage
func CloneArtworks(artworks []Artwork) []Artwork {
	if artworks == nil {
		return []Artwork{}
	}
	out := make([]Artwork, len(artworks))
	copy(out, artworks)
	return out
}

// ValidateDraft checks the required draft fields
func ValidateDraft(d Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidDraft)
	}
	if len(d.Title) > 200 {
		return fmt.Errorf("%w: title too long (max 200 characters)", ErrInvalidDraft)
	}
	if strings.TrimSpace(d.Medium) == "" {
		return fmt.Errorf("%w: medium cannot be empty", ErrInvalidDraft)
	}
	if d.Year < 1 || d.Year > 9999 {
		return fmt.Errorf("%w: year %d is not a calendar year", ErrInvalidDraft, d.Year)
	}
	if len(d.Payload) == 0 {
		return fmt.Errorf("%w: image payload is empty", ErrInvalidDraft)
	}
	return nil
}

// NewArtwork builds an artwork from a validated draft
func NewArtwork(id string, d Draft, imageURL string, createdAt time.Time) Artwork {
	return Artwork{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Medium:      strings.TrimSpace(d.Medium),
		Year:        d.Year,
		Category:    strings.TrimSpace(d.Category),
		ImageURL:    imageURL,
		CreatedAt:   createdAt.UTC(),
	}
}
