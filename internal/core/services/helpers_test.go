package services

import (
	"fmt"
	"time"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testArtwork(id, title, medium, category string, year int, created time.Time) domain.Artwork {
	return domain.Artwork{
		ID:        id,
		Title:     title,
		Medium:    medium,
		Year:      year,
		Category:  category,
		ImageURL:  "mock://" + id,
		CreatedAt: created,
	}
}

// artworkSeries returns n artworks in ascending creation order
func artworkSeries(n int) []domain.Artwork {
	out := make([]domain.Artwork, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("art-%02d", i)
		out = append(out, testArtwork(id, "Work "+id, "Oil on Canvas", "Painting", 2020, baseTime.Add(time.Duration(i)*time.Hour)))
	}
	return out
}

func ids(artworks []domain.Artwork) []string {
	out := make([]string, len(artworks))
	for i, a := range artworks {
		out[i] = a.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
