package repository

import (
	"time"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

// SampleArtworks returns the starter catalog written by `folio init`
func SampleArtworks() []domain.Artwork {
	return []domain.Artwork{
		{
			ID:          "1",
			Title:       "Digital Horizon",
			Description: "An AI-generated landscape exploring the intersection of natural beauty and digital artistry.",
			Medium:      "AI Generated (MidJourney)",
			Year:        2024,
			Category:    "Landscape",
			ImageURL:    "/uploads/09d913d1-2fe9-4193-ac0e-46d503d86008.png",
			CreatedAt:   mustTime("2024-01-15T10:30:00Z"),
		},
		{
			ID:          "2",
			Title:       "Abstract Reflection",
			Description: "A mixed media piece combining traditional techniques with digital manipulation.",
			Medium:      "Mixed Media",
			Year:        2023,
			Category:    "Abstract",
			ImageURL:    "/uploads/2ca0d6d3-64d7-437c-aa35-243da50437b9.png",
			CreatedAt:   mustTime("2023-11-20T14:15:00Z"),
		},
		{
			ID:          "3",
			Title:       "Urban Dreams",
			Description: "Street photography meets digital art in this exploration of city life.",
			Medium:      "Photography",
			Year:        2024,
			Category:    "Urban",
			ImageURL:    "/uploads/4341aa23-8e7d-428d-bc52-0cf88f62e31c.png",
			CreatedAt:   mustTime("2024-02-08T16:45:00Z"),
		},
		{
			ID:          "4",
			Title:       "Ethereal Portrait",
			Description: "An experimental portrait series pushing the boundaries of digital manipulation.",
			Medium:      "Digital Art",
			Year:        2023,
			Category:    "Portrait",
			ImageURL:    "/uploads/54f0764f-7c11-44aa-9d2a-e7c9c2650e2d.png",
			CreatedAt:   mustTime("2023-09-12T11:20:00Z"),
		},
		{
			ID:          "5",
			Title:       "Geometric Flow",
			Description: "Mathematical beauty expressed through algorithmic art generation.",
			Medium:      "AI Generated (MidJourney)",
			Year:        2024,
			Category:    "Abstract",
			ImageURL:    "/uploads/c1970e61-dbda-436b-884a-18ab3fb5b8f7.png",
			CreatedAt:   mustTime("2024-03-22T09:10:00Z"),
		},
		{
			ID:          "6",
			Title:       "Nature Synthesis",
			Description: "Combining organic forms with synthetic textures in a harmony of old and new.",
			Medium:      "3D Modeling",
			Year:        2023,
			Category:    "Conceptual",
			ImageURL:    "/uploads/c89f9cc9-32ac-4ed7-bfa2-6b1856f74894.png",
			CreatedAt:   mustTime("2023-07-30T13:55:00Z"),
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
