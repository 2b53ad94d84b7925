package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
)

// ListService handles listing, filtering and searching artworks
type ListService struct {
	store ports.ArtworkStore
}

// NewListService creates a new list service
func NewListService(store ports.ArtworkStore) *ListService {
	return &ListService{
		store: store,
	}
}

// ListRequest represents a request to list artworks
type ListRequest struct {
	Category string // Filter by category (optional, case-insensitive)
	Medium   string // Filter by medium (optional, substring match)
	Year     int    // Filter by year (optional, 0 = any)
	Limit    int    // Maximum results (0 = unlimited)
}

// ListResponse represents the response from listing artworks
type ListResponse struct {
	Artworks []domain.Artwork
	Featured []domain.Artwork
	Total    int // Matches before Limit was applied
}

// Execute lists artworks in canonical order with optional filters
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	artworks, err := s.store.ListArtworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}

	artworks = filterArtworks(artworks, req)
	domain.SortCanonical(artworks)

	total := len(artworks)
	featured := domain.Featured(artworks)
	if req.Limit > 0 && len(artworks) > req.Limit {
		artworks = artworks[:req.Limit]
	}

	return &ListResponse{
		Artworks: artworks,
		Featured: featured,
		Total:    total,
	}, nil
}

func filterArtworks(artworks []domain.Artwork, req ListRequest) []domain.Artwork {
	medium := strings.ToLower(strings.TrimSpace(req.Medium))
	category := strings.TrimSpace(req.Category)

	filtered := make([]domain.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		if medium != "" && !strings.Contains(strings.ToLower(a.Medium), medium) {
			continue
		}
		if req.Year != 0 && a.Year != req.Year {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// FindByID returns the artwork with the given id
func (s *ListService) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	artworks, err := s.store.ListArtworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	for _, a := range artworks {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("artwork not found: %s", id)
}

// SearchRequest represents a search query
type SearchRequest struct {
	Query string
}

// SearchResponse represents search results
type SearchResponse struct {
	Artworks []domain.Artwork
	Total    int
}

// Search performs fuzzy search on titles, media, categories and years
func (s *ListService) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	artworks, err := s.store.ListArtworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	domain.SortCanonical(artworks)

	if strings.TrimSpace(req.Query) == "" {
		return &SearchResponse{
			Artworks: artworks,
			Total:    len(artworks),
		}, nil
	}

	matches := fuzzySearch(artworks, req.Query)

	return &SearchResponse{
		Artworks: matches,
		Total:    len(matches),
	}, nil
}

type fuzzyMatch struct {
	artwork domain.Artwork
	score   int
}

// fuzzySearch scores each artwork by its best field. Ties keep canonical order.
func fuzzySearch(artworks []domain.Artwork, query string) []domain.Artwork {
	query = strings.TrimSpace(query)

	var matches []fuzzyMatch
	for _, a := range artworks {
		if score := fuzzyMatchScore(a.Title, query); score > 0 {
			matches = append(matches, fuzzyMatch{artwork: a, score: score + 1000})
			continue
		}
		if score := fuzzyMatchScore(a.Medium, query); score > 0 {
			matches = append(matches, fuzzyMatch{artwork: a, score: score + 500})
			continue
		}
		if score := fuzzyMatchScore(a.Category, query); score > 0 {
			matches = append(matches, fuzzyMatch{artwork: a, score: score + 200})
			continue
		}
		if score := fuzzyMatchScore(strconv.Itoa(a.Year), query); score >= 9000 {
			matches = append(matches, fuzzyMatch{artwork: a, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]domain.Artwork, len(matches))
	for i, m := range matches {
		result[i] = m.artwork
	}
	return result
}

// fuzzyMatchScore calculates a score for fuzzy matching query against text.
// Returns 0 if no match, higher scores for better matches.
func fuzzyMatchScore(text, query string) int {
	if text == "" || query == "" {
		return 0
	}

	if text == query {
		return 10000
	}

	textLower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	if textLower == queryLower {
		return 9000
	}

	if idx := strings.Index(textLower, queryLower); idx >= 0 {
		if idx == 0 {
			return 7000
		}
		return 5000
	}

	textRunes := []rune(textLower)
	queryRunes := []rune(queryLower)

	score := 0
	queryIdx := 0
	run := 0
	first, last := -1, -1

	for i := 0; i < len(textRunes) && queryIdx < len(queryRunes); i++ {
		if textRunes[i] != queryRunes[queryIdx] {
			continue
		}

		score += 100
		if i == last+1 && last >= 0 {
			run++
			score += run * 50
		} else {
			run = 0
		}

		// Word starts weigh more
		if i == 0 || unicode.IsSpace(textRunes[i-1]) || textRunes[i-1] == '-' {
			score += 200
		}

		if first < 0 {
			first = i
		}
		last = i
		queryIdx++
	}

	if queryIdx != len(queryRunes) {
		return 0
	}

	// Spread-out matches rank below tight ones
	score -= (last - first + 1 - len(queryRunes)) * 10
	if score < 1 {
		score = 1
	}
	return score
}
