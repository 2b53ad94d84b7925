package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
)

// UncategorizedLabel groups artworks without a category
const UncategorizedLabel = "Uncategorized"

// StatsService summarizes the catalog
type StatsService struct {
	store ports.ArtworkStore
}

// NewStatsService creates a new stats service
func NewStatsService(store ports.ArtworkStore) *StatsService {
	return &StatsService{store: store}
}

// Bucket is one labelled count
type Bucket struct {
	Label string
	Count int
}

// Stats is the catalog summary
type Stats struct {
	Total      int
	Featured   int
	ByYear     []Bucket // ascending year
	ByMedium   []Bucket // descending count
	ByCategory []Bucket // descending count
	Newest     *domain.Artwork
	Oldest     *domain.Artwork
}

// Execute computes the summary from a fresh listing
func (s *StatsService) Execute(ctx context.Context) (*Stats, error) {
	artworks, err := s.store.ListArtworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return Summarize(artworks), nil
}

// Summarize computes the summary for the given artworks
func Summarize(artworks []domain.Artwork) *Stats {
	sorted := domain.CloneArtworks(artworks)
	domain.SortCanonical(sorted)

	stats := &Stats{
		Total:    len(sorted),
		Featured: len(domain.Featured(sorted)),
	}
	if len(sorted) == 0 {
		return stats
	}

	newest := sorted[0]
	oldest := sorted[len(sorted)-1]
	stats.Newest = &newest
	stats.Oldest = &oldest

	years := map[int]int{}
	media := map[string]int{}
	categories := map[string]int{}
	for _, a := range sorted {
		years[a.Year]++
		media[strings.TrimSpace(a.Medium)]++
		if a.HasCategory() {
			categories[strings.TrimSpace(a.Category)]++
		} else {
			categories[UncategorizedLabel]++
		}
	}

	yearKeys := make([]int, 0, len(years))
	for y := range years {
		yearKeys = append(yearKeys, y)
	}
	sort.Ints(yearKeys)
	for _, y := range yearKeys {
		stats.ByYear = append(stats.ByYear, Bucket{Label: strconv.Itoa(y), Count: years[y]})
	}

	stats.ByMedium = rankBuckets(media)
	stats.ByCategory = rankBuckets(categories)
	return stats
}

func rankBuckets(counts map[string]int) []Bucket {
	buckets := make([]Bucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, Bucket{Label: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}
