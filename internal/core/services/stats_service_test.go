package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports/mocks"
)

func TestStatsService_Execute(t *testing.T) {
	svc := NewStatsService(mocks.NewMockArtworkStore(catalogFixture()...))

	stats, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Total != 7 {
		t.Errorf("expected total 7, got %d", stats.Total)
	}
	if stats.Featured != domain.FeaturedCount {
		t.Errorf("expected %d featured, got %d", domain.FeaturedCount, stats.Featured)
	}
	if stats.Newest == nil || stats.Newest.ID != "7" {
		t.Errorf("unexpected newest: %+v", stats.Newest)
	}
	if stats.Oldest == nil || stats.Oldest.ID != "1" {
		t.Errorf("unexpected oldest: %+v", stats.Oldest)
	}

	expectedYears := []Bucket{
		{Label: "2021", Count: 1},
		{Label: "2022", Count: 1},
		{Label: "2023", Count: 3},
		{Label: "2024", Count: 2},
	}
	if len(stats.ByYear) != len(expectedYears) {
		t.Fatalf("expected %d year buckets, got %v", len(expectedYears), stats.ByYear)
	}
	for i, b := range expectedYears {
		if stats.ByYear[i] != b {
			t.Errorf("year bucket %d: expected %+v, got %+v", i, b, stats.ByYear[i])
		}
	}

	if stats.ByCategory[0] != (Bucket{Label: "Landscape", Count: 2}) {
		t.Errorf("expected Landscape first, got %+v", stats.ByCategory[0])
	}

	foundUncategorized := false
	for _, b := range stats.ByCategory {
		if b.Label == UncategorizedLabel {
			foundUncategorized = true
			if b.Count != 1 {
				t.Errorf("expected 1 uncategorized, got %d", b.Count)
			}
		}
	}
	if !foundUncategorized {
		t.Error("expected an uncategorized bucket")
	}

	if len(stats.ByMedium) != 7 {
		t.Errorf("expected 7 media, got %d", len(stats.ByMedium))
	}
	// Equal counts are ordered by label
	if stats.ByMedium[0].Label != "Acrylic on Canvas" {
		t.Errorf("expected alphabetical tie-break, got %s", stats.ByMedium[0].Label)
	}
}

func TestStatsService_Empty(t *testing.T) {
	stats, err := NewStatsService(mocks.NewMockArtworkStore()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 0 || stats.Newest != nil || len(stats.ByYear) != 0 {
		t.Errorf("unexpected stats for empty catalog: %+v", stats)
	}
}

func TestStatsService_Error(t *testing.T) {
	store := mocks.NewMockArtworkStore()
	store.SetListError(errors.New("boom"))

	if _, err := NewStatsService(store).Execute(context.Background()); !errors.Is(err, domain.ErrRetrieval) {
		t.Errorf("expected retrieval error, got %v", err)
	}
}
