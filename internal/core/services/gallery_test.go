package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports/mocks"
)

func mountAndLoad(t *testing.T, g *Gallery[int], signal int) {
	t.Helper()
	req := g.Mount(signal)
	if g.State() != StateLoading {
		t.Fatalf("expected loading after mount, got %s", g.State())
	}
	if !g.Apply(g.Fetch(context.Background(), req)) {
		t.Fatal("expected fetch result to be applied")
	}
}

func TestGallery_StartsLoading(t *testing.T) {
	g := NewGallery[int](mocks.NewMockArtworkStore(), nil)

	if g.State() != StateLoading {
		t.Errorf("expected loading, got %s", g.State())
	}
	if len(g.Artworks()) != 0 || len(g.Featured()) != 0 {
		t.Error("expected no artworks before the first fetch")
	}
	if g.DetailOpen() {
		t.Error("detail should be closed")
	}
}

func TestGallery_StateCoverage(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		expectedState GalleryState
		expectedFeat  int
	}{
		{name: "empty catalog", count: 0, expectedState: StateEmpty, expectedFeat: 0},
		{name: "single artwork", count: 1, expectedState: StatePopulated, expectedFeat: 1},
		{name: "below featured count", count: 5, expectedState: StatePopulated, expectedFeat: 5},
		{name: "exactly featured count", count: 6, expectedState: StatePopulated, expectedFeat: 6},
		{name: "one over featured count", count: 7, expectedState: StatePopulated, expectedFeat: 6},
		{name: "large catalog", count: 20, expectedState: StatePopulated, expectedFeat: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockArtworkStore(artworkSeries(tt.count)...)
			notifier := mocks.NewMockNotifier()
			g := NewGallery[int](store, notifier)

			mountAndLoad(t, g, 0)

			if g.State() != tt.expectedState {
				t.Errorf("expected state %s, got %s", tt.expectedState, g.State())
			}
			if len(g.Artworks()) != tt.count {
				t.Errorf("expected %d artworks, got %d", tt.count, len(g.Artworks()))
			}

			featured := g.Featured()
			if len(featured) != tt.expectedFeat {
				t.Fatalf("expected %d featured, got %d", tt.expectedFeat, len(featured))
			}

			// Featured must be the prefix of the full list
			all := g.Artworks()
			if !equalIDs(ids(featured), ids(all[:len(featured)])) {
				t.Errorf("featured %v is not a prefix of %v", ids(featured), ids(all))
			}

			if len(notifier.GetNotices()) != 0 {
				t.Errorf("expected no notices, got %v", notifier.GetNotices())
			}
			if store.ListCalls() != 1 {
				t.Errorf("expected exactly one fetch, got %d", store.ListCalls())
			}
		})
	}
}

func TestGallery_SortsUnorderedResults(t *testing.T) {
	g := NewGallery[int](mocks.NewMockArtworkStore(), nil)
	req := g.Mount(0)

	series := artworkSeries(3)
	applied := g.Apply(FetchResult{Seq: req.Seq, Artworks: series})
	if !applied {
		t.Fatal("expected result to be applied")
	}

	expected := []string{"art-02", "art-01", "art-00"}
	if got := ids(g.Artworks()); !equalIDs(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	// The caller's slice must not be reordered
	if series[0].ID != "art-00" {
		t.Error("Apply modified the result slice")
	}
}

func TestGallery_FetchFailure(t *testing.T) {
	store := mocks.NewMockArtworkStore(artworkSeries(3)...)
	store.SetListError(errors.New("network down"))
	notifier := mocks.NewMockNotifier()
	g := NewGallery[int](store, notifier)

	req := g.Mount(0)
	res := g.Fetch(context.Background(), req)
	if !errors.Is(res.Err, domain.ErrRetrieval) {
		t.Fatalf("expected retrieval error, got %v", res.Err)
	}

	g.Apply(res)
	if g.State() != StateEmpty {
		t.Errorf("expected empty after failure, got %s", g.State())
	}

	// A duplicate delivery must not notify twice
	if g.Apply(res) {
		t.Error("duplicate result should be discarded")
	}

	notices := notifier.GetNotices()
	if len(notices) != 1 {
		t.Fatalf("expected exactly one notice, got %d", len(notices))
	}
	if notices[0].Kind != domain.NoticeError || notices[0].Message != LoadFailedMessage {
		t.Errorf("unexpected notice: %+v", notices[0])
	}
}

func TestGallery_FailureAfterPopulated(t *testing.T) {
	store := mocks.NewMockArtworkStore(artworkSeries(3)...)
	notifier := mocks.NewMockNotifier()
	g := NewGallery[int](store, notifier)
	mountAndLoad(t, g, 0)

	store.SetListError(errors.New("timeout"))
	if state := g.Load(context.Background()); state != StateEmpty {
		t.Errorf("expected empty, got %s", state)
	}
	if len(g.Artworks()) != 0 || len(g.Featured()) != 0 {
		t.Error("failed fetch should clear the collection")
	}
	if len(notifier.GetNotices()) != 1 {
		t.Errorf("expected one notice, got %d", len(notifier.GetNotices()))
	}
}

func TestGallery_LatestRequestWins(t *testing.T) {
	t.Run("stale result after newer", func(t *testing.T) {
		notifier := mocks.NewMockNotifier()
		g := NewGallery[int](mocks.NewMockArtworkStore(), notifier)

		first := g.Mount(0)
		second, issued := g.SetSignal(1)
		if !issued {
			t.Fatal("expected a new fetch for a changed signal")
		}

		if !g.Apply(FetchResult{Seq: second.Seq, Artworks: artworkSeries(2)}) {
			t.Fatal("latest result should apply")
		}
		if g.Apply(FetchResult{Seq: first.Seq, Err: errors.New("late failure")}) {
			t.Error("stale result should be discarded")
		}

		if g.State() != StatePopulated || len(g.Artworks()) != 2 {
			t.Errorf("stale result changed state: %s with %d artworks", g.State(), len(g.Artworks()))
		}
		if len(notifier.GetNotices()) != 0 {
			t.Error("stale failure should not notify")
		}
	})

	t.Run("stale result before newer", func(t *testing.T) {
		g := NewGallery[int](mocks.NewMockArtworkStore(), nil)

		first := g.Mount(0)
		second := g.Refresh()

		if g.Apply(FetchResult{Seq: first.Seq, Artworks: artworkSeries(4)}) {
			t.Error("superseded result should be discarded")
		}
		if g.State() != StateLoading {
			t.Errorf("expected to keep loading, got %s", g.State())
		}

		g.Apply(FetchResult{Seq: second.Seq})
		if g.State() != StateEmpty {
			t.Errorf("expected empty, got %s", g.State())
		}
	})
}

func TestGallery_SetSignal(t *testing.T) {
	store := mocks.NewMockArtworkStore(artworkSeries(2)...)
	g := NewGallery[string](store, nil)

	req := g.Mount("a")
	g.Apply(g.Fetch(context.Background(), req))

	if _, issued := g.SetSignal("a"); issued {
		t.Error("unchanged signal should not refetch")
	}
	if g.State() != StatePopulated {
		t.Errorf("expected populated, got %s", g.State())
	}

	next, issued := g.SetSignal("b")
	if !issued {
		t.Fatal("changed signal should refetch")
	}
	if next.Seq <= req.Seq {
		t.Errorf("expected a newer request, got %d after %d", next.Seq, req.Seq)
	}
	if g.Signal() != "b" {
		t.Errorf("expected signal b, got %q", g.Signal())
	}
	if g.State() != StateLoading {
		t.Errorf("expected loading, got %s", g.State())
	}
}

func TestGallery_SelectionRoundTrip(t *testing.T) {
	store := mocks.NewMockArtworkStore(artworkSeries(8)...)
	g := NewGallery[int](store, nil)
	mountAndLoad(t, g, 0)

	before := ids(g.Artworks())
	featuredBefore := ids(g.Featured())

	if !g.Select("art-03") {
		t.Fatal("expected selection to succeed")
	}
	if !g.DetailOpen() {
		t.Error("detail should be open")
	}
	selected, ok := g.Selected()
	if !ok || selected.ID != "art-03" {
		t.Errorf("unexpected selection: %+v", selected)
	}

	g.Dismiss()
	if g.DetailOpen() {
		t.Error("detail should be closed")
	}
	if _, ok := g.Selected(); ok {
		t.Error("snapshot should be cleared")
	}

	if !equalIDs(before, ids(g.Artworks())) {
		t.Error("selection changed the collection")
	}
	if !equalIDs(featuredBefore, ids(g.Featured())) {
		t.Error("selection changed the featured list")
	}
	if store.ListCalls() != 1 {
		t.Errorf("selection should not fetch, got %d calls", store.ListCalls())
	}

	listed, err := store.ListArtworks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(before, ids(listed)) {
		t.Error("store contents changed by selection")
	}
}

func TestGallery_SelectRejected(t *testing.T) {
	g := NewGallery[int](mocks.NewMockArtworkStore(artworkSeries(2)...), nil)

	if g.Select("art-00") {
		t.Error("selection while loading should be rejected")
	}

	mountAndLoad(t, g, 0)
	if g.Select("missing") {
		t.Error("unknown id should be rejected")
	}
	if g.DetailOpen() {
		t.Error("detail should stay closed")
	}
}

func TestGallery_SelectionIsSnapshot(t *testing.T) {
	original := testArtwork("a", "Original", "Ink", "", 2021, baseTime)
	store := mocks.NewMockArtworkStore(original)
	g := NewGallery[int](store, nil)
	mountAndLoad(t, g, 0)

	g.Select("a")

	edited := original
	edited.Title = "Edited"
	store.Replace(edited)

	req := g.Refresh()
	if g.DetailOpen() {
		t.Error("detail should be hidden while loading")
	}
	g.Apply(g.Fetch(context.Background(), req))

	if !g.DetailOpen() {
		t.Fatal("detail should reopen once populated")
	}
	selected, _ := g.Selected()
	if selected.Title != "Original" {
		t.Errorf("expected frozen snapshot, got %q", selected.Title)
	}
	if g.Artworks()[0].Title != "Edited" {
		t.Error("grid should show the refetched record")
	}
}

func TestGallery_RefetchToEmptyClosesDetail(t *testing.T) {
	store := mocks.NewMockArtworkStore(artworkSeries(2)...)
	g := NewGallery[int](store, nil)
	mountAndLoad(t, g, 0)
	g.Select("art-01")

	store.Replace()
	g.Load(context.Background())

	if g.State() != StateEmpty {
		t.Errorf("expected empty, got %s", g.State())
	}
	if _, ok := g.Selected(); ok {
		t.Error("selection should be cleared when the catalog empties")
	}
}

func TestGallery_ScrollFeatured(t *testing.T) {
	g := NewGallery[int](mocks.NewMockArtworkStore(artworkSeries(10)...), nil)

	g.ScrollFeatured(3)
	if g.CarouselOffset() != 0 {
		t.Errorf("scrolling with nothing featured should stay at 0, got %d", g.CarouselOffset())
	}

	mountAndLoad(t, g, 0)

	steps := []struct {
		delta    int
		expected int
	}{
		{delta: -1, expected: 0},
		{delta: 1, expected: 1},
		{delta: 3, expected: 4},
		{delta: 10, expected: 5},
		{delta: -2, expected: 3},
		{delta: -10, expected: 0},
	}
	for _, s := range steps {
		g.ScrollFeatured(s.delta)
		if g.CarouselOffset() != s.expected {
			t.Errorf("after %+d expected offset %d, got %d", s.delta, s.expected, g.CarouselOffset())
		}
	}

	store := mocks.NewMockArtworkStore(artworkSeries(2)...)
	g2 := NewGallery[int](store, nil)
	mountAndLoad(t, g2, 0)
	g2.ScrollFeatured(10)
	if g2.CarouselOffset() != 1 {
		t.Errorf("expected offset 1, got %d", g2.CarouselOffset())
	}
}

func TestGallery_PendingFetchBlocksUntilReleased(t *testing.T) {
	store := mocks.NewMockArtworkStore(artworkSeries(1)...)
	release := store.HoldLists()
	g := NewGallery[int](store, nil)

	req := g.Mount(0)
	done := make(chan FetchResult, 1)
	go func() {
		done <- g.Fetch(context.Background(), req)
	}()

	select {
	case <-done:
		t.Fatal("fetch should still be pending")
	case <-time.After(20 * time.Millisecond):
	}
	if g.State() != StateLoading {
		t.Errorf("expected loading while pending, got %s", g.State())
	}

	release()
	res := <-done
	g.Apply(res)
	if g.State() != StatePopulated {
		t.Errorf("expected populated, got %s", g.State())
	}
}

func TestGallery_CreationScenario(t *testing.T) {
	older := testArtwork("old", "Old", "Oil", "", 2023, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testArtwork("new", "New", "Oil", "", 2024, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store := mocks.NewMockArtworkStore(older, newer)
	g := NewGallery[int](store, nil)

	mountAndLoad(t, g, 0)
	if got := ids(g.Artworks()); !equalIDs(got, []string{"new", "old"}) {
		t.Fatalf("expected [new old], got %v", got)
	}

	created, err := store.AddArtwork(context.Background(), domain.Draft{
		Title:   "X",
		Medium:  "Digital",
		Year:    2025,
		Payload: []byte("img"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Host bumps its refresh signal after a successful upload
	req, _ := g.SetSignal(1)
	g.Apply(g.Fetch(context.Background(), req))

	all := g.Artworks()
	if len(all) != 3 {
		t.Fatalf("expected 3 artworks, got %d", len(all))
	}
	if all[0].ID != created.ID {
		t.Errorf("expected new record first, got %s", all[0].ID)
	}
	if len(g.Featured()) != 3 {
		t.Errorf("expected 3 featured, got %d", len(g.Featured()))
	}
}
