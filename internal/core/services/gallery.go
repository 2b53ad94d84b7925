package services

import (
	"context"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
)

// LoadFailedMessage is reported through the notifier when a fetch fails
const LoadFailedMessage = "Failed to load artworks"

// GalleryState is the top-level state of the gallery controller
type GalleryState int

const (
	StateLoading GalleryState = iota
	StateEmpty
	StatePopulated
)

func (s GalleryState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "loading"
	}
}

// FetchRequest tags a single catalog fetch. Only the most recent request
// may change the gallery.
type FetchRequest struct {
	Seq uint64
}

// FetchResult is the outcome of a FetchRequest
type FetchResult struct {
	Seq      uint64
	Artworks []domain.Artwork
	Err      error
}

// Gallery drives the fetch lifecycle, the featured subset and the
// selection state of the artwork gallery.
//
// S is the type of the host's refresh signal; a change in its value
// triggers a refetch. Gallery is not safe for concurrent use: all methods
// except Fetch must be called from the host's event loop. Fetch only reads
// the store and may run on any goroutine.
type Gallery[S comparable] struct {
	store    ports.ArtworkStore
	notifier ports.Notifier

	signal  S
	mounted bool
	seq     uint64

	state    GalleryState
	artworks []domain.Artwork
	featured []domain.Artwork
	selected *domain.Artwork
	carousel int
}

// NewGallery creates a gallery in the Loading state
func NewGallery[S comparable](store ports.ArtworkStore, notifier ports.Notifier) *Gallery[S] {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Gallery[S]{
		store:    store,
		notifier: notifier,
		state:    StateLoading,
		artworks: []domain.Artwork{},
		featured: []domain.Artwork{},
	}
}

// Mount records the initial refresh signal and issues the first fetch
func (g *Gallery[S]) Mount(signal S) FetchRequest {
	g.signal = signal
	g.mounted = true
	return g.begin()
}

// SetSignal issues a fetch only when the refresh signal changed.
// The boolean reports whether a fetch was issued.
func (g *Gallery[S]) SetSignal(signal S) (FetchRequest, bool) {
	if g.mounted && signal == g.signal {
		return FetchRequest{}, false
	}
	return g.Mount(signal), true
}

// Refresh issues a fetch without changing the signal
func (g *Gallery[S]) Refresh() FetchRequest {
	g.mounted = true
	return g.begin()
}

func (g *Gallery[S]) begin() FetchRequest {
	g.seq++
	g.state = StateLoading
	return FetchRequest{Seq: g.seq}
}

// Fetch performs the store call for req. It does not modify the gallery.
func (g *Gallery[S]) Fetch(ctx context.Context, req FetchRequest) FetchResult {
	artworks, err := g.store.ListArtworks(ctx)
	return FetchResult{Seq: req.Seq, Artworks: artworks, Err: err}
}

// Apply resolves a pending fetch. Results for superseded requests, and
// repeated results for an already resolved request, are discarded and
// Apply returns false.
func (g *Gallery[S]) Apply(res FetchResult) bool {
	if res.Seq != g.seq || g.state != StateLoading {
		return false
	}

	if res.Err != nil {
		g.notifier.Notify(domain.NoticeError, LoadFailedMessage)
		g.artworks = []domain.Artwork{}
	} else {
		artworks := domain.CloneArtworks(res.Artworks)
		domain.SortCanonical(artworks)
		g.artworks = artworks
	}

	g.featured = domain.Featured(g.artworks)
	g.clampCarousel()

	if len(g.artworks) == 0 {
		g.state = StateEmpty
		// The detail overlay only exists on top of a populated grid
		g.selected = nil
		return true
	}

	g.state = StatePopulated
	return true
}

// Load runs a full fetch cycle synchronously and returns the resulting state
func (g *Gallery[S]) Load(ctx context.Context) GalleryState {
	req := g.Refresh()
	g.Apply(g.Fetch(ctx, req))
	return g.state
}

// Select opens the detail view for the artwork with the given id.
// It captures a copy of the record; later refetches do not update it.
func (g *Gallery[S]) Select(id string) bool {
	if g.state != StatePopulated {
		return false
	}

	for _, a := range g.artworks {
		if a.ID == id {
			snapshot := a
			g.selected = &snapshot
			return true
		}
	}
	return false
}

// Dismiss closes the detail view and clears the snapshot
func (g *Gallery[S]) Dismiss() {
	g.selected = nil
}

// ScrollFeatured moves the featured carousel by delta, clamped at both ends
func (g *Gallery[S]) ScrollFeatured(delta int) {
	g.carousel += delta
	g.clampCarousel()
}

func (g *Gallery[S]) clampCarousel() {
	max := len(g.featured) - 1
	if g.carousel > max {
		g.carousel = max
	}
	if g.carousel < 0 {
		g.carousel = 0
	}
}

// State returns the current top-level state
func (g *Gallery[S]) State() GalleryState {
	return g.state
}

// Signal returns the refresh signal of the latest mount
func (g *Gallery[S]) Signal() S {
	return g.signal
}

// Artworks returns a copy of the fetched collection in canonical order
func (g *Gallery[S]) Artworks() []domain.Artwork {
	return domain.CloneArtworks(g.artworks)
}

// Featured returns a copy of the featured prefix
func (g *Gallery[S]) Featured() []domain.Artwork {
	return domain.CloneArtworks(g.featured)
}

// Selected returns the detail snapshot, if any
func (g *Gallery[S]) Selected() (domain.Artwork, bool) {
	if g.selected == nil {
		return domain.Artwork{}, false
	}
	return *g.selected, true
}

// DetailOpen reports whether the detail overlay is showing
func (g *Gallery[S]) DetailOpen() bool {
	return g.state == StatePopulated && g.selected != nil
}

// CarouselOffset returns the index of the first visible featured card
func (g *Gallery[S]) CarouselOffset() int {
	return g.carousel
}

type discardNotifier struct{}

func (discardNotifier) Notify(domain.NoticeKind, string) {}
