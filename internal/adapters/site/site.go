package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/kamal-hamza/folio/internal/core/domain"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(template.New("site").Funcs(template.FuncMap{
	"imageURL": imageURL,
}).ParseFS(templateFS, "templates/*.tmpl"))

// Renderer writes the gallery as a static site: an index page with the
// featured works and the full grid, plus one detail page per artwork
type Renderer struct {
	outDir     string
	title      string
	dateLayout string
	now        func() time.Time
	logger     *slog.Logger
	blobs      BlobSource
}

// BlobSource returns the payload behind an in-memory image reference
type BlobSource func(ref string) (data []byte, mime string, ok bool)

// Option configures a Renderer
type Option func(*Renderer)

// WithTitle sets the page heading
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// WithDateLayout sets the layout for displayed dates
func WithDateLayout(layout string) Option {
	return func(r *Renderer) { r.dateLayout = layout }
}

// WithClock overrides the generation timestamp source
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// WithBlobSource lets the renderer publish images that only exist in memory
func WithBlobSource(src BlobSource) Option {
	return func(r *Renderer) { r.blobs = src }
}

// NewRenderer creates a renderer writing into outDir
func NewRenderer(outDir string, opts ...Option) *Renderer {
	r := &Renderer{
		outDir:     outDir,
		title:      "Creative Works",
		dateLayout: "2006-01-02",
		now:        time.Now,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result summarizes a render
type Result struct {
	IndexPath string
	Pages     int
	Images    int
	Skipped   []string // artworks whose local image could not be copied
}

type card struct {
	domain.Artwork
	Page  string
	Image string
	Date  string
}

type indexData struct {
	Title     string
	Generated string
	Featured  []card
	Artworks  []card
	Total     int
}

type detailData struct {
	Title     string
	Artwork   card
	Generated string
}

// Render writes the site for the given artworks
func (r *Renderer) Render(ctx context.Context, artworks []domain.Artwork) (*Result, error) {
	sorted := domain.CloneArtworks(artworks)
	domain.SortCanonical(sorted)

	for _, dir := range []string{r.outDir, filepath.Join(r.outDir, "artworks"), filepath.Join(r.outDir, "images")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	res := &Result{IndexPath: filepath.Join(r.outDir, "index.html")}
	generated := r.now().Format(r.dateLayout)

	cards := make([]card, 0, len(sorted))
	for _, a := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		image, copied, err := r.publishImage(a)
		if err != nil {
			r.logger.Warn("image not exported", "id", a.ID, "url", a.ImageURL, "error", err)
			res.Skipped = append(res.Skipped, a.ID)
		}
		if copied {
			res.Images++
		}

		cards = append(cards, card{
			Artwork: a,
			Page:    "artworks/" + PageName(a),
			Image:   image,
			Date:    a.GetDisplayDate(r.dateLayout),
		})
	}

	featured := cards
	if len(featured) > domain.FeaturedCount {
		featured = featured[:domain.FeaturedCount]
	}

	if err := r.writeTemplate(res.IndexPath, "index", indexData{
		Title:     r.title,
		Generated: generated,
		Featured:  featured,
		Artworks:  cards,
		Total:     len(cards),
	}); err != nil {
		return nil, err
	}

	for _, c := range cards {
		// Detail pages live one level down
		detail := c
		detail.Image = relativeFromDetail(c.Image)

		dest := filepath.Join(r.outDir, "artworks", PageName(c.Artwork))
		if err := r.writeTemplate(dest, "artwork", detailData{
			Title:     r.title,
			Artwork:   detail,
			Generated: generated,
		}); err != nil {
			return nil, err
		}
		res.Pages++
	}

	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.outDir, "style.css"), css, 0644); err != nil {
		return nil, fmt.Errorf("failed to write stylesheet: %w", err)
	}

	r.logger.Info("site rendered", "dir", r.outDir, "pages", res.Pages, "images", res.Images)
	return res, nil
}

func (r *Renderer) writeTemplate(dest, name string, data any) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(dest), err)
	}
	defer f.Close()

	if err := templates.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", filepath.Base(dest), err)
	}
	return nil
}

// publishImage copies local images next to the pages and returns the
// reference the index page should use. Remote references pass through.
func (r *Renderer) publishImage(a domain.Artwork) (string, bool, error) {
	u, err := url.Parse(a.ImageURL)
	if err != nil {
		return a.ImageURL, false, nil
	}

	var (
		data []byte
		name string
	)
	switch {
	case u.Scheme == "file":
		src := filepath.FromSlash(u.Path)
		if data, err = os.ReadFile(src); err != nil {
			return a.ImageURL, false, err
		}
		name = filepath.Base(src)

	case u.Scheme == "blob" && r.blobs != nil:
		var ok bool
		if data, _, ok = r.blobs(a.ImageURL); !ok {
			return a.ImageURL, false, fmt.Errorf("blob not found")
		}
		name = path.Base(u.Opaque)

	default:
		return a.ImageURL, false, nil
	}

	if err := os.WriteFile(filepath.Join(r.outDir, "images", name), data, 0644); err != nil {
		return a.ImageURL, false, err
	}
	return path.Join("images", name), true, nil
}

func relativeFromDetail(ref string) string {
	if strings.HasPrefix(ref, "images/") {
		return "../" + ref
	}
	return ref
}

// imageURL admits the reference schemes the catalog produces
func imageURL(ref string) template.URL {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "", "http", "https", "file", "blob":
		return template.URL(ref)
	}
	return ""
}

// PageName returns the detail page file name for an artwork
func PageName(a domain.Artwork) string {
	return domain.GenerateSlug(a.ID) + ".html"
}
