package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/adapters/notify"
	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/ports"
	"github.com/kamal-hamza/folio/internal/core/services"
	"github.com/kamal-hamza/folio/pkg/ui"
)

var galleryWatch bool

// galleryCmd represents the gallery command
var galleryCmd = &cobra.Command{
	Use:     "gallery",
	Aliases: []string{"g"},
	Short:   "Browse the catalog in a full-screen gallery (alias: g)",
	Long: `Launch a full-screen gallery of your artworks.

The six newest works are featured in a carousel above a grid of every
artwork. Selecting a card opens its detail view.

Keyboard Shortcuts:
  Navigation:
    ←/h →/l     Previous / next card
    ↑/k ↓/j     Previous / next row
    [ ]         Scroll featured carousel
    1-6         Open a featured work

  Actions:
    Enter       Open detail view
    o           Open image in the viewer
    c           Copy image URL
    r           Refresh

  General:
    Esc         Close detail view
    ?           Toggle help
    q           Quit`,
	RunE: runGallery,
}

func init() {
	galleryCmd.Flags().BoolVarP(&galleryWatch, "watch", "w", true, "Refresh when the catalog file changes on disk")
}

func runGallery(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	watch := appConfig.WatchCatalog
	if cmd.Flags().Changed("watch") {
		watch = galleryWatch
	}

	var changes <-chan struct{}
	if watch && !useMemory {
		w, err := newCatalogWatcher(appVault.CatalogPath(), appConfig.WatchDebounce(), appLogger)
		if err != nil {
			// Not fatal: the gallery still works with manual refresh
			appLogger.Warn("catalog watch disabled", "error", err)
		} else {
			defer w.Close()
			changes = w.Changes()
		}
	}

	m := newGalleryModel(ctx, galleryDeps{
		store:     artworkStore,
		opener:    fileOpener,
		clipboard: clipboard,
		changes:   changes,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running gallery: %w", err)
	}
	return nil
}

// galleryDeps are the host integrations the gallery talks to
type galleryDeps struct {
	store     ports.ArtworkStore
	opener    ports.FileOpener
	clipboard ports.Clipboard
	changes   <-chan struct{}
}

// Gallery model
type galleryModel struct {
	ctx     context.Context
	gallery *services.Gallery[int]
	toasts  *notify.Queue
	signal  int
	changes <-chan struct{}

	opener    ports.FileOpener
	clipboard ports.Clipboard

	spinner  spinner.Model
	detail   viewport.Model
	help     help.Model
	keys     galleryKeyMap
	showHelp bool

	cursor int // Selected grid card
	offset int // First visible grid row

	width  int
	height int
	ready  bool

	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time

	cardWidth    int
	descLines    int
	dateLayout   string
	copyOnSelect bool
}

// Key bindings
type galleryKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevFeat  key.Binding
	NextFeat  key.Binding
	Featured  key.Binding
	Select    key.Binding
	Open      key.Binding
	Copy      key.Binding
	Refresh   key.Binding
	Escape    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func (k galleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Refresh, k.Help, k.Quit}
}

func (k galleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevFeat, k.NextFeat, k.Featured, k.Select},
		{k.Open, k.Copy, k.Refresh},
		{k.Escape, k.Help, k.Quit},
	}
}

var galleryKeys = galleryKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "row up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "row down"),
	),
	PrevFeat: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "carousel back"),
	),
	NextFeat: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "carousel forward"),
	),
	Featured: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "open featured"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open image"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy url"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

func newGalleryModel(ctx context.Context, deps galleryDeps) galleryModel {
	toasts := notify.NewQueue()
	notifier := notify.Multi{toasts, notify.NewLogger(appLogger)}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.StylePrimary

	vp := viewport.New(60, 16)

	m := galleryModel{
		ctx:       ctx,
		gallery:   services.NewGallery[int](deps.store, notifier),
		toasts:    toasts,
		changes:   deps.changes,
		opener:    deps.opener,
		clipboard: deps.clipboard,
		spinner:   sp,
		detail:    vp,
		help:      help.New(),
		keys:      galleryKeys,

		cardWidth:  34,
		descLines:  2,
		dateLayout: "2006-01-02",
	}
	if appConfig != nil {
		m.cardWidth = appConfig.CardWidth
		m.descLines = appConfig.DescriptionLines
		m.dateLayout = appConfig.DisplayDateFormat
		m.copyOnSelect = appConfig.CopyOnSelect
	}
	return m
}

// Messages

type fetchResultMsg struct {
	result services.FetchResult
}

type statusMsg struct {
	message string
	style   lipgloss.Style
}

type clearMessageMsg struct{}

func (m galleryModel) Init() tea.Cmd {
	req := m.gallery.Mount(m.signal)
	return tea.Batch(m.spinner.Tick, m.fetch(req), waitForChange(m.changes))
}

// fetch runs the store call off the update loop; the result is applied
// back in Update so only the newest request can land
func (m galleryModel) fetch(req services.FetchRequest) tea.Cmd {
	g := m.gallery
	ctx := m.ctx
	return func() tea.Msg {
		return fetchResultMsg{result: g.Fetch(ctx, req)}
	}
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		m.detail.Width = max(20, msg.Width-12)
		m.detail.Height = max(5, msg.Height-12)
		m.adjustViewport()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.showHelp:
			return m.updateHelp(msg)
		case m.gallery.DetailOpen():
			return m.updateDetail(msg)
		default:
			return m.updateGallery(msg)
		}

	case fetchResultMsg:
		if !m.gallery.Apply(msg.result) {
			return m, nil
		}
		m.clampCursor()
		return m, m.flushToasts()

	case catalogChangedMsg:
		m.signal++
		cmds := []tea.Cmd{waitForChange(m.changes)}
		if req, ok := m.gallery.SetSignal(m.signal); ok {
			cmds = append(cmds, m.fetch(req))
		}
		return m, tea.Batch(cmds...)

	case statusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearMessageMsg{} })

	case clearMessageMsg:
		if time.Now().After(m.messageExpiry) {
			m.message = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m galleryModel) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	artworks := m.gallery.Artworks()
	populated := m.gallery.State() == services.StatePopulated

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetch(m.gallery.Refresh())

	case !populated:
		// Everything below needs cards on screen

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(artworks)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor-m.columns() >= 0 {
			m.cursor -= m.columns()
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor+m.columns() < len(artworks) {
			m.cursor += m.columns()
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.PrevFeat):
		m.gallery.ScrollFeatured(-1)

	case key.Matches(msg, m.keys.NextFeat):
		m.gallery.ScrollFeatured(1)

	case key.Matches(msg, m.keys.Featured):
		featured := m.gallery.Featured()
		n := int(msg.Runes[0] - '1')
		if n < len(featured) {
			return m.selectArtwork(featured[n].ID)
		}

	case key.Matches(msg, m.keys.Select):
		return m.selectArtwork(artworks[m.cursor].ID)

	case key.Matches(msg, m.keys.Open):
		return m, m.openImage(artworks[m.cursor])

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyURL(artworks[m.cursor])
	}

	return m, nil
}

func (m galleryModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected, _ := m.gallery.Selected()

	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.gallery.Dismiss()

	case key.Matches(msg, m.keys.Open):
		return m, m.openImage(selected)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyURL(selected)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetch(m.gallery.Refresh())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	default:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m galleryModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.showHelp = false
	}
	return m, nil
}

func (m galleryModel) selectArtwork(id string) (tea.Model, tea.Cmd) {
	if !m.gallery.Select(id) {
		return m, nil
	}

	selected, _ := m.gallery.Selected()
	m.detail.SetContent(m.renderDetailBody(selected))
	m.detail.GotoTop()

	if m.copyOnSelect {
		return m, m.copyURL(selected)
	}
	return m, nil
}

// flushToasts turns queued notifications into a status line
func (m galleryModel) flushToasts() tea.Cmd {
	toasts := m.toasts.Drain()
	if len(toasts) == 0 {
		return nil
	}
	last := toasts[len(toasts)-1]
	return func() tea.Msg {
		return statusMsg{message: last.Message, style: toastStyle(last.Kind)}
	}
}

func toastStyle(kind domain.NoticeKind) lipgloss.Style {
	switch kind {
	case domain.NoticeError:
		return ui.StyleError
	case domain.NoticeWarning:
		return ui.StyleWarning
	case domain.NoticeSuccess:
		return ui.StyleSuccess
	default:
		return ui.StyleInfo
	}
}

func (m galleryModel) openImage(a domain.Artwork) tea.Cmd {
	opener := m.opener
	ctx := m.ctx
	return func() tea.Msg {
		target, err := resolveImageTarget(a)
		if err != nil {
			return statusMsg{message: err.Error(), style: ui.StyleWarning}
		}
		if err := opener.Open(ctx, target); err != nil {
			return statusMsg{message: fmt.Sprintf("Failed to open image: %v", err), style: ui.StyleError}
		}
		return statusMsg{message: "Opened: " + a.Title, style: ui.StyleSuccess}
	}
}

func (m galleryModel) copyURL(a domain.Artwork) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		if err := clip.WriteAll(a.ImageURL); err != nil {
			return statusMsg{message: fmt.Sprintf("Failed to copy: %v", err), style: ui.StyleError}
		}
		return statusMsg{message: "Copied image URL for " + a.Title, style: ui.StyleSuccess}
	}
}

// Layout

func (m galleryModel) columns() int {
	cols := m.width / (m.cardWidth + 1)
	if cols < 1 {
		return 1
	}
	return cols
}

func (m galleryModel) cardHeight() int {
	// border + title + badges + category + description
	return 2 + 3 + m.descLines
}

func (m galleryModel) visibleRows() int {
	// header, featured strip, section titles, footer
	reserved := 8 + m.cardHeight()
	rows := (m.height - reserved) / m.cardHeight()
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *galleryModel) clampCursor() {
	n := len(m.gallery.Artworks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

func (m *galleryModel) adjustViewport() {
	row := m.cursor / m.columns()
	rows := m.visibleRows()

	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}
	if row < m.offset {
		m.offset = row
	}
}

// Views

func (m galleryModel) View() string {
	if !m.ready {
		return "\n  Loading gallery..."
	}
	if m.showHelp {
		return m.viewHelp()
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n\n")

	switch m.gallery.State() {
	case services.StateLoading:
		s.WriteString(m.viewLoading())
	case services.StateEmpty:
		s.WriteString(m.viewEmpty())
	case services.StatePopulated:
		// The grid stays mounted under the overlay
		if m.gallery.DetailOpen() {
			s.WriteString(m.viewDetail())
			s.WriteString("\n")
		}
		s.WriteString(m.viewPopulated())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m galleryModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	title := titleStyle.Render(ui.IconArtwork + " Folio Gallery")

	var info string
	switch m.gallery.State() {
	case services.StateLoading:
		info = "loading"
	default:
		info = fmt.Sprintf("%d artworks", len(m.gallery.Artworks()))
	}
	stats := ui.StyleMuted.Render(info)

	spacer := m.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if spacer < 0 {
		spacer = 0
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", spacer), stats)
}

func (m galleryModel) viewLoading() string {
	inner := m.cardWidth - 4
	skeleton := strings.Repeat("░", inner)

	cards := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		lines := []string{skeleton, strings.Repeat("░", inner/2), ""}
		for j := 0; j < m.descLines; j++ {
			lines = append(lines, strings.Repeat("░", inner*2/3))
		}
		cards = append(cards, ui.StyleCardSkeleton.Width(m.cardWidth-2).Render(strings.Join(lines, "\n")))
	}

	return "  " + m.spinner.View() + " " + ui.StyleMuted.Render("Loading artworks...") + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m galleryModel) viewEmpty() string {
	box := lipgloss.NewStyle().
		Padding(2, 4).
		Align(lipgloss.Center)

	return box.Render(
		ui.StyleHeader.Render("No Artworks Yet") + "\n\n" +
			ui.StyleMuted.Render("Add your first piece with 'folio add <image>'"),
	)
}

func (m galleryModel) viewPopulated() string {
	artworks := m.gallery.Artworks()
	featured := m.gallery.Featured()

	var current string
	if m.cursor < len(artworks) {
		current = artworks[m.cursor].ID
	}

	var s strings.Builder

	// Featured carousel
	s.WriteString(ui.StyleHeader.Render(ui.IconFeatured + " Featured Works"))
	s.WriteString("\n")

	fit := m.columns()
	start := m.gallery.CarouselOffset()
	end := min(start+fit, len(featured))
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := fmt.Sprintf("%d", i+1)
		cards = append(cards, m.renderCard(featured[i], label, featured[i].ID == current))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	if len(featured) > fit {
		s.WriteString("\n")
		s.WriteString(ui.StyleMuted.Render(fmt.Sprintf("  %d-%d of %d  [ ] scroll", start+1, end, len(featured))))
	}
	s.WriteString("\n\n")

	// Grid
	s.WriteString(ui.StyleHeader.Render("All Works"))
	s.WriteString("\n")

	cols := m.columns()
	firstRow := m.offset
	lastRow := min(firstRow+m.visibleRows(), (len(artworks)+cols-1)/cols)
	for row := firstRow; row < lastRow; row++ {
		rowCards := make([]string, 0, cols)
		for i := row * cols; i < min((row+1)*cols, len(artworks)); i++ {
			rowCards = append(rowCards, m.renderCard(artworks[i], "", i == m.cursor))
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
		s.WriteString("\n")
	}

	return s.String()
}

func (m galleryModel) renderCard(a domain.Artwork, label string, active bool) string {
	inner := m.cardWidth - 4

	title := a.Title
	if label != "" {
		title = label + " " + title
	}

	year := fmt.Sprintf("%d", a.Year)
	lines := []string{
		ui.StyleBold.Render(ui.Truncate(title, inner)),
		ui.FormatBadge(year) + " " + ui.FormatBadge(ui.Truncate(a.Medium, inner-len(year)-5)),
		ui.StyleMuted.Render(ui.Truncate(a.Category, inner)),
	}
	if m.descLines > 0 {
		desc := ui.ClampLines(a.Description, inner, m.descLines)
		for len(strings.Split(desc, "\n")) < m.descLines {
			desc += "\n"
		}
		lines = append(lines, desc)
	}

	style := ui.StyleCard
	if active {
		style = ui.StyleCardActive
	}
	return style.Width(m.cardWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m galleryModel) viewDetail() string {
	return ui.StyleOverlay.Render(m.detail.View()) + "\n" +
		ui.StyleMuted.Render("  [esc] Close  [o] Open image  [c] Copy URL  [↑↓] Scroll")
}

func (m galleryModel) renderDetailBody(a domain.Artwork) string {
	width := max(20, m.detail.Width)

	var s strings.Builder
	s.WriteString(ui.StyleTitle.Render(a.Title))
	s.WriteString("\n\n")
	s.WriteString(ui.RenderKeyValue("Medium", a.Medium) + "\n")
	s.WriteString(ui.RenderKeyValue("Year", fmt.Sprintf("%d", a.Year)) + "\n")
	if a.HasCategory() {
		s.WriteString(ui.RenderKeyValue("Category", a.Category) + "\n")
	}
	s.WriteString(ui.RenderKeyValue("Added", a.GetDisplayDate(m.dateLayout)) + "\n")
	s.WriteString(ui.RenderKeyValue("Image", a.ImageURL) + "\n")

	if a.HasDescription() {
		s.WriteString("\n")
		s.WriteString(strings.Join(ui.WrapWords(a.Description, width), "\n"))
		s.WriteString("\n")
	}
	return s.String()
}

func (m galleryModel) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	h := m.help
	h.ShowAll = true
	return titleStyle.Render("Gallery Help") + "\n\n" +
		lipgloss.NewStyle().Padding(0, 2).Render(h.View(m.keys)) + "\n\n" +
		ui.StyleMuted.Render("  Press ? or esc to return")
}

func (m galleryModel) renderFooter() string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Ready")
	}
	return statusLine + "\n" + m.help.View(m.keys)
}
