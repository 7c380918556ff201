package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/photox/internal/gallery"
	"github.com/desertthunder/photox/internal/models"
	"github.com/desertthunder/photox/internal/selection"
	"github.com/desertthunder/photox/internal/shared"
)

const (
	tileWidth  = 20
	tileHeight = 2
	// rows above the first tile row: title plus its margin
	gridTop = 2
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	GridView ViewState = iota
	OverlayView
)

// Options configures a [Model].
type Options struct {
	ManifestPath string
	Columns      int
	Logger       *log.Logger
	// OnChange receives the selected photo ids whenever the selection changes.
	OnChange func([]string)
}

// Model represents the TUI application state.
type Model struct {
	view         ViewState
	manifestPath string
	columns      int
	logger       *log.Logger
	onChange     func([]string)

	gallery *models.Gallery
	photos  []models.Photo
	ids     []string
	cursor  int
	sel     *selection.Controller[string]
	changed []string

	filtering bool
	query     string
	input     textinput.Model

	hidden      selection.Toggles[string]
	overlayList list.Model

	width  int
	height int
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model that loads the manifest at opts.ManifestPath on start.
func NewModel(opts Options) *Model {
	if opts.Columns < 1 {
		opts.Columns = 4
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(io.Discard)
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter by name"

	m := &Model{
		view:         GridView,
		manifestPath: opts.ManifestPath,
		columns:      opts.Columns,
		logger:       opts.Logger,
		onChange:     opts.OnChange,
		input:        input,
		help:         help.New(),
		keys:         newKeyMap(),
	}
	m.sel = selection.NewController(m.recordChange)
	return m
}

// Selected returns the selected photo ids in the order they were added.
func (m *Model) Selected() []string {
	return m.sel.State().Selected()
}

// Err returns the error that stopped the TUI, if any.
func (m *Model) Err() error { return m.err }

// Init loads the gallery manifest.
func (m *Model) Init() tea.Cmd {
	return m.loadManifest()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.view == OverlayView {
			m.overlayList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case Msg:
		return m.handleMsg(msg)

	case tea.MouseMsg:
		if m.view == GridView && !m.filtering {
			return m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.filtering:
			return m.handleFilterKeys(msg)
		case m.view == OverlayView:
			return m.handleOverlayKeys(msg)
		default:
			return m.handleGridKeys(msg)
		}
	}

	return m, nil
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgManifestLoaded:
		data := msg.data.(manifestLoaded)
		if data.err != nil {
			m.err = data.err
			m.logger.Error("failed to load manifest", "path", m.manifestPath, "error", data.err)
			return m, tea.Quit
		}
		m.gallery = data.gallery
		m.logger.Info("manifest loaded", "path", m.manifestPath, "photos", len(data.gallery.Photos))
		m.setPhotos(data.gallery.Photos)
		return m, nil

	case MsgSelectionChanged:
		ids := msg.data.([]string)
		m.logger.Debug("selection changed", "count", len(ids), "ids", ids)
		if m.onChange != nil {
			m.onChange(ids)
		}
		return m, nil
	}
	return m, nil
}

// setPhotos replaces the displayed list, which always starts a fresh selection.
func (m *Model) setPhotos(photos []models.Photo) {
	m.photos = photos
	m.ids = make([]string, len(photos))
	for i, p := range photos {
		m.ids[i] = p.ID
	}
	m.cursor = 0
	m.sel.Clear()
}

func (m *Model) recordChange(ids []string) {
	m.changed = ids
}

// dispatch sends ev to the selection controller and emits a change message if the selected set moved.
func (m *Model) dispatch(ev selection.Event[string]) tea.Cmd {
	m.changed = nil
	m.sel.Dispatch(m.ids, ev)
	return m.flushChange()
}

func (m *Model) clearSelection() tea.Cmd {
	m.changed = nil
	m.sel.Clear()
	return m.flushChange()
}

func (m *Model) flushChange() tea.Cmd {
	if m.changed == nil {
		return nil
	}
	ids := m.changed
	m.changed = nil
	return func() tea.Msg { return selectionChangedMsg(ids) }
}

func (m *Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.filter):
		m.filtering = true
		m.input.SetValue(m.query)
		return m, m.input.Focus()
	}

	if len(m.photos) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.up):
		m.move(-m.columns)
	case key.Matches(msg, m.keys.down):
		m.move(m.columns)
	case key.Matches(msg, m.keys.left):
		m.move(-1)
	case key.Matches(msg, m.keys.right):
		m.move(1)
	case key.Matches(msg, m.keys.extendUp):
		m.move(-m.columns)
		return m, m.dispatch(selection.RangeClick(m.ids[m.cursor]))
	case key.Matches(msg, m.keys.extendDown):
		m.move(m.columns)
		return m, m.dispatch(selection.RangeClick(m.ids[m.cursor]))
	case key.Matches(msg, m.keys.extendLeft):
		m.move(-1)
		return m, m.dispatch(selection.RangeClick(m.ids[m.cursor]))
	case key.Matches(msg, m.keys.extendRight):
		m.move(1)
		return m, m.dispatch(selection.RangeClick(m.ids[m.cursor]))
	case key.Matches(msg, m.keys.click):
		return m, m.dispatch(selection.PlainClick(m.ids[m.cursor]))
	case key.Matches(msg, m.keys.toggle):
		return m, m.dispatch(selection.ToggleClick(m.ids[m.cursor]))
	case key.Matches(msg, m.keys.clear):
		return m, m.clearSelection()
	case key.Matches(msg, m.keys.overlay):
		m.openOverlay()
	}
	return m, nil
}

// move shifts the cursor by delta, staying put when the target is off the grid.
func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.photos) {
		m.cursor = next
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	idx, ok := m.tileAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = idx
	return m, m.dispatch(selection.EventFor(m.ids[idx], msg.Ctrl, msg.Shift))
}

// tileAt maps terminal cell coordinates to a photo index.
func (m *Model) tileAt(x, y int) (int, bool) {
	if x < 0 || y < gridTop {
		return 0, false
	}
	// tiles carry a one-cell border on every side
	col := x / (tileWidth + 2)
	row := (y - gridTop) / (tileHeight + 2)
	if col >= m.columns {
		return 0, false
	}
	idx := row*m.columns + col
	if idx >= len(m.photos) {
		return 0, false
	}
	return idx, true
}

func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.filtering = false
		m.input.Blur()
		m.query = strings.TrimSpace(m.input.Value())
		if m.gallery != nil {
			m.setPhotos(m.gallery.Filter(m.query))
			m.logger.Info("filter applied", "query", m.query, "photos", len(m.photos))
		}
		return m, m.flushChange()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openOverlay() {
	photo := m.photos[m.cursor]
	m.overlayList = list.New(m.overlayItems(), list.NewDefaultDelegate(), 0, 0)
	m.overlayList.Title = fmt.Sprintf("Annotations on %s", photo.Name)
	m.overlayList.SetFilteringEnabled(false)
	m.overlayList.SetShowHelp(false)
	m.overlayList.SetSize(m.width-4, m.height-8)
	m.view = OverlayView
}

func (m *Model) overlayItems() []list.Item {
	overlays := gallery.Overlays(m.photos[m.cursor], m.hidden)
	items := make([]list.Item, len(overlays))
	for i, o := range overlays {
		items[i] = overlayItem{overlay: o}
	}
	return items
}

func (m *Model) handleOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = GridView
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		if item, ok := m.overlayList.SelectedItem().(overlayItem); ok {
			m.hidden = m.hidden.Flip(item.overlay.Annotation.ID)
			return m, m.overlayList.SetItems(m.overlayItems())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.overlayList, cmd = m.overlayList.Update(msg)
	return m, cmd
}

func (m *Model) loadManifest() tea.Cmd {
	path, logger := m.manifestPath, m.logger
	return func() tea.Msg {
		g, err := gallery.Load(path, logger)
		return manifestLoadedMsg(g, err)
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if m.gallery == nil {
		return "Loading gallery..."
	}

	switch m.view {
	case OverlayView:
		return m.renderOverlay()
	default:
		return m.renderGrid()
	}
}

func (m *Model) renderGrid() string {
	title := m.gallery.Title
	if title == "" {
		title = "Gallery"
	}
	if m.query != "" {
		title = fmt.Sprintf("%s · filter %q", title, m.query)
	}
	header := styles.title.Render(title)

	if len(m.photos) == 0 {
		return fmt.Sprintf("%s\n%s\n\n%s", header, styles.warn.Render("No photos match."), m.footer())
	}

	var rows []string
	for start := 0; start < len(m.photos); start += m.columns {
		end := min(start+m.columns, len(m.photos))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, m.renderTile(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return fmt.Sprintf("%s\n%s\n\n%s", header, lipgloss.JoinVertical(lipgloss.Left, rows...), m.footer())
}

func (m *Model) renderTile(i int) string {
	p := m.photos[i]
	state := m.sel.State()

	style := styles.tile
	marker := "  "
	if state.Contains(p.ID) {
		style = styles.selected
		marker = "✓ "
	}
	if i == m.cursor {
		style = style.BorderForeground(styles.cursor).BorderStyle(lipgloss.ThickBorder())
	}

	name := truncate(marker+p.Name, tileWidth)
	meta := truncate(fmt.Sprintf("  %s", p.Orientation.Normalize()), tileWidth)
	return style.Render(name + "\n" + meta)
}

func (m *Model) footer() string {
	if m.filtering {
		return m.input.View()
	}

	state := m.sel.State()
	status := fmt.Sprintf("%d of %d selected", state.Len(), len(m.photos))
	if id, ok := state.AnchorID(); ok {
		if p, found := m.gallery.Photo(id); found {
			status += fmt.Sprintf(" · anchor %s", p.Name)
		}
	}
	return fmt.Sprintf("%s\n%s", styles.help.Render(status), m.help.View(m.keys))
}

func (m *Model) renderOverlay() string {
	photo := m.photos[m.cursor]
	w, h := photo.DisplaySize()
	info := styles.help.Render(fmt.Sprintf("%s · displayed %dx%d · %d hidden", photo.Orientation.Normalize(), w, h, m.hidden.Len()))

	helpKeys := []key.Binding{m.keys.toggle, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n\n%s", m.overlayList.View(), info, m.help.ShortHelpView(helpKeys))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
