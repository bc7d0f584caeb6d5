package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"assetpick/internal/config"
	"assetpick/internal/domain"
	"assetpick/internal/eventbus"
	"assetpick/internal/library"
	"assetpick/internal/picker"
	"assetpick/internal/ui/views"
)

// Model is the Bubble Tea model driving the picker UI. It is a thin surface
// over the engine: key presses become engine requests, engine events become
// re-renders. All engine calls happen on the Update goroutine, which is what
// keeps the engine's single-threaded contract.
type Model struct {
	bus      eventbus.EventBus
	engine   *picker.Engine
	store    *library.Store
	cfg      *config.Config
	delegate *picker.Delegate

	renderer     *views.Renderer
	keys         keyMap
	help         help.Model
	helpOps      *HelpOps
	helpRenderer *HelpRenderer

	screen       views.Screen
	albumCursor  int
	assetCursor  int
	currentAlbum domain.Collection
	albumName    string

	scanning      bool
	statusMessage string
	statusIsError bool
	width         int
	height        int
}

// NewModel creates the picker UI over an engine and album store
func NewModel(bus eventbus.EventBus, engine *picker.Engine, store *library.Store, delegate *picker.Delegate, cfg *config.Config) *Model {
	return &Model{
		bus:          bus,
		engine:       engine,
		store:        store,
		cfg:          cfg,
		delegate:     delegate,
		renderer:     views.NewRenderer(cfg.UISettings.ShowAssetCounts, cfg.UISettings.ShowSelectionIndex),
		keys:         newKeyMap(cfg.UISettings.ShowCancel),
		help:         help.New(),
		helpRenderer: NewHelpRenderer(),
		screen:       views.ScreenAlbums,
	}
}

// SetProgram hands the model the running program, needed to release the
// terminal for the help pager
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tickMsg:
		if m.scanning {
			return m, tickCmd()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager error: %v", msg.err)
			m.setStatus("Could not open help", true)
			return m, clearStatusCmd()
		}
		return m, nil

	case statusClearMsg:
		m.setStatus("", false)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if err := m.engine.Cancel(); err != nil {
			log.Printf("Cancel failed: %v", err)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Finish):
		if err := m.engine.Finish(); err != nil {
			log.Printf("Finish failed: %v", err)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.helpOps == nil {
			return m, nil
		}
		content := m.helpRenderer.renderHelpContent(m.cfg.UISettings.ShowCancel)
		return m, func() tea.Msg {
			return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.screen == views.ScreenAlbums {
			m.openAlbum()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.screen == views.ScreenAssets {
			m.screen = views.ScreenAlbums
			m.currentAlbum = nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.screen == views.ScreenAssets {
			m.toggleCurrent()
		}
		return m, nil

	case key.Matches(msg, m.keys.Highlight):
		if m.screen == views.ScreenAssets {
			m.highlightCurrent()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ScanStartedEvent:
		m.scanning = true
		return m, tickCmd()

	case eventbus.ScanCompletedEvent:
		m.scanning = false
		m.setStatus(fmt.Sprintf("Found %d albums, %d assets", e.AlbumsFound, e.AssetsFound), false)
		return m, clearStatusCmd()

	case eventbus.AlbumDiscoveredEvent:
		// View reads the store directly; just keep the cursor in range
		m.clampCursors()
		return m, nil

	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
		return m, clearStatusCmd()
	}

	return m, nil
}

func (m *Model) setStatus(message string, isError bool) {
	m.statusMessage = message
	m.statusIsError = isError
}

// View implements tea.Model
func (m *Model) View() string {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Screen:        m.screen,
		Scanning:      m.scanning,
		AlbumCursor:   m.albumCursor,
		AssetCursor:   m.assetCursor,
		AlbumName:     m.albumName,
		SelectedCount: m.engine.SelectedCount(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		ShowCancel:    m.cfg.UISettings.ShowCancel,
		HelpView:      m.help.View(m.keys),
	}

	for _, album := range m.visibleAlbums() {
		state.Albums = append(state.Albums, views.AlbumRow{
			Name:  album.Name(),
			Count: m.collectionFor(album).Count(),
		})
	}

	if m.screen == views.ScreenAssets && m.currentAlbum != nil {
		for _, asset := range collectionAssets(m.currentAlbum) {
			idx, _ := m.engine.SelectionIndex(asset)
			state.Assets = append(state.Assets, views.AssetRow{
				Name:           asset.Name(),
				MediaTag:       string(asset.MediaType()),
				Selected:       m.engine.IsSelected(asset),
				SelectionIndex: idx,
				Highlighted:    m.engine.IsHighlighted(asset),
				Disabled:       !m.engine.Enabled(asset),
			})
		}
	}

	return m.renderer.Render(state)
}

// visibleAlbums applies the empty-album presentation flag
func (m *Model) visibleAlbums() []*library.Album {
	albums := m.store.Albums()
	if m.cfg.UISettings.ShowEmptyAlbums {
		return albums
	}
	visible := albums[:0:0]
	for _, album := range albums {
		if m.collectionFor(album).Count() > 0 {
			visible = append(visible, album)
		}
	}
	return visible
}

// collectionAssets lists a collection's assets in order, using the one-pass
// Assets method when the collection provides it. Filtered views rescan their
// source on every AssetAt call, so indexing them per row is quadratic.
func collectionAssets(c domain.Collection) []domain.Asset {
	if lister, ok := c.(interface{ Assets() []domain.Asset }); ok {
		return lister.Assets()
	}
	assets := make([]domain.Asset, 0, c.Count())
	for i := 0; i < c.Count(); i++ {
		if asset := c.AssetAt(i); asset != nil {
			assets = append(assets, asset)
		}
	}
	return assets
}

// collectionFor wraps an album with the delegate's show filter when present
func (m *Model) collectionFor(album *library.Album) domain.Collection {
	if m.delegate != nil && m.delegate.ShouldShowAsset != nil {
		return library.NewFiltered(album, m.delegate.ShouldShowAsset)
	}
	return album
}

func (m *Model) openAlbum() {
	albums := m.visibleAlbums()
	if m.albumCursor < 0 || m.albumCursor >= len(albums) {
		return
	}
	album := albums[m.albumCursor]
	m.currentAlbum = m.collectionFor(album)
	m.albumName = album.Name()
	m.assetCursor = 0
	m.screen = views.ScreenAssets
}

func (m *Model) currentAsset() domain.Asset {
	if m.currentAlbum == nil {
		return nil
	}
	return m.currentAlbum.AssetAt(m.assetCursor)
}

func (m *Model) toggleCurrent() {
	asset := m.currentAsset()
	if asset == nil {
		return
	}
	wasSelected := m.engine.IsSelected(asset)
	if err := m.engine.Toggle(asset); err != nil {
		log.Printf("Toggle failed: %v", err)
		return
	}
	if !wasSelected && !m.engine.IsSelected(asset) {
		// Vetoed or disabled; surface it so the key press doesn't feel dead
		m.setStatus("Selection not allowed", false)
	}
}

func (m *Model) highlightCurrent() {
	asset := m.currentAsset()
	if asset == nil {
		return
	}
	var err error
	if m.engine.IsHighlighted(asset) {
		err = m.engine.Unhighlight(asset)
	} else {
		err = m.engine.Highlight(asset)
	}
	if err != nil {
		log.Printf("Highlight failed: %v", err)
	}
}

func (m *Model) moveCursor(delta int) {
	if m.screen == views.ScreenAssets {
		m.assetCursor += delta
	} else {
		m.albumCursor += delta
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if n := len(m.visibleAlbums()); m.albumCursor >= n {
		m.albumCursor = n - 1
	}
	if m.albumCursor < 0 {
		m.albumCursor = 0
	}

	if m.currentAlbum != nil {
		if n := m.currentAlbum.Count(); m.assetCursor >= n {
			m.assetCursor = n - 1
		}
	}
	if m.assetCursor < 0 {
		m.assetCursor = 0
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
