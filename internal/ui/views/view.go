package views

import (
	"fmt"
	"strings"
	"time"
)

// Screen identifies which pane is active
type Screen string

const (
	ScreenAlbums Screen = "albums"
	ScreenAssets Screen = "assets"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Screen        Screen
	Scanning      bool
	Albums        []AlbumRow
	AlbumCursor   int
	AlbumName     string
	Assets        []AssetRow
	AssetCursor   int
	SelectedCount int
	StatusMessage string
	StatusIsError bool
	ShowCancel    bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	albumRender *AlbumRenderer
	assetRender *AssetRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showCounts, showSelectionIndex bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		albumRender: NewAlbumRenderer(styles, showCounts),
		assetRender: NewAssetRenderer(styles, showSelectionIndex),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with scanning indicator
	title := r.styles.Title.Render("assetpick")
	if state.Scanning {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		title += "  " + r.styles.Scan.Render(spinner[frame]+" Scanning")
	}
	content.WriteString(title + "\n")

	switch state.Screen {
	case ScreenAssets:
		content.WriteString(r.styles.AlbumName.Render(state.AlbumName) + "\n\n")
		content.WriteString(r.assetRender.Render(state.Assets, state.AssetCursor))
	default:
		content.WriteString("\n")
		content.WriteString(r.albumRender.Render(state.Albums, state.AlbumCursor))
	}
	content.WriteString("\n")

	// Status line: selection summary, transient message
	status := fmt.Sprintf("%d selected", state.SelectedCount)
	if state.StatusMessage != "" {
		message := state.StatusMessage
		if state.StatusIsError {
			message = r.styles.StatusError.Render(message)
		}
		status += "  " + message
	}
	if !state.ShowCancel {
		// Cancel hidden: picker can only finish
		status += "  " + r.styles.Dim.Render("(cancel disabled)")
	}
	content.WriteString(r.styles.Status.Render(status) + "\n")

	if state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return content.String()
}
