package views

import (
	"fmt"
	"strings"
)

// AssetRow is one asset line ready for rendering
type AssetRow struct {
	Name           string
	MediaTag       string // "photo" or "video"
	Selected       bool
	SelectionIndex int // 1-based, 0 when unselected
	Highlighted    bool
	Disabled       bool
}

// AssetRenderer renders the asset list of one album
type AssetRenderer struct {
	styles    *Styles
	showIndex bool
}

// NewAssetRenderer creates a new asset renderer
func NewAssetRenderer(styles *Styles, showIndex bool) *AssetRenderer {
	return &AssetRenderer{styles: styles, showIndex: showIndex}
}

// Render produces the asset list with selection marks and a cursor
func (r *AssetRenderer) Render(assets []AssetRow, cursor int) string {
	if len(assets) == 0 {
		return r.styles.Dim.Render("Album is empty")
	}

	content := &strings.Builder{}
	for i, asset := range assets {
		prefix := "  "
		if i == cursor {
			prefix = r.styles.Cursor.Render("> ")
		}

		content.WriteString(prefix + r.renderRow(asset) + "\n")
	}
	return strings.TrimRight(content.String(), "\n")
}

func (r *AssetRenderer) renderRow(asset AssetRow) string {
	var mark string
	switch {
	case asset.Selected && r.showIndex:
		mark = r.styles.Badge.Render(fmt.Sprintf("[%d]", asset.SelectionIndex))
	case asset.Selected:
		mark = r.styles.Checkmark.Render("[✓]")
	default:
		mark = "[ ]"
	}

	name := asset.Name
	switch {
	case asset.Disabled:
		name = r.styles.Disabled.Render(name)
	case asset.Highlighted:
		name = r.styles.Highlight.Render(name)
	default:
		name = r.styles.AlbumName.Render(name)
	}

	line := mark + " " + name
	if asset.MediaTag != "" {
		line += " " + r.styles.MediaTag.Render(asset.MediaTag)
	}
	return line
}
