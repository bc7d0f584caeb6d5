package views

import (
	"fmt"
	"strings"
)

// AlbumRow is one album line ready for rendering
type AlbumRow struct {
	Name  string
	Count int
}

// AlbumRenderer renders the album list
type AlbumRenderer struct {
	styles     *Styles
	showCounts bool
}

// NewAlbumRenderer creates a new album renderer
func NewAlbumRenderer(styles *Styles, showCounts bool) *AlbumRenderer {
	return &AlbumRenderer{styles: styles, showCounts: showCounts}
}

// Render produces the album list with a cursor on the active row
func (r *AlbumRenderer) Render(albums []AlbumRow, cursor int) string {
	if len(albums) == 0 {
		return r.styles.Dim.Render("No albums found")
	}

	content := &strings.Builder{}
	for i, album := range albums {
		prefix := "  "
		if i == cursor {
			prefix = r.styles.Cursor.Render("> ")
		}

		line := r.styles.AlbumName.Render(album.Name)
		if r.showCounts {
			line += " " + r.styles.AssetCount.Render(fmt.Sprintf("(%d)", album.Count))
		}

		content.WriteString(prefix + line + "\n")
	}
	return strings.TrimRight(content.String(), "\n")
}
