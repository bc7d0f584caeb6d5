package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlbumRendererShowsCounts(t *testing.T) {
	r := NewAlbumRenderer(NewStyles(), true)
	out := r.Render([]AlbumRow{
		{Name: "Holiday", Count: 12},
		{Name: "Pets", Count: 3},
	}, 1)

	assert.Contains(t, out, "Holiday")
	assert.Contains(t, out, "(12)")
	assert.Contains(t, out, "(3)")

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[1], ">"), "cursor row is marked")
}

func TestAlbumRendererHidesCounts(t *testing.T) {
	r := NewAlbumRenderer(NewStyles(), false)
	out := r.Render([]AlbumRow{{Name: "Holiday", Count: 12}}, 0)

	assert.Contains(t, out, "Holiday")
	assert.NotContains(t, out, "(12)")
}

func TestAlbumRendererEmpty(t *testing.T) {
	r := NewAlbumRenderer(NewStyles(), true)
	assert.Contains(t, r.Render(nil, 0), "No albums")
}

func TestAssetRendererCheckmarks(t *testing.T) {
	r := NewAssetRenderer(NewStyles(), false)
	out := r.Render([]AssetRow{
		{Name: "beach.jpg", MediaTag: "photo", Selected: true, SelectionIndex: 1},
		{Name: "sunset.mp4", MediaTag: "video"},
	}, 0)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "[✓]")
	assert.Contains(t, lines[1], "[ ]")
	assert.Contains(t, lines[1], "video")
}

func TestAssetRendererSelectionIndexBadges(t *testing.T) {
	r := NewAssetRenderer(NewStyles(), true)
	out := r.Render([]AssetRow{
		{Name: "a.jpg", Selected: true, SelectionIndex: 2},
		{Name: "b.jpg"},
	}, 0)

	assert.Contains(t, out, "[2]")
	assert.NotContains(t, out, "[✓]")
}

func TestAssetRendererEmptyAlbum(t *testing.T) {
	r := NewAssetRenderer(NewStyles(), false)
	assert.Contains(t, r.Render(nil, 0), "empty")
}

func TestRendererStatusLine(t *testing.T) {
	r := NewRenderer(true, false)
	out := r.Render(ViewState{
		Screen:        ScreenAlbums,
		Albums:        []AlbumRow{{Name: "Holiday", Count: 2}},
		SelectedCount: 3,
		ShowCancel:    false,
	})

	assert.Contains(t, out, "assetpick")
	assert.Contains(t, out, "3 selected")
	assert.Contains(t, out, "cancel disabled")
}

func TestRendererErrorStatus(t *testing.T) {
	r := NewRenderer(true, false)
	out := r.Render(ViewState{
		Screen:        ScreenAlbums,
		StatusMessage: "Scan failed",
		StatusIsError: true,
	})

	assert.Contains(t, out, "Scan failed")
}

func TestRendererAssetScreenShowsAlbumName(t *testing.T) {
	r := NewRenderer(true, true)
	out := r.Render(ViewState{
		Screen:    ScreenAssets,
		AlbumName: "Holiday",
		Assets:    []AssetRow{{Name: "a.jpg", Selected: true, SelectionIndex: 1}},
	})

	assert.Contains(t, out, "Holiday")
	assert.Contains(t, out, "[1]")
}
