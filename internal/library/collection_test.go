package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetpick/internal/domain"
)

func makeAssets(paths ...string) []domain.Asset {
	assets := make([]domain.Asset, len(paths))
	for i, p := range paths {
		assets[i] = NewAsset(p, 1024, time.Now())
	}
	return assets
}

func TestMediaTypeForPath(t *testing.T) {
	assert.Equal(t, domain.MediaTypePhoto, MediaTypeForPath("/pics/cat.JPG"))
	assert.Equal(t, domain.MediaTypePhoto, MediaTypeForPath("shot.heic"))
	assert.Equal(t, domain.MediaTypeVideo, MediaTypeForPath("clip.mov"))
	assert.Equal(t, domain.MediaTypeUnknown, MediaTypeForPath("notes.txt"))
	assert.Equal(t, domain.MediaTypeUnknown, MediaTypeForPath("no-extension"))
}

func TestAssetIdentityIsStableAndUnique(t *testing.T) {
	a := NewAsset("/pics/cat.jpg", 10, time.Now())
	b := NewAsset("/pics/cat.jpg", 10, time.Now())

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID(), "same path must still mint distinct identities")
	assert.Equal(t, "cat.jpg", a.Name())
	assert.Equal(t, "/pics/cat.jpg", a.Path())
}

func TestAlbumOrderAndBounds(t *testing.T) {
	assets := makeAssets("a.jpg", "b.png", "c.mp4")
	album := NewAlbum("Holiday", "/photos/holiday", assets)

	assert.Equal(t, "Holiday", album.Name())
	assert.Equal(t, 3, album.Count())
	assert.Equal(t, "a.jpg", album.AssetAt(0).Name())
	assert.Equal(t, "c.mp4", album.AssetAt(2).Name())
	assert.Nil(t, album.AssetAt(-1))
	assert.Nil(t, album.AssetAt(3))
}

func TestEmptyAlbum(t *testing.T) {
	album := NewAlbum("Empty", "", nil)
	assert.Equal(t, 0, album.Count())
	assert.Nil(t, album.AssetAt(0))
}

func TestFilteredCollection(t *testing.T) {
	assets := makeAssets("a.jpg", "b.mp4", "c.png", "d.mov")
	album := NewAlbum("Mixed", "", assets)

	photos := NewFiltered(album, func(a domain.Asset) bool {
		return a.MediaType() == domain.MediaTypePhoto
	})

	assert.Equal(t, "Mixed", photos.Name())
	assert.Equal(t, 2, photos.Count())
	require.NotNil(t, photos.AssetAt(0))
	assert.Equal(t, "a.jpg", photos.AssetAt(0).Name())
	assert.Equal(t, "c.png", photos.AssetAt(1).Name())
	assert.Nil(t, photos.AssetAt(2))
	assert.Nil(t, photos.AssetAt(-1))
}

// countingCollection wraps an album and counts AssetAt calls
type countingCollection struct {
	*Album
	lookups int
}

func (c *countingCollection) AssetAt(i int) domain.Asset {
	c.lookups++
	return c.Album.AssetAt(i)
}

func TestFilteredAssetsWalksSourceOnce(t *testing.T) {
	assets := makeAssets("a.jpg", "b.mp4", "c.png", "d.mov", "e.jpg")
	source := &countingCollection{Album: NewAlbum("Mixed", "", assets)}

	photos := NewFiltered(source, func(a domain.Asset) bool {
		return a.MediaType() == domain.MediaTypePhoto
	})

	kept := photos.Assets()
	require.Len(t, kept, 3)
	assert.Equal(t, "a.jpg", kept[0].Name())
	assert.Equal(t, "e.jpg", kept[2].Name())
	assert.Equal(t, len(assets), source.lookups, "listing must not rescan the source per asset")
}

func TestAlbumAssetsReturnsCopy(t *testing.T) {
	album := NewAlbum("Holiday", "", makeAssets("a.jpg", "b.png"))

	listed := album.Assets()
	require.Len(t, listed, 2)
	listed[0] = nil
	assert.Equal(t, "a.jpg", album.AssetAt(0).Name())
}

func TestFilteredNilPredicateKeepsEverything(t *testing.T) {
	album := NewAlbum("All", "", makeAssets("a.jpg", "b.mp4"))
	view := NewFiltered(album, nil)

	assert.Equal(t, 2, view.Count())
	assert.Equal(t, "b.mp4", view.AssetAt(1).Name())
}
