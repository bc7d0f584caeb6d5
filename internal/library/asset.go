package library

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"assetpick/internal/domain"
)

// mediaExtensions maps file extensions to media types
var mediaExtensions = map[string]domain.MediaType{
	".jpg":  domain.MediaTypePhoto,
	".jpeg": domain.MediaTypePhoto,
	".png":  domain.MediaTypePhoto,
	".gif":  domain.MediaTypePhoto,
	".heic": domain.MediaTypePhoto,
	".webp": domain.MediaTypePhoto,
	".mp4":  domain.MediaTypeVideo,
	".mov":  domain.MediaTypeVideo,
	".mkv":  domain.MediaTypeVideo,
	".avi":  domain.MediaTypeVideo,
	".webm": domain.MediaTypeVideo,
}

// MediaTypeForPath classifies a file by extension, returning
// MediaTypeUnknown for anything that is not a recognized photo or video
func MediaTypeForPath(path string) domain.MediaType {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := mediaExtensions[ext]; ok {
		return mt
	}
	return domain.MediaTypeUnknown
}

// Asset is a media file in the on-disk library. IDs are minted once at
// discovery time so they stay stable for the life of the process even if
// the file moves between albums.
type Asset struct {
	id        string
	name      string
	path      string
	mediaType domain.MediaType
	size      int64
	modTime   time.Time
}

// NewAsset creates an asset for a media file
func NewAsset(path string, size int64, modTime time.Time) *Asset {
	return &Asset{
		id:        uuid.NewString(),
		name:      filepath.Base(path),
		path:      path,
		mediaType: MediaTypeForPath(path),
		size:      size,
		modTime:   modTime,
	}
}

func (a *Asset) ID() string                  { return a.id }
func (a *Asset) Name() string                { return a.name }
func (a *Asset) MediaType() domain.MediaType { return a.mediaType }

// Path returns the asset's location on disk
func (a *Asset) Path() string { return a.path }

// Size returns the file size in bytes
func (a *Asset) Size() int64 { return a.size }

// ModTime returns the file's last modification time
func (a *Asset) ModTime() time.Time { return a.modTime }
