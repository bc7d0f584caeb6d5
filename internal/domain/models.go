package domain

// MediaType classifies what kind of media an asset holds
type MediaType string

const (
	MediaTypePhoto   MediaType = "photo"
	MediaTypeVideo   MediaType = "video"
	MediaTypeUnknown MediaType = "unknown"
)

// Asset is a single pickable item. Identity is the opaque ID; the picker
// compares assets only by ID and never looks at how they are stored or loaded.
type Asset interface {
	// ID returns a stable identifier, unique within the library
	ID() string
	// Name returns a human-readable name for display
	Name() string
	// MediaType reports whether the asset is a photo or a video
	MediaType() MediaType
}

// Collection is a read-only ordered view over an externally owned group of
// assets (an album). Implementations may filter, so Count reflects what
// AssetAt can actually return. The picker only queries collections, never
// mutates them, and the same asset may appear in any number of collections.
type Collection interface {
	Name() string
	Count() int
	AssetAt(i int) Asset
}
