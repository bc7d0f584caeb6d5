package library

import "assetpick/internal/domain"

// Album is a slice-backed collection: a named, ordered group of assets,
// typically one directory of media files. Albums hold references to assets
// owned by the library; the same asset may appear in several albums.
type Album struct {
	name   string
	path   string
	assets []domain.Asset
}

// NewAlbum creates an album over the given assets
func NewAlbum(name, path string, assets []domain.Asset) *Album {
	return &Album{
		name:   name,
		path:   path,
		assets: assets,
	}
}

func (a *Album) Name() string { return a.name }

// Path returns the album's directory on disk ("" for synthetic albums)
func (a *Album) Path() string { return a.path }

func (a *Album) Count() int { return len(a.assets) }

// AssetAt returns the asset at the given position, or nil when out of range
func (a *Album) AssetAt(i int) domain.Asset {
	if i < 0 || i >= len(a.assets) {
		return nil
	}
	return a.assets[i]
}

// Assets returns the album's assets in order. The returned slice is a copy.
func (a *Album) Assets() []domain.Asset {
	out := make([]domain.Asset, len(a.assets))
	copy(out, a.assets)
	return out
}

// Filtered is a read-only view over another collection that skips assets the
// keep predicate rejects. Count and AssetAt agree: AssetAt(i) walks only the
// kept assets. The underlying collection is not copied, so a Filtered view
// reflects its source at query time.
type Filtered struct {
	source domain.Collection
	keep   func(domain.Asset) bool
}

// NewFiltered wraps a collection with a keep predicate. A nil predicate
// keeps everything.
func NewFiltered(source domain.Collection, keep func(domain.Asset) bool) *Filtered {
	return &Filtered{source: source, keep: keep}
}

func (f *Filtered) Name() string { return f.source.Name() }

func (f *Filtered) Count() int {
	if f.keep == nil {
		return f.source.Count()
	}
	count := 0
	for i := 0; i < f.source.Count(); i++ {
		if f.keep(f.source.AssetAt(i)) {
			count++
		}
	}
	return count
}

func (f *Filtered) AssetAt(i int) domain.Asset {
	if f.keep == nil {
		return f.source.AssetAt(i)
	}
	if i < 0 {
		return nil
	}
	seen := 0
	for j := 0; j < f.source.Count(); j++ {
		asset := f.source.AssetAt(j)
		if !f.keep(asset) {
			continue
		}
		if seen == i {
			return asset
		}
		seen++
	}
	return nil
}

// Assets walks the source once and returns the kept assets in order. Callers
// iterating a filtered view should prefer this over repeated AssetAt calls,
// which rescan the source from the start each time.
func (f *Filtered) Assets() []domain.Asset {
	out := make([]domain.Asset, 0, f.source.Count())
	for i := 0; i < f.source.Count(); i++ {
		asset := f.source.AssetAt(i)
		if asset == nil {
			continue
		}
		if f.keep == nil || f.keep(asset) {
			out = append(out, asset)
		}
	}
	return out
}
