package picker

import "assetpick/internal/domain"

// Highlights is the set of currently highlighted assets. Highlighting is
// transient emphasis (a press or hover), independent of selection, and
// carries no ordering.
type Highlights struct {
	assets map[string]domain.Asset
}

// NewHighlights creates an empty highlight set
func NewHighlights() *Highlights {
	return &Highlights{
		assets: make(map[string]domain.Asset),
	}
}

// Add highlights the asset. Returns false if it was already highlighted.
func (h *Highlights) Add(asset domain.Asset) bool {
	if _, ok := h.assets[asset.ID()]; ok {
		return false
	}
	h.assets[asset.ID()] = asset
	return true
}

// Remove clears the asset's highlight. Returns false if it was not highlighted.
func (h *Highlights) Remove(asset domain.Asset) bool {
	if _, ok := h.assets[asset.ID()]; !ok {
		return false
	}
	delete(h.assets, asset.ID())
	return true
}

// Contains reports whether the asset is currently highlighted
func (h *Highlights) Contains(asset domain.Asset) bool {
	_, ok := h.assets[asset.ID()]
	return ok
}

// Len returns the number of highlighted assets
func (h *Highlights) Len() int {
	return len(h.assets)
}
