package picker

import "assetpick/internal/domain"

// Selection is the ordered set of selected assets. Order is selection
// chronology, which consumers use for "1, 2, 3" index badges. No asset
// appears twice; membership and index lookups go through an id map so they
// stay O(1).
type Selection struct {
	assets    []domain.Asset
	positions map[string]int // asset ID -> index into assets
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{
		positions: make(map[string]int),
	}
}

// Select appends the asset to the end of the selection order. Returns false
// without mutating if the asset is already selected.
func (s *Selection) Select(asset domain.Asset) bool {
	if _, ok := s.positions[asset.ID()]; ok {
		return false
	}
	s.positions[asset.ID()] = len(s.assets)
	s.assets = append(s.assets, asset)
	return true
}

// Deselect removes the asset. Returns false if it was not selected.
func (s *Selection) Deselect(asset domain.Asset) bool {
	pos, ok := s.positions[asset.ID()]
	if !ok {
		return false
	}
	delete(s.positions, asset.ID())
	s.assets = append(s.assets[:pos], s.assets[pos+1:]...)
	for i := pos; i < len(s.assets); i++ {
		s.positions[s.assets[i].ID()] = i
	}
	return true
}

// Contains reports whether the asset is currently selected
func (s *Selection) Contains(asset domain.Asset) bool {
	_, ok := s.positions[asset.ID()]
	return ok
}

// Index returns the asset's 1-based position in the selection order,
// or false if it is not selected
func (s *Selection) Index(asset domain.Asset) (int, bool) {
	pos, ok := s.positions[asset.ID()]
	if !ok {
		return 0, false
	}
	return pos + 1, true
}

// Assets returns a snapshot of the selection in selection order. The copy is
// safe to hold while the live selection keeps mutating.
func (s *Selection) Assets() []domain.Asset {
	snapshot := make([]domain.Asset, len(s.assets))
	copy(snapshot, s.assets)
	return snapshot
}

// Len returns the number of selected assets
func (s *Selection) Len() int {
	return len(s.assets)
}
