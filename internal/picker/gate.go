package picker

import "assetpick/internal/domain"

// Gate answers whether a proposed transition may proceed by consulting the
// delegate's optional predicates. Unimplemented predicates default to allow.
// Gate methods are pure and synchronous; they run on the caller's goroutine
// because the answer gates an immediate mutation, so a slow predicate stalls
// the picker.
type Gate struct {
	delegate *Delegate
}

// NewGate creates a gate over the given delegate
func NewGate(delegate *Delegate) *Gate {
	return &Gate{delegate: delegate}
}

// Enabled reports whether the asset may be interacted with at all.
// A disabled asset never reaches CanSelect.
func (g *Gate) Enabled(asset domain.Asset) bool {
	if g.delegate == nil || g.delegate.ShouldEnableAsset == nil {
		return true
	}
	return g.delegate.ShouldEnableAsset(asset)
}

// CanSelect reports whether the asset may be selected
func (g *Gate) CanSelect(asset domain.Asset) bool {
	if g.delegate == nil || g.delegate.ShouldSelectAsset == nil {
		return true
	}
	return g.delegate.ShouldSelectAsset(asset)
}

// CanDeselect reports whether the asset may be deselected
func (g *Gate) CanDeselect(asset domain.Asset) bool {
	if g.delegate == nil || g.delegate.ShouldDeselectAsset == nil {
		return true
	}
	return g.delegate.ShouldDeselectAsset(asset)
}

// CanHighlight reports whether the asset may be highlighted. Highlighting is
// gated independently of selection.
func (g *Gate) CanHighlight(asset domain.Asset) bool {
	if g.delegate == nil || g.delegate.ShouldHighlightAsset == nil {
		return true
	}
	return g.delegate.ShouldHighlightAsset(asset)
}
