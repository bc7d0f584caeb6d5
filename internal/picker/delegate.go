package picker

import "assetpick/internal/domain"

// Delegate is the host's hook surface into the picking session. Every field
// is an optional func except DidFinishPicking; a nil predicate means "allow"
// and a nil notification hook is simply skipped. The engine borrows the
// delegate for the session and never retains the assets passed through it.
type Delegate struct {
	// ShouldEnableAsset decides whether an asset can be interacted with at
	// all. A disabled asset is skipped before any select predicate runs.
	ShouldEnableAsset func(asset domain.Asset) bool

	// ShouldShowAsset filters assets out of collection views. It drives the
	// library's filtered collections, not the engine itself.
	ShouldShowAsset func(asset domain.Asset) bool

	// ShouldSelectAsset can veto a proposed selection
	ShouldSelectAsset func(asset domain.Asset) bool

	// ShouldDeselectAsset can veto a proposed deselection
	ShouldDeselectAsset func(asset domain.Asset) bool

	// ShouldHighlightAsset can veto a proposed highlight
	ShouldHighlightAsset func(asset domain.Asset) bool

	// DidSelectAsset is called after an asset was selected
	DidSelectAsset func(asset domain.Asset)

	// DidDeselectAsset is called after an asset was deselected
	DidDeselectAsset func(asset domain.Asset)

	// DidHighlightAsset is called after an asset was highlighted
	DidHighlightAsset func(asset domain.Asset)

	// DidUnhighlightAsset is called after an asset's highlight was removed
	DidUnhighlightAsset func(asset domain.Asset)

	// DidFinishPicking receives the final selection in selection order.
	// Required; NewEngine fails without it.
	DidFinishPicking func(assets []domain.Asset)

	// DidCancel is called when the session is cancelled
	DidCancel func()
}
