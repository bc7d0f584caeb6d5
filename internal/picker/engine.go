package picker

import (
	"errors"
	"fmt"

	"assetpick/internal/domain"
	"assetpick/internal/eventbus"
)

// Phase is the lifecycle state of a picking session
type Phase string

const (
	PhaseActive    Phase = "active"
	PhaseFinished  Phase = "finished"
	PhaseCancelled Phase = "cancelled"
)

var (
	// ErrTerminated is returned for any request made after Finish or Cancel.
	// Hitting it means the host kept driving a dead session, which is a
	// programming error, not a user action.
	ErrTerminated = errors.New("picking session already ended")

	// ErrMissingFinishHook is returned by NewEngine when the delegate has no
	// DidFinishPicking hook
	ErrMissingFinishHook = errors.New("delegate must implement DidFinishPicking")
)

// Options configures a new picking session
type Options struct {
	// InitialSelection pre-seeds the selection before the picker is shown.
	// Seeded assets bypass the gate: they are host-supplied state, not user
	// transitions. Duplicates are dropped.
	InitialSelection []domain.Asset
}

// Engine is the single entry point for selection and highlight requests. It
// runs the gate, mutates state on approval, notifies the delegate, and
// publishes the corresponding events on the bus.
//
// The engine is single-threaded by contract: every request runs to completion
// on the caller's goroutine before the next begins, so no request ever
// observes a half-applied mutation. Drive it from one goroutine only.
type Engine struct {
	bus        eventbus.EventBus
	delegate   *Delegate
	gate       *Gate
	selection  *Selection
	highlights *Highlights
	phase      Phase
}

// NewEngine creates a picking session over the given bus and delegate.
// The delegate's DidFinishPicking hook is mandatory.
func NewEngine(bus eventbus.EventBus, delegate *Delegate, opts Options) (*Engine, error) {
	if delegate == nil || delegate.DidFinishPicking == nil {
		return nil, ErrMissingFinishHook
	}
	if bus == nil {
		bus = &eventbus.NullBus{}
	}

	e := &Engine{
		bus:        bus,
		delegate:   delegate,
		gate:       NewGate(delegate),
		selection:  NewSelection(),
		highlights: NewHighlights(),
		phase:      PhaseActive,
	}

	for _, asset := range opts.InitialSelection {
		if asset == nil {
			continue
		}
		e.selection.Select(asset)
	}

	return e, nil
}

// Phase returns the session's lifecycle state
func (e *Engine) Phase() Phase {
	return e.phase
}

// Select requests selection of an asset. A vetoed or disabled request is a
// silent no-op: nil error, no mutation, no events. The only error is the
// invalid-state failure after Finish or Cancel.
func (e *Engine) Select(asset domain.Asset) error {
	if err := e.checkActive(); err != nil {
		return err
	}
	if asset == nil || e.selection.Contains(asset) {
		return nil
	}
	if !e.gate.Enabled(asset) || !e.gate.CanSelect(asset) {
		return nil
	}

	e.selection.Select(asset)
	if e.delegate.DidSelectAsset != nil {
		e.delegate.DidSelectAsset(asset)
	}
	e.bus.Publish(domain.AssetSelectedEvent{Asset: asset})
	e.bus.Publish(domain.SelectionChangedEvent{Selected: e.selection.Assets()})
	return nil
}

// Deselect requests deselection of an asset. Symmetric to Select.
func (e *Engine) Deselect(asset domain.Asset) error {
	if err := e.checkActive(); err != nil {
		return err
	}
	if asset == nil || !e.selection.Contains(asset) {
		return nil
	}
	if !e.gate.CanDeselect(asset) {
		return nil
	}

	e.selection.Deselect(asset)
	if e.delegate.DidDeselectAsset != nil {
		e.delegate.DidDeselectAsset(asset)
	}
	e.bus.Publish(domain.AssetDeselectedEvent{Asset: asset})
	e.bus.Publish(domain.SelectionChangedEvent{Selected: e.selection.Assets()})
	return nil
}

// Toggle deselects the asset if it is selected, otherwise selects it
func (e *Engine) Toggle(asset domain.Asset) error {
	if err := e.checkActive(); err != nil {
		return err
	}
	if asset == nil {
		return nil
	}
	if e.selection.Contains(asset) {
		return e.Deselect(asset)
	}
	return e.Select(asset)
}

// Highlight requests transient emphasis on an asset. Idempotent: a second
// highlight of the same asset emits nothing.
func (e *Engine) Highlight(asset domain.Asset) error {
	if err := e.checkActive(); err != nil {
		return err
	}
	if asset == nil || e.highlights.Contains(asset) {
		return nil
	}
	if !e.gate.CanHighlight(asset) {
		return nil
	}

	e.highlights.Add(asset)
	if e.delegate.DidHighlightAsset != nil {
		e.delegate.DidHighlightAsset(asset)
	}
	e.bus.Publish(domain.AssetHighlightedEvent{Asset: asset})
	return nil
}

// Unhighlight removes an asset's highlight. No-op if not highlighted.
func (e *Engine) Unhighlight(asset domain.Asset) error {
	if err := e.checkActive(); err != nil {
		return err
	}
	if asset == nil || !e.highlights.Contains(asset) {
		return nil
	}

	e.highlights.Remove(asset)
	if e.delegate.DidUnhighlightAsset != nil {
		e.delegate.DidUnhighlightAsset(asset)
	}
	e.bus.Publish(domain.AssetUnhighlightedEvent{Asset: asset})
	return nil
}

// Finish ends the session, handing the final selection to the delegate.
// Terminal: every later request fails with ErrTerminated.
func (e *Engine) Finish() error {
	if err := e.checkActive(); err != nil {
		return err
	}
	e.phase = PhaseFinished

	picked := e.selection.Assets()
	e.delegate.DidFinishPicking(picked)
	e.bus.Publish(domain.PickingFinishedEvent{Selected: picked})
	return nil
}

// Cancel ends the session, discarding the selection. Terminal.
func (e *Engine) Cancel() error {
	if err := e.checkActive(); err != nil {
		return err
	}
	e.phase = PhaseCancelled
	e.selection = NewSelection()
	e.highlights = NewHighlights()

	if e.delegate.DidCancel != nil {
		e.delegate.DidCancel()
	}
	e.bus.Publish(domain.PickingCancelledEvent{})
	return nil
}

// Selected returns the ordered selection snapshot
func (e *Engine) Selected() []domain.Asset {
	return e.selection.Assets()
}

// SelectedCount returns the number of selected assets
func (e *Engine) SelectedCount() int {
	return e.selection.Len()
}

// IsSelected reports whether the asset is currently selected
func (e *Engine) IsSelected(asset domain.Asset) bool {
	if asset == nil {
		return false
	}
	return e.selection.Contains(asset)
}

// SelectionIndex returns the asset's 1-based selection-order position for
// index badges, or false if the asset is not selected
func (e *Engine) SelectionIndex(asset domain.Asset) (int, bool) {
	if asset == nil {
		return 0, false
	}
	return e.selection.Index(asset)
}

// IsHighlighted reports whether the asset is currently highlighted
func (e *Engine) IsHighlighted(asset domain.Asset) bool {
	if asset == nil {
		return false
	}
	return e.highlights.Contains(asset)
}

// Enabled reports whether the asset is enabled for interaction, per the
// delegate. Views use this to dim disabled cells.
func (e *Engine) Enabled(asset domain.Asset) bool {
	return e.gate.Enabled(asset)
}

func (e *Engine) checkActive() error {
	if e.phase != PhaseActive {
		return fmt.Errorf("%w (%s)", ErrTerminated, e.phase)
	}
	return nil
}
