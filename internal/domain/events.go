package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventAssetSelected      EventType = "AssetSelected"
	EventAssetDeselected    EventType = "AssetDeselected"
	EventSelectionChanged   EventType = "SelectionChanged"
	EventAssetHighlighted   EventType = "AssetHighlighted"
	EventAssetUnhighlighted EventType = "AssetUnhighlighted"
	EventPickingFinished    EventType = "PickingFinished"
	EventPickingCancelled   EventType = "PickingCancelled"
	EventAlbumDiscovered    EventType = "AlbumDiscovered"
	EventScanStarted        EventType = "ScanStarted"
	EventScanCompleted      EventType = "ScanCompleted"
	EventScanRequested      EventType = "ScanRequested"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// AssetSelectedEvent is emitted when an asset enters the selection
type AssetSelectedEvent struct {
	Asset Asset
}

func (e AssetSelectedEvent) Type() EventType { return EventAssetSelected }

// AssetDeselectedEvent is emitted when an asset leaves the selection
type AssetDeselectedEvent struct {
	Asset Asset
}

func (e AssetDeselectedEvent) Type() EventType { return EventAssetDeselected }

// SelectionChangedEvent is emitted after every selection mutation and carries
// the full ordered selection at that point. The slice is a snapshot; holding
// on to it is safe.
type SelectionChangedEvent struct {
	Selected []Asset
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// AssetHighlightedEvent is emitted when an asset becomes highlighted
type AssetHighlightedEvent struct {
	Asset Asset
}

func (e AssetHighlightedEvent) Type() EventType { return EventAssetHighlighted }

// AssetUnhighlightedEvent is emitted when an asset's highlight is removed
type AssetUnhighlightedEvent struct {
	Asset Asset
}

func (e AssetUnhighlightedEvent) Type() EventType { return EventAssetUnhighlighted }

// PickingFinishedEvent is the terminal event of a completed picking session
type PickingFinishedEvent struct {
	Selected []Asset
}

func (e PickingFinishedEvent) Type() EventType { return EventPickingFinished }

// PickingCancelledEvent is the terminal event of a cancelled picking session
type PickingCancelledEvent struct{}

func (e PickingCancelledEvent) Type() EventType { return EventPickingCancelled }

// AlbumDiscoveredEvent is emitted when scanning finds a directory of media
type AlbumDiscoveredEvent struct {
	Name   string
	Path   string
	Assets int
}

func (e AlbumDiscoveredEvent) Type() EventType { return EventAlbumDiscovered }

// ScanStartedEvent is emitted when library scanning begins
type ScanStartedEvent struct {
	Roots []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when library scanning completes
type ScanCompletedEvent struct {
	AlbumsFound int
	AssetsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new scan
type ScanRequestedEvent struct {
	Roots []string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Roots []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
