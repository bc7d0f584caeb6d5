package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"assetpick/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Roots      []string   `toml:"roots"` // library directories to scan
	UISettings UISettings `toml:"ui"`
}

// UISettings holds presentation flags. These shape what the views draw and
// never enter picker state.
type UISettings struct {
	ShowCancel         bool `toml:"show_cancel"`
	ShowEmptyAlbums    bool `toml:"show_empty_albums"`
	ShowAssetCounts    bool `toml:"show_asset_counts"`
	ShowSelectionIndex bool `toml:"show_selection_index"`
	// SelectionLimit caps how many assets can be picked; 0 means unlimited.
	// Enforced through the delegate's select predicate, not by the engine.
	SelectionLimit int `toml:"selection_limit"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a new config service
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "assetpick")
	os.MkdirAll(appDir, 0755)

	return &service{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewServiceWithBus creates a config service with event bus support
func NewServiceWithBus(bus eventbus.EventBus) Service {
	cs := NewService().(*service)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *service) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *service) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *service) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *service) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Roots: cfg.Roots})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Version: 1,
		Roots:   []string{filepath.Join(homeDir, "Pictures")},
		UISettings: UISettings{
			ShowCancel:         true,
			ShowEmptyAlbums:    true,
			ShowAssetCounts:    true,
			ShowSelectionIndex: false,
			SelectionLimit:     0,
		},
	}
}
