package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewService()

	cfg := &Config{
		Version: 1,
		Roots:   []string{"/photos", "/videos"},
		UISettings: UISettings{
			ShowCancel:         true,
			ShowSelectionIndex: true,
			SelectionLimit:     5,
		},
	}

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Roots, loaded.Roots)
	assert.True(t, loaded.UISettings.ShowSelectionIndex)
	assert.False(t, loaded.UISettings.ShowEmptyAlbums)
	assert.Equal(t, 5, loaded.UISettings.SelectionLimit)
}

func TestLoadFromMissingPath(t *testing.T) {
	svc := NewService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	svc := NewService()
	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotEmpty(t, cfg.Roots)
	assert.True(t, cfg.UISettings.ShowCancel)
	assert.True(t, cfg.UISettings.ShowEmptyAlbums)
	assert.True(t, cfg.UISettings.ShowAssetCounts)
	assert.Equal(t, 0, cfg.UISettings.SelectionLimit)
}
