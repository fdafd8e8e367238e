package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/hoverbox/pkg/hoverbox"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.MaxWidth)
	assert.Equal(t, 15, cfg.MaxHeight)
	assert.Equal(t, "at-point", cfg.Placement)
	assert.True(t, cfg.Border)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hoverbox.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
max-width = 40
placement = "top-right"
border = false
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.MaxWidth)
	assert.Equal(t, 15, cfg.MaxHeight, "unset keys keep defaults")
	assert.Equal(t, "top-right", cfg.Placement)
	assert.False(t, cfg.Border)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestConfigOverrides(t *testing.T) {
	cfg := defaultConfig()
	cfg.apply(configOverrides{maxWidth: 30, placement: "bottom-left", noBorder: true})
	assert.Equal(t, 30, cfg.MaxWidth)
	assert.Equal(t, "bottom-left", cfg.Placement)
	assert.False(t, cfg.Border)

	// Zero-valued overrides leave the config alone.
	cfg.apply(configOverrides{})
	assert.Equal(t, 30, cfg.MaxWidth)
	assert.False(t, cfg.Border)
}

func TestPlacementFuncMapping(t *testing.T) {
	screen := hoverbox.Size{Width: 100, Height: 40}
	size := hoverbox.Size{Width: 10, Height: 5}
	anchor := hoverbox.Point{X: 20, Y: 20}

	cfg := defaultConfig()
	cfg.Placement = "top-right"
	assert.Equal(t, hoverbox.Point{X: 89, Y: 1}, cfg.placementFunc()(anchor, size, screen))

	cfg.Placement = "at-point"
	assert.Equal(t, hoverbox.Point{X: 20, Y: 21}, cfg.placementFunc()(anchor, size, screen))

	cfg.Placement = "unknown"
	assert.Equal(t, hoverbox.Point{X: 20, Y: 21}, cfg.placementFunc()(anchor, size, screen))
}
