package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vito/hoverbox/pkg/hoverbox"
)

// config is the hoverbox.toml file format plus flag overrides.
type config struct {
	// MaxWidth and MaxHeight cap the bubble's content size, in cells.
	// Zero means unbounded.
	MaxWidth  int `toml:"max-width"`
	MaxHeight int `toml:"max-height"`

	// Placement selects the positioning policy: "at-point" (default),
	// "top-right", or "bottom-left".
	Placement string `toml:"placement"`

	// Border draws a box around the bubble.
	Border bool `toml:"border"`

	// LineHeight is the cell height of one text line at the anchor.
	LineHeight int `toml:"line-height"`
}

func defaultConfig() *config {
	return &config{
		MaxWidth:   60,
		MaxHeight:  15,
		Placement:  "at-point",
		Border:     true,
		LineHeight: 1,
	}
}

// loadConfig reads a hoverbox.toml if a path is given, otherwise
// returns defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

type configOverrides struct {
	maxWidth  int
	maxHeight int
	placement string
	noBorder  bool
}

// apply folds command-line flags over the file config. Only flags the
// user actually set take effect.
func (c *config) apply(o configOverrides) {
	if o.maxWidth > 0 {
		c.MaxWidth = o.maxWidth
	}
	if o.maxHeight > 0 {
		c.MaxHeight = o.maxHeight
	}
	if o.placement != "" {
		c.Placement = o.placement
	}
	if o.noBorder {
		c.Border = false
	}
}

// placementFunc maps the configured policy name to a strategy. Unknown
// names fall back to at-point placement.
func (c *config) placementFunc() hoverbox.PlacementFunc {
	lineHeight := c.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1
	}
	switch c.Placement {
	case "top-right":
		return hoverbox.TopRightCorner(1)
	case "bottom-left":
		return hoverbox.BottomLeftCorner(1)
	default:
		return hoverbox.AtPoint(lineHeight)
	}
}
