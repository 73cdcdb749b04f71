// Package config loads user settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "showcase"

// Config holds the merged user settings.
type Config struct {
	Content          string `koanf:"content"`            // YAML content file; empty uses the built-in set
	ResizeDebounceMS int    `koanf:"resize_debounce_ms"` // 0 uses the default

	// Per-carousel overrides keyed by carousel id ("activities", "projects", "steps")
	Carousels map[string]CarouselConfig `koanf:"carousels"`
}

// CarouselConfig overrides a carousel's built-in settings.
// Zero values keep the built-in value.
type CarouselConfig struct {
	Title          string             `koanf:"title"`
	BaseCardWidth  float64            `koanf:"base_card_width"`
	BaseCardHeight float64            `koanf:"base_card_height"`
	BaseGap        *float64           `koanf:"base_gap"` // 0 is a valid gap
	MinCardWidth   float64            `koanf:"min_card_width"`
	MinScale       float64            `koanf:"min_scale"`
	DragSpeed      float64            `koanf:"drag_speed"`
	WheelSpeed     float64            `koanf:"wheel_speed"`
	KeyScroll      float64            `koanf:"key_scroll"` // cells; 0 scrolls one card
	Breakpoints    []BreakpointConfig `koanf:"breakpoints"`
}

// BreakpointConfig is one row of a breakpoint table.
type BreakpointConfig struct {
	MinWidth float64 `koanf:"min_width"` // window width in columns
	Slides   float64 `koanf:"slides"`
}

// Load reads the config files in priority order.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Content != "" {
		cfg.Content = expandPath(cfg.Content)
	}
	if cfg.ResizeDebounceMS < 0 {
		return nil, fmt.Errorf("resize_debounce_ms must be >= 0, got %d", cfg.ResizeDebounceMS)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/showcase/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ResizeDebounce returns the configured debounce, or 0 for the default.
func (c *Config) ResizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMS) * time.Millisecond
}

// Carousel returns the overrides for a carousel id.
func (c *Config) Carousel(id string) (CarouselConfig, bool) {
	cc, ok := c.Carousels[id]
	return cc, ok
}
