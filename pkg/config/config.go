// Package config loads diagram configuration from a TOML file.
//
// Every field has a working default, so a missing file is not an error:
// the CLI runs with defaults and flags override whatever the file set.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/zhengming-dev/schemeline/pkg/errors"
)

// Config mirrors the schemeline.toml file layout.
type Config struct {
	Canvas   CanvasConfig   `toml:"canvas"`
	Timeline TimelineConfig `toml:"timeline"`
	Display  DisplayConfig  `toml:"display"`
}

// CanvasConfig sets the abstract pixel space the layout works in.
type CanvasConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	MarginX float64 `toml:"margin_x"`
}

// TimelineConfig controls vertical axis compression.
type TimelineConfig struct {
	BaseSpacing         float64 `toml:"base_spacing"`
	PerItemSpacing      float64 `toml:"per_item_spacing"`
	EmptyYearThreshold  int     `toml:"empty_year_threshold"`
	EmptySegmentSpacing float64 `toml:"empty_segment_spacing"`
	LabelInterval       int     `toml:"label_interval"`
	TickRadius          int     `toml:"tick_radius"`
}

// DisplayConfig controls presentation-only behavior.
type DisplayConfig struct {
	ReverseTimeline   bool     `toml:"reverse_timeline"`
	ShowDeprecated    bool     `toml:"show_deprecated"`
	HighlightFeatures []string `toml:"highlight_features"`
}

// Load reads a TOML config file. A missing file yields a zero Config and
// no error; downstream defaulting fills in the rest. A present but
// malformed file is a real configuration error.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
