// Package pipeline provides the core diagram pipeline for schemeline.
//
// This package implements the complete load → layout → render flow used by
// the CLI and the serve mode. The layout stage itself is pure computation
// over immutable records: compression of the year axis, relationship
// inference, deterministic placement, refinement, and connector geometry
// all run synchronously with freshly allocated output.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Focus: "cangjie", Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, schemes, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"time"

	"github.com/zhengming-dev/schemeline/pkg/config"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Serve Mode
// =============================================================================

const (
	// DefaultCanvasWidth is the default canvas width in pixels.
	DefaultCanvasWidth = 960.0

	// DefaultCanvasHeight is the minimum canvas height in pixels; the
	// compressed axis can grow past it.
	DefaultCanvasHeight = 600.0

	// DefaultLabelInterval is the year multiple that earns an axis tick.
	DefaultLabelInterval = 10
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the diagram pipeline.
// This struct supports JSON serialization for serve-mode requests.
type Options struct {
	// Canvas options
	CanvasWidth  float64 `json:"canvas_width,omitempty"`
	CanvasHeight float64 `json:"canvas_height,omitempty"`
	MarginX      float64 `json:"margin_x,omitempty"`
	NodeSpacing  float64 `json:"node_spacing,omitempty"`

	// Timeline compression options
	BaseSpacing         float64 `json:"base_spacing,omitempty"`
	PerItemSpacing      float64 `json:"per_item_spacing,omitempty"`
	EmptyYearThreshold  int     `json:"empty_year_threshold,omitempty"`
	EmptySegmentSpacing float64 `json:"empty_segment_spacing,omitempty"`
	LabelInterval       int     `json:"label_interval,omitempty"`
	TickRadius          int     `json:"tick_radius,omitempty"`

	// Display options. ReverseTimeline flips display ordering only;
	// relationship inference always uses true chronological order.
	ReverseTimeline   bool     `json:"reverse_timeline,omitempty"`
	ShowDeprecated    bool     `json:"show_deprecated,omitempty"`
	HighlightFeatures []string `json:"highlight_features,omitempty"`

	// Focus selects the scheme whose edges receive placed labels.
	Focus string `json:"focus,omitempty"`

	// Refine enables the overlap-reduction pass after placement.
	Refine bool `json:"refine,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// FromConfig builds Options from a loaded config file. Flag handling in
// the CLI overrides individual fields afterwards.
func FromConfig(cfg config.Config) Options {
	return Options{
		CanvasWidth:         cfg.Canvas.Width,
		CanvasHeight:        cfg.Canvas.Height,
		MarginX:             cfg.Canvas.MarginX,
		BaseSpacing:         cfg.Timeline.BaseSpacing,
		PerItemSpacing:      cfg.Timeline.PerItemSpacing,
		EmptyYearThreshold:  cfg.Timeline.EmptyYearThreshold,
		EmptySegmentSpacing: cfg.Timeline.EmptySegmentSpacing,
		LabelInterval:       cfg.Timeline.LabelInterval,
		TickRadius:          cfg.Timeline.TickRadius,
		ReverseTimeline:     cfg.Display.ReverseTimeline,
		ShowDeprecated:      cfg.Display.ShowDeprecated,
		HighlightFeatures:   cfg.Display.HighlightFeatures,
	}
}

// SetDefaults fills zero-valued fields with package defaults.
// Spacing fields default inside the timeline and layout packages; only
// canvas-level and render-level fields need filling here.
func (o *Options) SetDefaults() {
	if o.CanvasWidth == 0 {
		o.CanvasWidth = DefaultCanvasWidth
	}
	if o.CanvasHeight == 0 {
		o.CanvasHeight = DefaultCanvasHeight
	}
	if o.LabelInterval == 0 {
		o.LabelInterval = DefaultLabelInterval
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result Types
// =============================================================================

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount  int
	EdgeCount    int
	LayoutTime   time.Duration
	RenderTime   time.Duration
	QualityScore float64
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHits map[string]bool // format → whether the artifact came from cache
}
