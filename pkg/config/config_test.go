package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/zhengming-dev/schemeline/pkg/errors"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() error for missing file: %v", err)
	}
	if cfg.Canvas.Width != 0 {
		t.Errorf("missing file produced non-zero config: %+v", cfg)
	}
}

func TestLoad_ParsesAllSections(t *testing.T) {
	content := `
[canvas]
width = 1200
height = 800
margin_x = 32

[timeline]
base_spacing = 40
per_item_spacing = 90
empty_year_threshold = 5
empty_segment_spacing = 60
label_interval = 20
tick_radius = 3

[display]
reverse_timeline = true
show_deprecated = true
highlight_features = ["形碼", "音碼"]
`
	path := filepath.Join(t.TempDir(), "schemeline.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Canvas.Width != 1200 || cfg.Canvas.Height != 800 || cfg.Canvas.MarginX != 32 {
		t.Errorf("canvas = %+v, want {1200 800 32}", cfg.Canvas)
	}
	if cfg.Timeline.EmptyYearThreshold != 5 || cfg.Timeline.LabelInterval != 20 {
		t.Errorf("timeline = %+v", cfg.Timeline)
	}
	if !cfg.Display.ReverseTimeline || !cfg.Display.ShowDeprecated {
		t.Errorf("display = %+v", cfg.Display)
	}
	if len(cfg.Display.HighlightFeatures) != 2 || cfg.Display.HighlightFeatures[0] != "形碼" {
		t.Errorf("highlight_features = %v", cfg.Display.HighlightFeatures)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[canvas\nwidth ="), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() returned nil error for malformed file")
	}
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %q, want %q", apperrors.GetCode(err), apperrors.ErrCodeInvalidConfig)
	}
}
