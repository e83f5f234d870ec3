package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/zhengming-dev/schemeline/pkg/cache"
	"github.com/zhengming-dev/schemeline/pkg/config"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

func configFixture() config.Config {
	return config.Config{
		Canvas:   config.CanvasConfig{Width: 1200, Height: 800, MarginX: 32},
		Timeline: config.TimelineConfig{EmptyYearThreshold: 5},
		Display:  config.DisplayConfig{ReverseTimeline: true, HighlightFeatures: []string{"形碼"}},
	}
}

func testRecords() []scheme.Scheme {
	return []scheme.Scheme{
		{ID: "cangjie", Name: "倉頡", Authors: []string{"朱邦復"}, Date: "19760000", Features: []string{"形碼"}},
		{ID: "wubi", Name: "五筆字型", Authors: []string{"王永民"}, Date: "19830000", Features: []string{"形碼"}},
		{ID: "zhengma", Name: "鄭碼", Authors: []string{"鄭易里"}, Date: "19890000", Features: []string{"形碼"}},
		{ID: "retired", Name: "退役", Authors: []string{"無名"}, Date: "19700000", Deprecated: true},
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(&strings.Builder{}, log.Options{Level: log.ErrorLevel})
}

func TestRunnerExecute_Artifacts(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	opts := Options{Formats: []string{FormatSVG, FormatJSON, FormatDOT}}

	result, err := r.Execute(context.Background(), testRecords(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	for _, format := range opts.Formats {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("no %s artifact produced", format)
		}
		if result.CacheInfo.RenderHits[format] {
			t.Errorf("%s artifact reported as cache hit on first run", format)
		}
	}
	// The deprecated record is filtered before layout by default.
	if result.Stats.RecordCount != 3 {
		t.Errorf("RecordCount = %d, want 3", result.Stats.RecordCount)
	}
	if result.Stats.EdgeCount == 0 {
		t.Error("EdgeCount = 0, want inferred edges")
	}
	if !strings.Contains(string(result.Artifacts[FormatSVG]), "card-wubi") {
		t.Error("SVG artifact missing the wubi card")
	}
}

func TestRunnerExecute_ShowDeprecated(t *testing.T) {
	r := NewRunner(nil, quietLogger())

	result, err := r.Execute(context.Background(), testRecords(), Options{ShowDeprecated: true})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Stats.RecordCount != 4 {
		t.Errorf("RecordCount = %d, want 4 with deprecated shown", result.Stats.RecordCount)
	}
}

func TestRunnerExecute_CacheHitOnSecondRun(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, quietLogger())
	records := testRecords()
	opts := Options{Formats: []string{FormatSVG}}

	first, err := r.Execute(context.Background(), records, opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	second, err := r.Execute(context.Background(), records, opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}

	if first.CacheInfo.RenderHits[FormatSVG] {
		t.Error("first run reported a cache hit")
	}
	if !second.CacheInfo.RenderHits[FormatSVG] {
		t.Error("second run with identical input missed the cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from freshly rendered one")
	}
}

func TestRunnerExecute_EmptyRecords(t *testing.T) {
	r := NewRunner(nil, quietLogger())

	result, err := r.Execute(context.Background(), nil, Options{})
	if err != nil {
		t.Fatalf("Execute() on empty records error: %v", err)
	}
	if result.Stats.RecordCount != 0 || result.Stats.EdgeCount != 0 {
		t.Errorf("empty input produced stats %+v", result.Stats)
	}
	if len(result.Artifacts[FormatSVG]) == 0 {
		t.Error("empty input should still render an empty SVG shell")
	}
}

func TestRunnerExecute_InvalidFormat(t *testing.T) {
	r := NewRunner(nil, quietLogger())

	_, err := r.Execute(context.Background(), testRecords(), Options{Formats: []string{"pdf"}})
	if err == nil {
		t.Error("Execute() accepted an unsupported format")
	}
}

func TestRunnerBuild_Deterministic(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	records := testRecords()

	d1, _ := r.Build(context.Background(), records, Options{})
	d2, _ := r.Build(context.Background(), records, Options{})

	if len(d1.Nodes) != len(d2.Nodes) {
		t.Fatalf("node counts differ: %d vs %d", len(d1.Nodes), len(d2.Nodes))
	}
	for i := range d1.Nodes {
		a, b := d1.Nodes[i], d2.Nodes[i]
		if a.X != b.X || a.Y != b.Y || a.Width != b.Width || a.Height != b.Height {
			t.Errorf("node %d geometry differs across runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestRunnerBuild_FocusLabels(t *testing.T) {
	r := NewRunner(nil, quietLogger())

	unfocused, _ := r.Build(context.Background(), testRecords(), Options{})
	if len(unfocused.Labels) != 0 {
		t.Errorf("no focus set but %d labels placed", len(unfocused.Labels))
	}

	focused, _ := r.Build(context.Background(), testRecords(), Options{Focus: "wubi"})
	if len(focused.Labels) == 0 {
		t.Error("focus on wubi placed no labels")
	}
	for _, l := range focused.Labels {
		e := l.Curve.Edge
		if e.From != "wubi" && e.To != "wubi" {
			t.Errorf("label for edge %+v does not touch the focused scheme", e)
		}
	}
}

func TestRunnerBuild_HeightGrowsWithTimeline(t *testing.T) {
	// Two centuries of records: the canvas must grow past the default
	// minimum height rather than squash the axis.
	var records []scheme.Scheme
	for y := 1820; y <= 2020; y += 10 {
		records = append(records, scheme.Scheme{
			ID:   fmt.Sprintf("s%d", y),
			Name: "x",
			Date: fmt.Sprintf("%d0000", y),
		})
	}
	r := NewRunner(nil, quietLogger())

	d, _ := r.Build(context.Background(), records, Options{})
	if d.Height <= DefaultCanvasHeight {
		t.Errorf("Height = %v, want growth past %v", d.Height, DefaultCanvasHeight)
	}
}

func TestOptionsValidateAndSetDefaults_Idempotent(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.CanvasWidth != DefaultCanvasWidth || opts.CanvasHeight != DefaultCanvasHeight {
		t.Errorf("canvas defaults = %vx%v", opts.CanvasWidth, opts.CanvasHeight)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}

	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults() error: %v", err)
	}
	if opts.CanvasWidth != before.CanvasWidth || len(opts.Formats) != len(before.Formats) {
		t.Error("ValidateAndSetDefaults() is not idempotent")
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatJSON, FormatDOT} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) error: %v", f, err)
		}
	}
	if err := ValidateFormat("pdf"); err == nil {
		t.Error("ValidateFormat(pdf) = nil, want error")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := configFixture()
	opts := FromConfig(cfg)

	if opts.CanvasWidth != 1200 {
		t.Errorf("CanvasWidth = %v, want 1200", opts.CanvasWidth)
	}
	if opts.EmptyYearThreshold != 5 {
		t.Errorf("EmptyYearThreshold = %v, want 5", opts.EmptyYearThreshold)
	}
	if !opts.ReverseTimeline {
		t.Error("ReverseTimeline not carried over")
	}
	if len(opts.HighlightFeatures) != 1 || opts.HighlightFeatures[0] != "形碼" {
		t.Errorf("HighlightFeatures = %v", opts.HighlightFeatures)
	}
}
