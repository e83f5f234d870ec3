package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/zhengming-dev/schemeline/pkg/cache"
	"github.com/zhengming-dev/schemeline/pkg/connector"
	"github.com/zhengming-dev/schemeline/pkg/layout"
	"github.com/zhengming-dev/schemeline/pkg/observability"
	"github.com/zhengming-dev/schemeline/pkg/relate"
	"github.com/zhengming-dev/schemeline/pkg/render"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
	"github.com/zhengming-dev/schemeline/pkg/timeline"
)

// artifactTTL bounds how long rendered artifacts stay cached. The key is
// content-addressed, so expiry only reclaims space.
const artifactTTL = 7 * 24 * time.Hour

// Runner executes the diagram pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  cache.NewKeyer(),
		Logger: logger,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the computed layout surface.
	Diagram render.Diagram

	// Edges is the full inferred relationship list, including edges whose
	// endpoints were filtered out before layout.
	Edges []relate.Edge

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts hit the cache.
	CacheInfo CacheInfo
}

// Build runs the layout stages without rendering: filtering, chronological
// sort, axis compression, relationship inference, placement, optional
// refinement, and connector geometry. Pure computation; an empty records
// slice produces an empty diagram.
func (r *Runner) Build(ctx context.Context, records []scheme.Scheme, opts Options) (render.Diagram, []relate.Edge) {
	opts.SetDefaults()

	visible := records
	if !opts.ShowDeprecated {
		visible = scheme.FilterDeprecated(records)
	}
	sorted := scheme.SortChronological(visible)

	observability.Pipeline().OnLayoutStart(ctx, len(sorted))
	start := time.Now()

	tOpts := timeline.Options{
		BaseSpacing:         opts.BaseSpacing,
		PerItemSpacing:      opts.PerItemSpacing,
		EmptyYearThreshold:  opts.EmptyYearThreshold,
		EmptySegmentSpacing: opts.EmptySegmentSpacing,
	}
	offsets := timeline.Compress(sorted, tOpts)

	// Inference uses true chronological order even when display is
	// reversed; only sinks honor the flip.
	edges := relate.Infer(sorted)

	nodes := layout.Place(sorted, offsets, tOpts, layout.Options{
		CanvasWidth: opts.CanvasWidth,
		MarginX:     opts.MarginX,
	})
	if opts.Refine {
		layout.Refine(nodes, opts.NodeSpacing)
	}
	quality := layout.QualityScore(nodes)

	curves := connector.Curves(edges, nodes)
	labels := connector.Labels(curves, opts.Focus)
	ticks := timeline.Ticks(offsets, opts.LabelInterval, opts.TickRadius)

	height := offsets.Height + 2*timeline.DefaultBaseSpacing
	if height < opts.CanvasHeight {
		height = opts.CanvasHeight
	}

	d := render.Diagram{
		Width:     opts.CanvasWidth,
		Height:    height,
		Nodes:     nodes,
		Edges:     edges,
		Curves:    curves,
		Labels:    labels,
		Ticks:     ticks,
		Quality:   quality,
		Cyclic:    relate.HasCycle(edges),
		Highlight: opts.HighlightFeatures,
		Reverse:   opts.ReverseTimeline,
	}

	observability.Pipeline().OnLayoutComplete(ctx, time.Since(start), quality)
	return d, edges
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, records []scheme.Scheme, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{RenderHits: make(map[string]bool)},
	}

	layoutStart := time.Now()
	diagram, edges := r.Build(ctx, records, opts)
	result.Diagram = diagram
	result.Edges = edges
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RecordCount = len(diagram.Nodes)
	result.Stats.EdgeCount = len(edges)
	result.Stats.QualityScore = diagram.Quality

	if diagram.Cyclic {
		r.Logger.Warn("relationship graph contains a cycle; check for duplicate dates")
	}
	r.Logger.Info("computed layout",
		"nodes", len(diagram.Nodes),
		"edges", len(edges),
		"quality", fmt.Sprintf("%.1f", diagram.Quality),
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	recordsHash := hashRecords(records)
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		data, hit, err := r.renderCached(ctx, diagram, recordsHash, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.CacheInfo.RenderHits[format] = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderCached produces one artifact, consulting the cache first.
func (r *Runner) renderCached(ctx context.Context, d render.Diagram, recordsHash, format string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.StageKey(format, recordsHash, opts)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, format)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, format)

	data, err := r.renderFormat(ctx, d, format)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, artifactTTL); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

func (r *Runner) renderFormat(ctx context.Context, d render.Diagram, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(d), nil
	case FormatJSON:
		return render.RenderJSON(d)
	case FormatDOT:
		schemes := make([]scheme.Scheme, 0, len(d.Nodes))
		for i := range d.Nodes {
			schemes = append(schemes, *d.Nodes[i].Scheme)
		}
		return []byte(render.ToDOT(schemes, d.Edges)), nil
	default:
		return nil, ValidateFormat(format)
	}
}

// hashRecords content-addresses the record list for cache keys.
func hashRecords(records []scheme.Scheme) string {
	data, _ := json.Marshal(records)
	return cache.Hash(data)
}
