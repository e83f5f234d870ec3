package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhengming-dev/schemeline/pkg/config"
	"github.com/zhengming-dev/schemeline/pkg/pipeline"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

// renderCommand creates the render command: records file in, artifacts out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath string
		outDir     string
		formats    string
		focus      string
		highlight  []string
		reverse    bool
		deprecated bool
		refine     bool
		width      float64
		height     float64
		noCache    bool
		redisAddr  string
	)

	cmd := &cobra.Command{
		Use:   "render <records.json>",
		Short: "Render a lineage diagram from a scheme records file",
		Long: `Render loads a JSON array of scheme records, compresses their dates onto
a vertical axis, infers feature/author/similarity relationships, computes a
collision-reduced layout, and writes the requested artifacts.

Formats: svg (the diagram), json (layout geometry for custom shells),
dot (the relationship graph for graphviz tooling).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := scheme.LoadFile(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			opts := pipeline.FromConfig(cfg)
			applyFlags(&opts, cmd, flagOverrides{
				focus: focus, highlight: highlight,
				reverse: reverse, deprecated: deprecated, refine: refine,
				width: width, height: height,
			})
			opts.Formats = parseFormats(formats)

			if opts.Focus != "" && !hasScheme(schemes, opts.Focus) {
				return fmt.Errorf("focus scheme %q not found in records", opts.Focus)
			}

			spin := newSpinner("Computing layout")
			spin.Start()

			runner := c.newRunner(cmd, noCache, redisAddr)
			defer runner.Cache.Close()

			result, err := runner.Execute(cmd.Context(), schemes, opts)
			if err != nil {
				spin.StopWithError("Render failed")
				return err
			}
			spin.Stop()

			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			for _, format := range opts.Formats {
				path := filepath.Join(outDir, base+"."+format)
				if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printFile(path)
			}

			printSuccess("Rendered %d schemes, %d relationships", result.Stats.RecordCount, result.Stats.EdgeCount)
			printStats(result.Stats.RecordCount, result.Stats.EdgeCount, anyHit(result.CacheInfo.RenderHits))
			printDetail("layout quality: %.1f/100", result.Stats.QualityScore)
			if result.Diagram.Cyclic {
				printWarning("relationship graph contains a cycle (duplicate dates?)")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "schemeline.toml", "TOML config file")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVarP(&formats, "format", "f", "svg", "comma-separated output formats (svg,json,dot)")
	cmd.Flags().StringVar(&focus, "focus", "", "scheme id whose relationship labels are placed")
	cmd.Flags().StringSliceVar(&highlight, "highlight", nil, "feature tags to highlight")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "flip display order (newest first)")
	cmd.Flags().BoolVar(&deprecated, "show-deprecated", false, "include deprecated schemes")
	cmd.Flags().BoolVar(&refine, "refine", true, "run the overlap-reduction pass")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&height, "height", 0, "minimum canvas height in pixels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared artifact cache")

	return cmd
}

// flagOverrides carries the render flags that override config values.
type flagOverrides struct {
	focus      string
	highlight  []string
	reverse    bool
	deprecated bool
	refine     bool
	width      float64
	height     float64
}

// applyFlags layers explicitly-set flags over config-derived options.
// Boolean flags only override when the user set them, so a config value
// survives an untouched flag default.
func applyFlags(opts *pipeline.Options, cmd *cobra.Command, f flagOverrides) {
	if f.focus != "" {
		opts.Focus = f.focus
	}
	if len(f.highlight) > 0 {
		opts.HighlightFeatures = f.highlight
	}
	if cmd.Flags().Changed("reverse") {
		opts.ReverseTimeline = f.reverse
	}
	if cmd.Flags().Changed("show-deprecated") {
		opts.ShowDeprecated = f.deprecated
	}
	opts.Refine = f.refine
	if f.width > 0 {
		opts.CanvasWidth = f.width
	}
	if f.height > 0 {
		opts.CanvasHeight = f.height
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

func hasScheme(schemes []scheme.Scheme, id string) bool {
	for i := range schemes {
		if schemes[i].ID == id {
			return true
		}
	}
	return false
}

func anyHit(hits map[string]bool) bool {
	for _, hit := range hits {
		if hit {
			return true
		}
	}
	return false
}
