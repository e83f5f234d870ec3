// Package cli implements the schemeline command-line interface.
//
// This package provides commands for rendering temporal lineage diagrams
// of input-method schemes, inspecting the inferred relationship graph, and
// serving diagrams over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, JSON, or DOT artifacts from a records file
//   - edges: Inspect the inferred relationship graph as a table
//   - browse: Interactive terminal browser for schemes and relations
//   - serve: HTTP server exposing the diagram as SVG and JSON
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zhengming-dev/schemeline/pkg/buildinfo"
	"github.com/zhengming-dev/schemeline/pkg/cache"
	"github.com/zhengming-dev/schemeline/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "schemeline"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "schemeline",
		Short:        "Schemeline renders lineage diagrams of input-method schemes",
		Long:         `Schemeline places historical input-method schemes on a compressed timeline, infers derivation relationships from shared features and authors, and renders the result as a collision-resolved diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.edgesCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. An empty redisAddr
// selects the file cache; noCache disables caching entirely.
func (c *CLI) newRunner(cmd *cobra.Command, noCache bool, redisAddr string) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(cmd, noCache, redisAddr), c.Logger)
}

func (c *CLI) newCache(cmd *cobra.Command, noCache bool, redisAddr string) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(cmd.Context(), redisAddr)
		if err != nil {
			c.Logger.Warn("redis unavailable, falling back to file cache", "addr", redisAddr, "err", err)
		} else {
			return rc
		}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/schemeline/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
