package cli

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zhengming-dev/schemeline/pkg/config"
	"github.com/zhengming-dev/schemeline/pkg/errors"
	"github.com/zhengming-dev/schemeline/pkg/pipeline"
	"github.com/zhengming-dev/schemeline/pkg/render"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

// serveCommand creates the serve command: an HTTP server exposing the
// diagram. Records are loaded once at startup; every request recomputes
// from scratch with the request's options (full recomputation is cheap at
// this scale, and artifacts are cached by content).
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		redisAddr  string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve <records.json>",
		Short: "Serve the lineage diagram over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := scheme.LoadFile(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			runner := c.newRunner(cmd, noCache, redisAddr)
			defer runner.Cache.Close()

			s := &server{
				cli:     c,
				runner:  runner,
				schemes: schemes,
				base:    pipeline.FromConfig(cfg),
			}

			c.Logger.Info("serving lineage diagram", "addr", addr, "schemes", len(schemes))
			srv := &http.Server{
				Addr:              addr,
				Handler:           s.routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				_ = srv.Close()
			}()
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8321", "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "schemeline.toml", "TOML config file")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

type server struct {
	cli     *CLI
	runner  *pipeline.Runner
	schemes []scheme.Scheme
	base    pipeline.Options
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)
	r.Get("/api/diagram", s.handleDiagram(pipeline.FormatJSON, "application/json"))
	r.Get("/diagram.svg", s.handleDiagram(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/diagram.dot", s.handleDiagram(pipeline.FormatDOT, "text/vnd.graphviz"))
	r.Get("/graph.svg", s.handleGraphSVG)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// requestID tags each request with a UUID and attaches a request-scoped
// logger to the context for log correlation.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		reqLog := s.cli.Logger.With("request_id", id)
		reqLog.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), reqLog)))
	})
}

// handleDiagram renders one artifact format with per-request options.
func (s *server) handleDiagram(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := loggerFromContext(r.Context())
		p := newProgress(logger)

		opts := s.base
		opts.Formats = []string{format}
		applyQuery(&opts, r)

		result, err := s.runner.Execute(r.Context(), s.schemes, opts)
		if err != nil {
			logger.Error("render failed", "err", err)
			http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(result.Artifacts[format])
		p.done(fmt.Sprintf("Served %s diagram", format))
	}
}

// handleGraphSVG serves the relationship graph laid out by graphviz, an
// alternative view that ignores timeline geometry.
func (s *server) handleGraphSVG(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())
	p := newProgress(logger)

	opts := s.base
	opts.Formats = []string{pipeline.FormatDOT}
	applyQuery(&opts, r)

	result, err := s.runner.Execute(r.Context(), s.schemes, opts)
	if err != nil {
		logger.Error("render failed", "err", err)
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}

	svg, err := render.RenderDOTSVG(r.Context(), string(result.Artifacts[pipeline.FormatDOT]))
	if err != nil {
		logger.Error("graphviz render failed", "err", err)
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
	p.done("Served graphviz view")
}

// applyQuery layers request query parameters over the base options.
func applyQuery(opts *pipeline.Options, r *http.Request) {
	q := r.URL.Query()
	if focus := q.Get("focus"); focus != "" {
		opts.Focus = focus
	}
	if v := q.Get("reverse"); v != "" {
		opts.ReverseTimeline, _ = strconv.ParseBool(v)
	}
	if v := q.Get("deprecated"); v != "" {
		opts.ShowDeprecated, _ = strconv.ParseBool(v)
	}
	if v := q.Get("highlight"); v != "" {
		opts.HighlightFeatures = strings.Split(v, ",")
	}
	if v := q.Get("refine"); v != "" {
		opts.Refine, _ = strconv.ParseBool(v)
	} else {
		opts.Refine = true
	}
}
