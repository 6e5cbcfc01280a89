package cli

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steeb/pkg/errors"
	"github.com/matzehuels/steeb/pkg/layout"
	"github.com/matzehuels/steeb/pkg/render/sink"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second
)

// serveCommand creates the live preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		opts boardOpts
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview that re-renders on every request",
		Long: `Serve a live preview of the layout.

The configuration file is re-read on every request, so edits show up on
reload. Endpoints:

  GET /             preview page
  GET /layout.svg   drawing (?debug=1 adds construction aids)
  GET /layout.json  computed geometry
  GET /healthz      liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts, addr)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout configuration file (TOML)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "start from a named preset")
	_ = cmd.RegisterFlagCompletionFunc("preset", presetCompletion)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts boardOpts, addr string) error {
	logger := loggerFromContext(ctx)

	// Fail fast on a broken configuration instead of on the first request.
	if _, err := loadBoard(ctx, opts); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newPreviewHandler(logger, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printSuccess("Preview server running")
	printKeyValue("URL", StyleLink.Render("http://"+addr))
	if opts.config != "" {
		printKeyValue("Config", opts.config)
	}

	select {
	case err := <-errCh:
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	logger.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// preview serves the board described by opts, rebuilding it per request.
type preview struct {
	logger *log.Logger
	opts   boardOpts
}

// newPreviewHandler returns the router of the preview server.
func newPreviewHandler(logger *log.Logger, opts boardOpts) http.Handler {
	p := &preview{logger: logger, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(p.logRequests)

	r.Get("/", p.index)
	r.Get("/layout.svg", p.svg)
	r.Get("/layout.json", p.json)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	return r
}

func (p *preview) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		p.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>steeb preview</title></head>
<body style="margin:0;background:#fafafa">
<img src="/layout.svg{{if .Debug}}?debug=1{{end}}" alt="layout" style="max-width:100%">
<p style="font-family:sans-serif;color:#666;margin:1em">{{.Keys}} keys · {{printf "%.2f" .Separation}} mm separation</p>
</body>
</html>
`))

func (p *preview) index(w http.ResponseWriter, r *http.Request) {
	b, ok := p.board(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, struct {
		Debug      bool
		Keys       int
		Separation float64
	}{
		Debug:      r.URL.Query().Get("debug") != "",
		Keys:       b.KeyCount(),
		Separation: layout.CorrectedSeparation(b.Config),
	})
}

func (p *preview) svg(w http.ResponseWriter, r *http.Request) {
	b, ok := p.board(w, r)
	if !ok {
		return
	}
	var opts []sink.SVGOption
	if r.URL.Query().Get("debug") != "" {
		opts = append(opts, sink.WithDebug())
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(sink.RenderSVG(b, opts...))
}

func (p *preview) json(w http.ResponseWriter, r *http.Request) {
	b, ok := p.board(w, r)
	if !ok {
		return
	}
	data, err := sink.RenderJSON(b)
	if err != nil {
		p.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// board rebuilds the board, writing an error response on failure.
func (p *preview) board(w http.ResponseWriter, r *http.Request) (layout.Board, bool) {
	b, err := loadBoard(r.Context(), p.opts)
	if err != nil {
		p.fail(w, err)
		return layout.Board{}, false
	}
	return b, true
}

func (p *preview) fail(w http.ResponseWriter, err error) {
	p.logger.Error("render failed", "code", errors.GetCode(err), "err", err)
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidPreset, errors.ErrCodeReadFailed:
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, errors.UserMessage(err), status)
}
