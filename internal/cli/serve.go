package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/pkg/gallery"
)

const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command. It renders the configured figures
// once at startup and serves them as a small HTTP gallery.
func newServeCmd() *cobra.Command {
	var addr, configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered figures as an HTTP gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "figure configuration (defaults to the built-in showcase)")
	return cmd
}

func runServe(cmd *cobra.Command, addr, configPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadDemoConfig(configPath)
	if err != nil {
		return err
	}

	store := gallery.NewMemStore()
	prog := newProgress(logger)
	for _, spec := range cfg.Figures {
		fig, err := buildDemoFigure(spec)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := fig.WriteSVG(&buf); err != nil {
			return err
		}
		id := uuid.New().String()
		if err := store.Set(ctx, gallery.Item{ID: id, Title: spec.Name, SVG: buf.Bytes()}); err != nil {
			return err
		}
		logger.Debug("rendered figure", "name", spec.Name, "id", id, "bytes", buf.Len())
	}
	prog.done(fmt.Sprintf("Rendered %d figures", len(cfg.Figures)))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Get("/", handleIndex(store))
	r.Get("/figures/{id}.svg", handleFigure(store))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("serving gallery", "addr", addr)
	fmt.Println(StyleTitle.Render("Gallery ready") + " " + StyleLink.Render("http://localhost"+addr))

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>plotkit gallery</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
figure { display: inline-block; margin: 1rem; }
figcaption { text-align: center; color: #555; }
</style>
</head>
<body>
<h1>plotkit gallery</h1>
{{range .}}<figure>
<a href="/figures/{{.ID}}.svg"><img src="/figures/{{.ID}}.svg" alt="{{.Title}}"></a>
<figcaption>{{.Title}}</figcaption>
</figure>
{{end}}</body>
</html>
`))

func handleIndex(store gallery.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, items); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func handleFigure(store gallery.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, gallery.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(item.SVG)
	}
}
