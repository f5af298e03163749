// Package server serves the static shell, the WASM bundle and its assets. It
// never renders page content; every client route gets the same shell and the
// browser takes over from there.
package server

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/greenaire/site/internal/ui/catalog"
	"github.com/greenaire/site/logging"
)

//go:embed shell/index.html shell/styles.css
var shellFiles embed.FS

// Options configures the site server.
type Options struct {
	Listen           string
	AssetsDir        string
	AllowedOrigins   []string
	RelayEndpoint    string
	FallbackEmail    string
	CarouselInterval time.Duration
	LogLevel         string
	ShutdownTimeout  time.Duration
	PrimaryHost      string
	Logger           *logging.Logger
}

type shellData struct {
	Title            string
	Description      string
	RelayEndpoint    string
	FallbackEmail    string
	CarouselInterval string
	LogLevel         string
}

type server struct {
	assetsDir   string
	primaryHost string
	logger      *logging.Logger
	shell       []byte
	styles      []byte
	files       http.Handler
}

// New builds the HTTP handler for opts.
func New(opts Options) (http.Handler, error) {
	srv, err := newServer(opts)
	if err != nil {
		return nil, err
	}
	return srv.routes(opts.AllowedOrigins), nil
}

func newServer(opts Options) (*server, error) {
	assets, err := filepath.Abs(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve assets dir: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	tmpl, err := template.ParseFS(shellFiles, "shell/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse shell template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, shellData{
		Title:            catalog.CompanyName,
		Description:      "HVAC design, supply, installation and maintenance across the UAE: chillers, packaged units, customized and flameproof systems.",
		RelayEndpoint:    opts.RelayEndpoint,
		FallbackEmail:    opts.FallbackEmail,
		CarouselInterval: opts.CarouselInterval.String(),
		LogLevel:         opts.LogLevel,
	}); err != nil {
		return nil, fmt.Errorf("render shell: %w", err)
	}
	styles, err := shellFiles.ReadFile("shell/styles.css")
	if err != nil {
		return nil, fmt.Errorf("read styles: %w", err)
	}

	mime.AddExtensionType(".wasm", "application/wasm")
	return &server{
		assetsDir:   assets,
		primaryHost: opts.PrimaryHost,
		logger:      logger,
		shell:       buf.Bytes(),
		styles:      styles,
		files:       http.FileServer(http.Dir(assets)),
	}, nil
}

func (s *server) routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(logging.NewHTTPLogger(s.logger).Middleware)
	r.Use(middleware.Recoverer)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{logging.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/robots.txt", s.handleRobots)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/styles.css", s.handleStyles)

	for _, route := range catalog.Routes() {
		r.Get(route, s.handleShell)
	}
	r.NotFound(s.handleStatic)
	return r
}

func (s *server) writeShell(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = w.Write(s.shell)
}

func (s *server) handleShell(w http.ResponseWriter, r *http.Request) {
	s.writeShell(w, http.StatusOK)
}

func (s *server) handleStyles(w http.ResponseWriter, r *http.Request) {
	if s.serveAsset(w, r, "/styles.css") {
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(s.styles)
}

// handleStatic serves files from the assets dir. Extensionless paths that are
// not files get the shell with a 404 so the client can render its not-found page.
func (s *server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.serveAsset(w, r, r.URL.Path) {
		return
	}
	if path.Ext(r.URL.Path) == "" {
		s.writeShell(w, http.StatusNotFound)
		return
	}
	http.NotFound(w, r)
}

func (s *server) serveAsset(w http.ResponseWriter, r *http.Request, urlPath string) bool {
	clean := path.Clean("/" + urlPath)
	info, err := os.Stat(filepath.Join(s.assetsDir, filepath.FromSlash(clean)))
	if err != nil || info.IsDir() {
		return false
	}
	if strings.HasSuffix(clean, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	s.files.ServeHTTP(w, r)
	return true
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, opts Options) error {
	handler, err := New(opts)
	if err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	httpServer := &http.Server{
		Addr:              opts.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	logger.Info(logging.CategoryGeneral, "serving site", map[string]any{
		"listen": opts.Listen,
		"assets": opts.AssetsDir,
	})

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
