// Package server hosts a local preview of the mockup set with optional
// live reload, so designers can eyeball pages while designsync rewrites
// them.
package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// PageLink is one mockup entry shown on the preview index.
type PageLink struct {
	File  string
	Title string
}

// Config holds preview server configuration.
type Config struct {
	DesignDir  string     // directory containing the HTML mockups
	Port       int        // listen port
	Pages      []PageLink // configured page set, in sidebar order
	LiveReload bool       // inject the reload script into served pages
	AllowAll   bool       // allow all CORS origins (dev mode)
}

// Server serves the designs directory with an index page and live reload.
type Server struct {
	cfg    Config
	router chi.Router
	hub    *reloadHub
}

// New creates a preview server for the given configuration.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg}
	if cfg.LiveReload {
		s.hub = newReloadHub()
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.hub != nil {
		r.Get("/__livereload", s.hub.handleWebSocket)
	}

	r.Get("/", s.handleIndex)
	r.Get("/*", s.handlePage)

	return r
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the server and blocks. When live reload is
// enabled a background watcher polls the designs directory for changes.
func (s *Server) ListenAndServe() error {
	if s.hub != nil {
		go s.watchLoop()
	}
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	return http.ListenAndServe(addr, s.router)
}

// handlePage serves a file from the designs directory. HTML pages get
// the live-reload script appended before </body> when enabled.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if rel == "." || strings.HasPrefix(rel, "..") {
		http.NotFound(w, r)
		return
	}
	fsPath := filepath.Join(s.cfg.DesignDir, filepath.FromSlash(rel))

	ext := strings.ToLower(filepath.Ext(fsPath))
	if s.hub == nil || (ext != ".html" && ext != ".htm") {
		http.ServeFile(w, r, fsPath)
		return
	}

	content, err := os.ReadFile(fsPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(injectReloadScript(content))
}

// indexData holds the data passed to the index template.
type indexData struct {
	Pages      []indexPage
	Notes      template.HTML
	LiveReload bool
}

type indexPage struct {
	File    string
	Title   string
	Present bool
}

// handleIndex renders the mockup listing, with the designs directory's
// NOTES.md rendered below it when present.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{LiveReload: s.hub != nil}
	for _, p := range s.cfg.Pages {
		_, err := os.Stat(filepath.Join(s.cfg.DesignDir, p.File))
		data.Pages = append(data.Pages, indexPage{File: p.File, Title: p.Title, Present: err == nil})
	}

	if notes, err := os.ReadFile(filepath.Join(s.cfg.DesignDir, "NOTES.md")); err == nil {
		if rendered, err := renderMarkdown(notes); err == nil {
			data.Notes = rendered
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderMarkdown converts design notes markdown to HTML.
func renderMarkdown(src []byte) (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering notes: %w", err)
	}
	return template.HTML(buf.String()), nil
}
