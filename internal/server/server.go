// Package server is the development server: it serves the generated site,
// answers search queries and pushes reload notices to open pages.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/orgsite/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Dir      string // generated site to serve
	AllowAll bool   // allow all CORS origins
}

// Server serves one output directory.
type Server struct {
	cfg        Config
	hub        *Hub
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for cfg. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:    cfg,
		hub:    NewHub(logger),
		logger: logger,
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

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.With(middleware.Timeout(30*time.Second)).Post("/api/search", s.handleSearch)

	// Live reload socket; not under the timeout middleware since the
	// connection stays open.
	r.Get("/livereload", s.hub.ServeHTTP)

	r.Handle("/*", noCache(http.FileServer(http.Dir(s.cfg.Dir))))

	return r
}

// noCache stops browsers from holding on to assets between rebuilds.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// searchRequest is the JSON body for the /api/search endpoint.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// searchResponse is the JSON response for the /api/search endpoint.
type searchResponse struct {
	Results []site.SearchEntry `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 8
	}

	// read on every request so results follow rebuilds
	entries, err := site.ReadSearchIndex(filepath.Join(s.cfg.Dir, site.SearchIndexFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Error("reading search index", "error", err)
		http.Error(w, `{"error":"search index unavailable"}`, http.StatusInternalServerError)
		return
	}

	results := site.Search(entries, query, limit)
	if results == nil {
		results = []site.SearchEntry{}
	}
	json.NewEncoder(w).Encode(searchResponse{Results: results})
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live-reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// URL is the local address pages are served on.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.cfg.Port)
}

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("serving site", "dir", s.cfg.Dir, "url", s.URL())
	return s.httpServer.ListenAndServe()
}

// Shutdown closes live-reload connections and gracefully shuts down the
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
