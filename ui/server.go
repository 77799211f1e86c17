// Package ui exposes the cleaning pipeline over HTTP: an upload form, a
// results page and artifact downloads.
package ui

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"tablescrub/internal"
	"tablescrub/internal/config"
	"tablescrub/internal/pipeline"
	"tablescrub/ports"
)

// Server is the web application.
type Server struct {
	cfg       *config.Config
	log       *internal.Logger
	storage   ports.FileStorage
	runner    *pipeline.Runner
	router    *chi.Mux
	templates *template.Template

	// sem caps concurrent pipeline runs at the request boundary; each run is
	// single-threaded and fully independent, so no further locking exists.
	sem *semaphore.Weighted
}

// NewServer wires the web application.
func NewServer(cfg *config.Config, log *internal.Logger, storage ports.FileStorage, runner *pipeline.Runner) (*Server, error) {
	templates, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}
	if _, err := templates.New("results").Parse(resultsTemplate); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		storage:   storage,
		runner:    runner,
		router:    chi.NewRouter(),
		templates: templates,
		sem:       semaphore.NewWeighted(cfg.Server.MaxConcurrentRuns),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Post("/upload", s.handleUpload)
	s.router.Get("/download/*", s.handleDownload)
}

// Handler returns the HTTP handler for the application.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the configured port.
func (s *Server) ListenAndServe() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info("listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
