package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zandoc/docengine/internal/config"
	"github.com/zandoc/docengine/internal/session"
	"github.com/zandoc/docengine/internal/template"
)

// Server is the HTTP API server for docengine.
type Server struct {
	router chi.Router
	store  session.ContentStore
	engine *template.Engine
	sched  session.Scheduler
	log    *slog.Logger
	cfg    config.Config

	mu       sync.Mutex
	sessions map[string]*session.Session
}

// NewServer creates and configures the HTTP server.
func NewServer(store session.ContentStore, engine *template.Engine, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:    store,
		engine:   engine,
		sched:    session.TimerScheduler{},
		log:      log,
		cfg:      cfg,
		sessions: make(map[string]*session.Session),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocengineAPIKey, s.log))

		r.Post("/api/import", s.handleImportFile)
		r.Post("/api/import/markdown", s.handleImportMarkdown)

		r.Post("/api/render/html", s.handleRenderHTML)
		r.Post("/api/render/text", s.handleRenderText)
		r.Post("/api/render/markdown", s.handleRenderMarkdown)

		r.Get("/api/templates", s.handleListTemplates)
		r.Get("/api/templates/{templateID}", s.handleGetTemplate)
		r.Post("/api/templates/{templateID}/expand", s.handleExpandTemplate)
		r.Post("/api/templates/{templateID}/render", s.handleRenderTemplate)
		r.Post("/api/templates/{templateID}/validate", s.handleValidateTemplate)
		r.Post("/api/templates/{templateID}/reconstruct", s.handleReconstructTemplate)

		r.Post("/api/documents/{docID}/open", s.handleOpenDocument)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Put("/api/documents/{docID}", s.handlePutDocument)
		r.Post("/api/documents/{docID}/apply", s.handleApplyCommand)
		r.Post("/api/documents/{docID}/undo", s.handleUndo)
		r.Post("/api/documents/{docID}/redo", s.handleRedo)
		r.Post("/api/documents/{docID}/close", s.handleCloseDocument)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
