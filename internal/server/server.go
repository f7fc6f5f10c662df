package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ykhadiri/alkimiya/internal/audio"
	"github.com/ykhadiri/alkimiya/internal/db"
	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/explorer"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// Config holds server configuration.
type Config struct {
	Port     int
	DataDir  string // directory for the SQLite ledger and lab reports
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server is the local explorer server. It owns one session: the explorer
// is a single-user desktop companion, not a multi-tenant service.
type Server struct {
	cfg        Config
	catalog    *elements.Catalog
	gen        genai.Generator
	player     *audio.Controller
	session    *explorer.Session
	mixer      *explorer.Mixer
	db         *db.DB
	router     chi.Router
	httpServer *http.Server
}

// New creates a new explorer server with all dependencies.
func New(cfg Config, catalog *elements.Catalog, gen genai.Generator, player *audio.Controller, database *db.DB) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		gen:     gen,
		player:  player,
		db:      database,
	}
	s.session = explorer.NewSession(catalog, gen, player)
	s.mixer = explorer.NewMixer(gen, s.session.Selection())

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

	// No blanket timeout: detail generation fans out three upstream
	// calls and can legitimately run long.

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
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

	// API routes are registered by feature packages via RegisterRoutes.
	explorer.RegisterRoutes(r, s.session, s.mixer, s.catalog)
	audio.RegisterRoutes(r, s.player)

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the ledger database.
func (s *Server) Database() *db.DB { return s.db }

// Session returns the explorer session.
func (s *Server) Session() *explorer.Session { return s.session }

// Mixer returns the mixing engine.
func (s *Server) Mixer() *explorer.Mixer { return s.mixer }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("alkimiya server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server, stopping any playback.
func (s *Server) Shutdown(ctx context.Context) error {
	s.player.StopAll()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
