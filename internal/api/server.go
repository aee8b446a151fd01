// Copyright (c) 2026 The Oratio Project. All rights reserved.

/*
Package api is the composition root of the HTTP transport: it assembles
the chi router, the middleware chain, and every domain handler into one
runnable [http.Server]. Only this package and cmd/api touch net/http
server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/oratiodb/oratio/internal/core/author"
	"github.com/oratiodb/oratio/internal/core/character"
	"github.com/oratiodb/oratio/internal/core/speech"
	"github.com/oratiodb/oratio/internal/core/stats"
	"github.com/oratiodb/oratio/internal/core/work"
	"github.com/oratiodb/oratio/internal/platform/config"
	"github.com/oratiodb/oratio/internal/platform/constants"
	"github.com/oratiodb/oratio/internal/platform/middleware"
)

// Server wraps the chi router and the [http.Server]. It is built once in
// main with every dependency injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the handler sets of every domain the API serves. A new
// domain adds a field here; nothing else in this file changes.
type Handlers struct {
	// Liveness answers /health: 200 whenever the process is serving.
	Liveness http.HandlerFunc

	// Readiness answers /ready: 200 only while every dependency is healthy.
	Readiness http.HandlerFunc

	// Author serves the epic-author catalog.
	Author *author.Handler

	// Work serves the epic-work catalog.
	Work *work.Handler

	// Character serves canonical characters and their instances.
	Character *character.Handler

	// Speech serves speeches and speech clusters.
	Speech *speech.Handler

	// Stats serves the corpus-wide count rollup.
	Stats *stats.Handler
}

// NewServer builds the router with the full middleware chain and mounts
// every route group. The context bounds the lifetime of middleware
// background work.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// Middleware in execution order.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Unauthenticated probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// The catalog is read-only over HTTP; all writes happen through the
	// ingestion command.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/authors", h.Author.Routes())
		api.Mount("/works", h.Work.Routes())
		api.Mount("/characters", h.Character.Routes())
		api.Mount("/instances", h.Character.InstanceRoutes())
		api.Mount("/speeches", h.Speech.Routes())
		api.Mount("/clusters", h.Speech.ClusterRoutes())
		api.Mount("/stats", h.Stats.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// ListenAndServe starts the server and blocks until it is closed.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server, waiting up to timeout for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
