// Package server exposes the engine over a small JSON HTTP API.
//
// Every request is an independent, synchronous calculation; the server keeps
// no state between requests. Run is shaped as a supervisor.Worker: it blocks
// until its context is cancelled and returns an error only when the listener
// fails.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/danieljhkim/missionfuel/internal/engine"
	"github.com/danieljhkim/missionfuel/internal/metrics"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	maxBodyBytes      = 1 << 20
)

// Server serves fuel calculations over HTTP.
type Server struct {
	engine *engine.Engine
	logger *slog.Logger
	addr   string
	router *mux.Router
}

// New creates a Server listening on addr once Run is called.
func New(eng *engine.Engine, addr string, logger *slog.Logger) *Server {
	s := &Server{
		engine: eng,
		logger: logger,
		addr:   addr,
		router: mux.NewRouter(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(s.requestID, s.accessLog, s.instrument)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/planets", s.handlePlanets).Methods(http.MethodGet)
	api.HandleFunc("/fuel", s.handleFuel).Methods(http.MethodPost)
	api.HandleFunc("/missions", s.handleMission).Methods(http.MethodPost)
	api.HandleFunc("/missions/validate", s.handleValidate).Methods(http.MethodPost)
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("serving", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
