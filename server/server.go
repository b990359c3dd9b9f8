// Package server exposes generation over HTTP for dashboards and editor tooling.
//
// Routes:
//
//	GET  /api/types             interface name -> declaration body
//	GET  /api/types/stats       last run outcome plus model counts
//	POST /api/types/regenerate  run generation now (refused in production)
//	GET  /ws                    websocket pushing the stats snapshot after every run
//	GET  /health                liveness
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/logger"
	"github.com/teranos/gentypes/typegen"
	"go.uber.org/zap"
)

// Config holds what the control surface needs from the resolved configuration
type Config struct {
	Environment    string
	Options        typegen.Options
	Port           int
	AllowedOrigins []string
}

// Server is the generation control surface
type Server struct {
	gen    *typegen.Generator
	cfg    Config
	hub    *hub
	mux    *http.ServeMux
	logger *zap.SugaredLogger

	httpServer *http.Server
}

// New wires handlers around gen. Every run of gen is pushed to websocket clients.
func New(gen *typegen.Generator, cfg Config) *Server {
	s := &Server{
		gen:    gen,
		cfg:    cfg,
		mux:    http.NewServeMux(),
		logger: logger.ComponentLogger("server"),
	}
	s.hub = newHub(s.logger)
	s.setupHTTPRoutes()

	gen.OnRun(func(typegen.Outcome) {
		s.hub.broadcast(s.snapshot())
	})

	return s
}

// Handler returns the routed handler (useful for httptest)
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Infow("Control surface listening",
		logger.FieldAddress, listener.Addr().String(),
		logger.FieldEnvironment, s.cfg.Environment)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	s.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	s.logger.Infow("Control surface stopped")
	return nil
}
