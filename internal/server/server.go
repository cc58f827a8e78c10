package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/config"
)

// EditorProbe reports whether the Unity editor answers /api/status.
type EditorProbe interface {
	IsConnected(ctx context.Context) bool
	BaseURL() string
}

// Handlers are the endpoints served alongside MCP.
type Handlers struct {
	MCP     http.Handler
	Metrics http.Handler
	Editor  EditorProbe
}

// Server hosts the streamable HTTP transport.
type Server struct {
	cfg      config.ServerConfig
	handlers Handlers
	router   *http.ServeMux
	server   *http.Server
	logger   *common.Logger
}

// New creates an HTTP server for the given handlers.
func New(cfg config.ServerConfig, handlers Handlers, logger *common.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		handlers: handlers,
		logger:   logger,
	}

	s.router = s.setupRoutes()

	s.server = &http.Server{
		Addr:        cfg.Addr(),
		Handler:     s.withMiddleware(s.router),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	return s
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info().
		Str("address", s.server.Addr).
		Str("url", fmt.Sprintf("http://%s%s", s.server.Addr, s.cfg.Path)).
		Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
