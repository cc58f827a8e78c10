package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bobmcallan/uac-mcp/internal/catalog"
	"github.com/bobmcallan/uac-mcp/internal/client"
	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/config"
	"github.com/bobmcallan/uac-mcp/internal/schemas"
	httpserver "github.com/bobmcallan/uac-mcp/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

// Server is the assembled MCP adapter: discovered catalog, registry and
// transport.
type Server struct {
	cfg      *config.Config
	logger   *common.Logger
	client   *client.UACClient
	registry *Registry
	source   catalog.Source
	mcp      *server.MCPServer
	metrics  *prometheus.Registry
}

// NewServer discovers the editor's endpoints, falls back to the static
// catalog when discovery yields nothing, and registers one tool per unique
// name. An unreachable editor is not an error.
func NewServer(ctx context.Context, cfg *config.Config, logger *common.Logger) (*Server, error) {
	uac := client.NewUACClient(cfg.Remote, logger)

	endpoints, source := catalog.Select(uac.Discover(ctx))
	switch source {
	case catalog.SourceDynamic:
		logger.Info().
			Int("endpoints", len(endpoints)).
			Str("editor", uac.BaseURL()).
			Msg("discovered endpoints from Unity")
	default:
		logger.Warn().
			Int("endpoints", len(endpoints)).
			Str("editor", uac.BaseURL()).
			Str("download", client.Website).
			Msg("Unity not reachable, using static endpoints; tools will report connection errors until Unity is open with UAC installed")
	}

	table := schemas.NewTable()
	registry := BuildRegistry(endpoints, table, logger)

	promRegistry := prometheus.NewRegistry()
	executor := NewExecutor(uac, logger, NewMetrics(promRegistry))

	mcpSrv := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	count, err := registry.Register(mcpSrv, executor)
	if err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	logger.Info().
		Str("source", string(source)).
		Int("endpoints", registry.Endpoints()).
		Int("tools", count).
		Int("curated_tools", registry.Curated()).
		Int("curated_schemas", table.Len()).
		Int("duplicates", registry.Duplicates()).
		Int("invalid", registry.Invalid()).
		Msg("registered MCP tools")

	return &Server{
		cfg:      cfg,
		logger:   logger,
		client:   uac,
		registry: registry,
		source:   source,
		mcp:      mcpSrv,
		metrics:  promRegistry,
	}, nil
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Registry returns the tool registry.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Source reports whether tools came from discovery or the static catalog.
func (s *Server) Source() catalog.Source {
	return s.source
}

// ServeStdio serves MCP over stdin/stdout until the input closes or the
// process is signalled.
func (s *Server) ServeStdio() error {
	s.logger.Info().Msg("server started on stdio transport")
	if err := server.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("stdio server error: %w", err)
	}
	return nil
}

// HTTPHandler returns the HTTP host serving MCP, /metrics and health routes.
func (s *Server) HTTPHandler() *httpserver.Server {
	streamable := server.NewStreamableHTTPServer(s.mcp,
		server.WithStateLess(true),
	)
	return httpserver.New(s.cfg.Server, httpserver.Handlers{
		MCP:     streamable,
		Metrics: promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}),
		Editor:  s.client,
	}, s.logger)
}

// ServeHTTP serves streamable HTTP until ctx is canceled.
func (s *Server) ServeHTTP(ctx context.Context) error {
	srv := s.HTTPHandler()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
