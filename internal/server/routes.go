package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bobmcallan/uac-mcp/internal/config"
)

// editorProbeTimeout bounds the /api/editor-health probe.
const editorProbeTimeout = 3 * time.Second

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// MCP endpoint (JSON-RPC over HTTP)
	if s.handlers.MCP != nil {
		mux.Handle(s.cfg.Path, s.handlers.MCP)
	}
	if s.handlers.Metrics != nil {
		mux.Handle("/metrics", s.handlers.Metrics)
	}

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/editor-health", s.handleEditorHealth)

	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"version":    config.GetVersion(),
		"build":      config.GetBuild(),
		"git_commit": config.GetGitCommit(),
	})
}

// handleEditorHealth probes the Unity editor behind the adapter.
func (s *Server) handleEditorHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if s.handlers.Editor == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), editorProbeTimeout)
	defer cancel()

	if s.handlers.Editor.IsConnected(ctx) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "editor": s.handlers.Editor.BaseURL()})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down", "editor": s.handlers.Editor.BaseURL()})
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}

// requireMethod writes 405 unless r uses method (HEAD is accepted for GET).
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}
