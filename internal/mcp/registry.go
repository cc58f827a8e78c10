package mcp

import (
	"context"
	"fmt"

	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registration binds one tool name to the endpoint it proxies.
type Registration struct {
	Name        string
	Description string
	Strategy    Strategy
	Endpoint    models.EndpointInfo
}

// Registry is the read-only set of registrations in catalog order.
type Registry struct {
	registrations []Registration
	endpoints     int
	duplicates    int
	invalid       int
}

// BuildRegistry derives one registration per unique tool name. The first
// endpoint producing a name wins; later ones are skipped.
func BuildRegistry(endpoints []models.EndpointInfo, lookup CuratedLookup, logger *common.Logger) *Registry {
	r := &Registry{
		registrations: make([]Registration, 0, len(endpoints)),
		endpoints:     len(endpoints),
	}
	seen := make(map[string]models.EndpointInfo, len(endpoints))

	for _, ep := range endpoints {
		name := ToolName(ep.Path, ep.Method)
		if name == "" {
			r.invalid++
			logger.Warn().Str("path", ep.Path).Str("method", ep.Method).Msg("skipping endpoint with empty tool name")
			continue
		}
		if first, dup := seen[name]; dup {
			r.duplicates++
			logger.Debug().
				Str("name", name).
				Str("path", ep.Path).
				Str("method", ep.Method).
				Str("kept_path", first.Path).
				Str("kept_method", first.Method).
				Msg("skipping duplicate tool")
			continue
		}
		seen[name] = ep

		strategy := ResolveStrategy(name, ep, lookup)
		r.registrations = append(r.registrations, Registration{
			Name:        name,
			Description: strategy.Description(ep),
			Strategy:    strategy,
			Endpoint:    ep,
		})
	}
	return r
}

// Registrations returns a copy of the registrations.
func (r *Registry) Registrations() []Registration {
	result := make([]Registration, len(r.registrations))
	copy(result, r.registrations)
	return result
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.registrations) }

// Duplicates returns how many endpoints were dropped as duplicates.
func (r *Registry) Duplicates() int { return r.duplicates }

// Invalid returns how many endpoints produced an empty tool name.
func (r *Registry) Invalid() int { return r.invalid }

// Endpoints returns how many endpoints the registry was built from.
func (r *Registry) Endpoints() int { return r.endpoints }

// Curated returns how many registered tools use a curated schema.
func (r *Registry) Curated() int {
	n := 0
	for _, reg := range r.registrations {
		if reg.Strategy.IsCurated() {
			n++
		}
	}
	return n
}

// Register adds every tool to s, each handled by exec. It returns the
// number of tools added.
func (r *Registry) Register(s *server.MCPServer, exec *Executor) (int, error) {
	for _, reg := range r.registrations {
		tool, err := reg.Tool()
		if err != nil {
			return 0, err
		}
		s.AddTool(tool, reg.Handler(exec))
	}
	return len(r.registrations), nil
}

// Tool builds the MCP tool definition.
func (reg Registration) Tool() (mcp.Tool, error) {
	schema, err := reg.Strategy.InputSchema()
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("input schema for %s: %w", reg.Name, err)
	}
	tool := mcp.NewToolWithRawSchema(reg.Name, reg.Description, schema)
	tool.Annotations = reg.Strategy.Annotations()
	return tool, nil
}

// Handler returns the tool handler closed over the registration's endpoint.
func (reg Registration) Handler(exec *Executor) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params, err := reg.Strategy.Params(req.GetArguments())
		if err != nil {
			return exec.InvalidArguments(reg.Name, err), nil
		}
		return exec.Execute(ctx, reg.Name, reg.Endpoint, params), nil
	}
}
