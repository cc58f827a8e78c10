package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bobmcallan/uac-mcp/internal/client"
	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// Remote is the subset of the UAC client the executor needs.
type Remote interface {
	Get(ctx context.Context, path string) client.Outcome
	Post(ctx context.Context, path string, body any) client.Outcome
}

// Executor runs tool invocations against the editor.
type Executor struct {
	remote  Remote
	logger  *common.Logger
	metrics *Metrics
}

// NewExecutor creates an executor. metrics may be nil.
func NewExecutor(remote Remote, logger *common.Logger, metrics *Metrics) *Executor {
	return &Executor{remote: remote, logger: logger, metrics: metrics}
}

// Execute shapes the request for ep, calls the editor and converts the
// response into a tool result. It never returns a Go error.
func (e *Executor) Execute(ctx context.Context, tool string, ep models.EndpointInfo, params *Params) *mcp.CallToolResult {
	logger := e.logger.WithCorrelationId(uuid.New().String())
	if params == nil {
		params = NewParams()
	}

	var out client.Outcome
	method := http.MethodPost
	if ep.IsGet() {
		method = http.MethodGet
		path := ShapeGetPath(ep.Path, params)
		logger.Debug().Str("tool", tool).Str("method", method).Str("path", path).Msg("tool call")
		out = e.remote.Get(ctx, path)
	} else {
		logger.Debug().Str("tool", tool).Str("method", method).Str("endpoint_method", ep.Method).Str("path", ep.Path).Int("params", params.Len()).Msg("tool call")
		out = e.remote.Post(ctx, ep.Path, params)
	}

	outcome := outcomeLabel(out)
	e.metrics.observeCall(tool, outcome)
	e.metrics.observeRemote(method, out.Duration)

	logger.Info().
		Str("tool", tool).
		Str("outcome", outcome).
		Int("status", out.StatusCode).
		Int64("duration_ms", out.Duration.Milliseconds()).
		Msg("tool call completed")

	return ToolResult(out.Response)
}

// InvalidArguments reports arguments rejected by the tool's schema without
// calling the editor.
func (e *Executor) InvalidArguments(tool string, err error) *mcp.CallToolResult {
	e.metrics.observeCall(tool, outcomeInvalidArguments)
	e.logger.Warn().Str("tool", tool).Str("error", err.Error()).Msg("invalid tool arguments")
	return ToolResult(models.FailedResponse("Invalid arguments for " + tool + ": " + err.Error()))
}

// ToolResult renders a remote response as a tool result: the text is the
// response as 2-space indented JSON and IsError mirrors !success.
func ToolResult(resp models.RemoteResponse) *mcp.CallToolResult {
	text, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		text, _ = json.MarshalIndent(models.FailedResponse("failed to encode response: "+err.Error()), "", "  ")
		return errorResult(string(text))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(text))},
		IsError: !resp.Success,
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(message)},
		IsError: true,
	}
}

// ShapeGetPath builds the GET request path. Nil values are skipped, path
// embedded parameters become extra path segments and the rest form the
// query string in parameter order.
func ShapeGetPath(path string, params *Params) string {
	if params == nil {
		return path
	}
	shaped := path
	var query []string
	for pair := params.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		value := formatValue(pair.Value)
		if isPathEmbedded(path, pair.Key) {
			shaped += "/" + escapeComponent(value)
			continue
		}
		query = append(query, escapeComponent(pair.Key)+"="+escapeComponent(value))
	}
	if len(query) > 0 {
		shaped += "?" + strings.Join(query, "&")
	}
	return shaped
}

// componentUnescapes are the characters url.QueryEscape encodes but a URI
// component leaves alone.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// formatValue renders a query or path value. Strings pass through; numbers
// and booleans use their literal form; anything else is JSON encoded.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
