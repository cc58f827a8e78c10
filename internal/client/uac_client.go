package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bobmcallan/uac-mcp/internal/common"
	"github.com/bobmcallan/uac-mcp/internal/config"
	"github.com/bobmcallan/uac-mcp/internal/models"
)

// Website is where users download the editor plugin.
const Website = "https://unity-api-communicator.com"

// maxResponseSize caps the response body read from the editor.
const maxResponseSize = 50 << 20 // 50MB

// UACClient talks to the Unity API Communicator plugin over HTTP.
// Calls never return errors: transport failures are folded into the Outcome.
type UACClient struct {
	baseURL          string
	timeout          time.Duration
	discoveryTimeout time.Duration
	httpClient       *http.Client
	logger           *common.Logger
}

// NewUACClient creates a client for the editor at cfg.Host:cfg.Port.
func NewUACClient(cfg config.RemoteConfig, logger *common.Logger) *UACClient {
	return &UACClient{
		baseURL:          cfg.BaseURL(),
		timeout:          cfg.Timeout(),
		discoveryTimeout: cfg.DiscoveryTimeout(),
		httpClient:       &http.Client{},
		logger:           logger,
	}
}

// BaseURL returns the editor base URL, e.g. http://localhost:7777.
func (c *UACClient) BaseURL() string {
	return c.baseURL
}

// Get issues a GET for path, which may already carry a query string.
func (c *UACClient) Get(ctx context.Context, path string) Outcome {
	return c.request(ctx, http.MethodGet, path, nil, c.timeout)
}

// Post issues a POST with body encoded as JSON, {} when body is nil.
func (c *UACClient) Post(ctx context.Context, path string, body any) Outcome {
	return c.request(ctx, http.MethodPost, path, body, c.timeout)
}

// IsConnected probes /api/status and reports the editor's success flag.
func (c *UACClient) IsConnected(ctx context.Context) bool {
	return c.Get(ctx, "/api/status").OK()
}

// Status probes /api/status and returns the full outcome.
func (c *UACClient) Status(ctx context.Context) Outcome {
	return c.Get(ctx, "/api/status")
}

// Discover asks the editor for its endpoint list using the short discovery
// timeout. Any failure yields an empty slice.
func (c *UACClient) Discover(ctx context.Context) []models.EndpointInfo {
	out := c.request(ctx, http.MethodGet, "/api/discover", nil, c.discoveryTimeout)
	if out.Failure != FailureNone || !out.OK() || len(out.Response.Data) == 0 {
		c.logger.Debug().
			Str("failure", out.Failure.String()).
			Bool("success", out.OK()).
			Msg("endpoint discovery unavailable")
		return []models.EndpointInfo{}
	}

	var data models.DiscoverData
	if err := json.Unmarshal(out.Response.Data, &data); err != nil {
		c.logger.Warn().Str("error", err.Error()).Msg("failed to parse discovery response")
		return []models.EndpointInfo{}
	}
	if data.Endpoints == nil {
		return []models.EndpointInfo{}
	}
	return data.Endpoints
}

func (c *UACClient) request(ctx context.Context, method, path string, body any, timeout time.Duration) Outcome {
	c.logger.Debug().Str("method", method).Str("path", path).Msg("uac request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if method != http.MethodGet {
		if body == nil {
			body = struct{}{}
		}
		jsonData, err := json.Marshal(body)
		if err != nil {
			return Outcome{
				Response: models.FailedResponse(fmt.Sprintf("failed to marshal request: %v", err)),
				Failure:  FailureParse,
			}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return Outcome{
			Response: models.FailedResponse(fmt.Sprintf("invalid request %s %s: %v", method, path, err)),
			Failure:  FailureConnection,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportFailure(ctx, method, path, err, timeout, time.Since(start))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	duration := time.Since(start)
	if err != nil {
		return c.transportFailure(ctx, method, path, err, timeout, duration)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("uac response")

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	var envelope models.RemoteResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Outcome{
			Response:   models.RawResponse(ok, string(raw)),
			Failure:    FailureParse,
			StatusCode: resp.StatusCode,
			Duration:   duration,
		}
	}

	return Outcome{
		Response:   envelope,
		StatusCode: resp.StatusCode,
		Duration:   duration,
	}
}

// transportFailure converts a failed round trip into a success:false envelope
// that tells the user how to get the editor reachable.
func (c *UACClient) transportFailure(ctx context.Context, method, path string, err error, timeout time.Duration, duration time.Duration) Outcome {
	kind := classify(ctx, err)

	c.logger.Warn().
		Str("method", method).
		Str("path", path).
		Str("failure", kind.String()).
		Int64("duration_ms", duration.Milliseconds()).
		Str("error", err.Error()).
		Msg("uac request failed")

	var message string
	switch kind {
	case FailureTimeout:
		message = fmt.Sprintf("Unity Editor is not reachable (timeout after %dms). Make sure Unity is open and the Unity API Communicator plugin is installed and running. Download it at %s", timeout.Milliseconds(), Website)
	case FailureCanceled:
		message = fmt.Sprintf("Request to Unity at %s was canceled before it completed.", c.baseURL)
	default:
		message = fmt.Sprintf("Cannot connect to Unity at %s. Make sure Unity Editor is open and the Unity API Communicator plugin is installed. Download it at %s", c.baseURL, Website)
	}

	return Outcome{
		Response: models.FailedResponse(message),
		Failure:  kind,
		Duration: duration,
	}
}

func classify(ctx context.Context, err error) FailureKind {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return FailureCanceled
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	return FailureConnection
}
