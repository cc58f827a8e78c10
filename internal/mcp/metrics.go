package mcp

import (
	"time"

	"github.com/bobmcallan/uac-mcp/internal/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK               = "ok"
	outcomeRemoteError      = "remote_error"
	outcomeInvalidArguments = "invalid_arguments"
)

// Metrics records tool call counts and remote latency.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	toolCalls      *prometheus.CounterVec
	remoteDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on registerer, or the default
// registerer when nil.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		toolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uac_mcp_tool_calls_total",
				Help: "Total number of tool calls by outcome",
			},
			[]string{"tool", "outcome"},
		),
		remoteDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uac_mcp_remote_request_duration_seconds",
				Help:    "Duration of requests to the Unity editor in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method"},
		),
	}
}

func (m *Metrics) observeCall(tool, outcome string) {
	if m == nil {
		return
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
}

func (m *Metrics) observeRemote(method string, d time.Duration) {
	if m == nil {
		return
	}
	m.remoteDuration.WithLabelValues(method).Observe(d.Seconds())
}

// outcomeLabel maps an outcome onto the tool call counter's outcome label.
func outcomeLabel(out client.Outcome) string {
	if out.Failure != client.FailureNone {
		return out.Failure.String()
	}
	if !out.OK() {
		return outcomeRemoteError
	}
	return outcomeOK
}
