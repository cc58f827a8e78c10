package client

import (
	"time"

	"github.com/bobmcallan/uac-mcp/internal/models"
)

// FailureKind classifies why a remote call did not produce a usable envelope.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTimeout
	FailureCanceled
	FailureConnection
	FailureParse
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTimeout:
		return "timeout"
	case FailureCanceled:
		return "canceled"
	case FailureConnection:
		return "connection"
	case FailureParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Outcome is the result of one remote call. Response is always populated,
// with a success:false envelope when the call failed.
type Outcome struct {
	Response   models.RemoteResponse
	Failure    FailureKind
	StatusCode int
	Duration   time.Duration
}

// OK reports whether the remote reported success.
func (o Outcome) OK() bool {
	return o.Response.Success
}
