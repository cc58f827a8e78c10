package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// RemoteResponse is the envelope every UAC endpoint returns.
// Data and ErrorCode stay raw so they are echoed back exactly as received.
// A decoded response also keeps its whole body, and encodes back to it, so
// fields outside the envelope reach the caller.
type RemoteResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorCode json.RawMessage `json:"errorCode,omitempty"`
	Timestamp string          `json:"timestamp"`

	body json.RawMessage
}

// envelope has RemoteResponse's fields without its JSON methods.
type envelope RemoteResponse

// UnmarshalJSON decodes a JSON object and remembers the original body.
// Anything other than an object is rejected.
func (r *RemoteResponse) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("remote response is not a JSON object")
	}
	var e envelope
	if err := json.Unmarshal(trimmed, &e); err != nil {
		return err
	}
	*r = RemoteResponse(e)
	r.body = append(json.RawMessage(nil), trimmed...)
	return nil
}

// MarshalJSON returns the decoded body verbatim, or the envelope fields for
// responses built locally.
func (r RemoteResponse) MarshalJSON() ([]byte, error) {
	if r.body != nil {
		return r.body, nil
	}
	return json.Marshal(envelope(r))
}

// Now returns the current time in the envelope's timestamp format.
func Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// FailedResponse builds a success:false envelope carrying message.
func FailedResponse(message string) RemoteResponse {
	return RemoteResponse{
		Success:   false,
		Error:     message,
		Timestamp: Now(),
	}
}

// RawResponse wraps a body that is not a valid envelope as {"raw": text}.
func RawResponse(ok bool, text string) RemoteResponse {
	data, _ := json.Marshal(map[string]string{"raw": text})
	return RemoteResponse{
		Success:   ok,
		Data:      data,
		Timestamp: Now(),
	}
}
